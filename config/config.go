package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/lixenwraith/blockcast/audio"
	"github.com/lixenwraith/blockcast/engine"
	"github.com/lixenwraith/blockcast/hand"
)

// Policy and layout names accepted in the environment and on the command line
const (
	PolicyWeighted   = "weighted"
	PolicyUniform    = "uniform"
	LayoutVertical   = "vertical"
	LayoutHorizontal = "horizontal"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Sentinel errors
var (
	ErrInvalidPolicy = errors.New("invalid hand policy")
	ErrInvalidLayout = errors.New("invalid layout")
)

// Config holds runtime options
type Config struct {
	Seed   int64  `env:"SEED"` // 0 seeds from the clock
	Policy string `env:"POLICY"`
	Layout string `env:"LAYOUT"`
	Debug  bool   `env:"DEBUG"`

	Audio audio.AudioConfig `envPrefix:"AUDIO_"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Policy: PolicyWeighted,
		Layout: LayoutVertical,
		Audio:  *audio.DefaultAudioConfig(),
	}
}

// Load builds the configuration from defaults, then envFile, then the
// environment, then command-line args
func Load(envFile string, args []string) (*Config, error) {
	cfg := Default()

	if err := LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}

	cfg.Policy = strings.ToLower(strings.TrimSpace(cfg.Policy))
	cfg.Layout = strings.ToLower(strings.TrimSpace(cfg.Layout))
	cfg.Audio.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("blockcast", flag.ContinueOnError)
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for hand draws (0 = time based)")
	fs.StringVar(&c.Policy, "policy", c.Policy, "hand policy: weighted or uniform")
	fs.StringVar(&c.Layout, "layout", c.Layout, "selection keys: vertical (up/down) or horizontal (left/right)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log to logs/blockcast.log")
	mute := fs.Bool("mute", false, "disable audio")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *mute {
		c.Audio.Enabled = false
	}
	return nil
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	if _, err := c.HandPolicy(); err != nil {
		return err
	}
	if _, err := c.KeyLayout(); err != nil {
		return err
	}
	return nil
}

// HandPolicy returns the refill policy named by Policy
func (c *Config) HandPolicy() (hand.Policy, error) {
	switch c.Policy {
	case PolicyWeighted:
		return hand.NewWeighted(), nil
	case PolicyUniform:
		return hand.Uniform{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, c.Policy)
}

// KeyLayout returns the selection layout named by Layout
func (c *Config) KeyLayout() (engine.Layout, error) {
	switch c.Layout {
	case LayoutVertical:
		return engine.LayoutVertical, nil
	case LayoutHorizontal:
		return engine.LayoutHorizontal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLayout, c.Layout)
}
