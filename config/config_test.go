package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/blockcast/engine"
)

// TestLoadDefaults verifies defaults when nothing is configured
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Policy != PolicyWeighted || cfg.Layout != LayoutVertical {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if !cfg.Audio.Enabled || cfg.Audio.SampleRate <= 0 {
		t.Errorf("Unexpected audio defaults: %+v", cfg.Audio)
	}
	if cfg.Seed != 0 || cfg.Debug {
		t.Errorf("Unexpected seed/debug: %d %v", cfg.Seed, cfg.Debug)
	}
}

// TestLoadEnvironment verifies prefixed variables including the nested audio prefix
func TestLoadEnvironment(t *testing.T) {
	t.Setenv("BLOCKCAST_SEED", "42")
	t.Setenv("BLOCKCAST_POLICY", "Uniform")
	t.Setenv("BLOCKCAST_LAYOUT", "horizontal")
	t.Setenv("BLOCKCAST_DEBUG", "true")
	t.Setenv("BLOCKCAST_AUDIO_ENABLED", "false")
	t.Setenv("BLOCKCAST_AUDIO_VOLUME", "0.25")
	t.Setenv("BLOCKCAST_AUDIO_SAMPLE_RATE", "44100")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 42 || cfg.Policy != PolicyUniform || cfg.Layout != LayoutHorizontal || !cfg.Debug {
		t.Errorf("Environment not applied: %+v", cfg)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.25 || cfg.Audio.SampleRate != 44100 {
		t.Errorf("Audio environment not applied: %+v", cfg.Audio)
	}
}

// TestLoadDotEnvFile verifies .env values apply and real environment wins
func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "BLOCKCAST_SEED=7\nBLOCKCAST_LAYOUT=horizontal\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BLOCKCAST_LAYOUT", "vertical")
	// godotenv sets variables process-wide; clear SEED afterwards
	t.Setenv("BLOCKCAST_SEED", "")
	os.Unsetenv("BLOCKCAST_SEED")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Expected seed from .env, got %d", cfg.Seed)
	}
	if cfg.Layout != LayoutVertical {
		t.Errorf("Expected environment to win over .env, got %q", cfg.Layout)
	}
}

// TestLoadMissingDotEnv verifies a missing file is ignored
func TestLoadMissingDotEnv(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.env"), nil); err != nil {
		t.Errorf("Missing .env should be ignored, got %v", err)
	}
}

// TestFlagsOverrideEnvironment verifies flags are applied last
func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("BLOCKCAST_POLICY", "uniform")
	t.Setenv("BLOCKCAST_SEED", "1")

	cfg, err := Load("", []string{"-policy", "weighted", "-seed", "99", "-mute", "-debug", "-layout=horizontal"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Policy != PolicyWeighted || cfg.Seed != 99 || !cfg.Debug {
		t.Errorf("Flags not applied: %+v", cfg)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected -mute to disable audio")
	}
	layout, err := cfg.KeyLayout()
	if err != nil || layout != engine.LayoutHorizontal {
		t.Errorf("Expected horizontal layout, got %v %v", layout, err)
	}
}

// TestValidateRejectsUnknownNames verifies sentinel errors for bad enums
func TestValidateRejectsUnknownNames(t *testing.T) {
	if _, err := Load("", []string{"-policy", "greedy"}); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("Expected ErrInvalidPolicy, got %v", err)
	}
	if _, err := Load("", []string{"-layout", "diagonal"}); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("Expected ErrInvalidLayout, got %v", err)
	}
}

// TestBadValues verifies parse errors are wrapped
func TestBadValues(t *testing.T) {
	t.Setenv("BLOCKCAST_SEED", "not-a-number")
	if _, err := Load("", nil); err == nil {
		t.Error("Expected env parse error")
	}
	os.Unsetenv("BLOCKCAST_SEED")

	if _, err := Load("", []string{"-unknown"}); err == nil {
		t.Error("Expected flag parse error")
	}
}

// TestHandPolicyNames verifies the policy factory
func TestHandPolicyNames(t *testing.T) {
	for _, name := range []string{PolicyWeighted, PolicyUniform} {
		cfg := Default()
		cfg.Policy = name
		p, err := cfg.HandPolicy()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("Expected %s, got %s", name, p.Name())
		}
	}
}
