package audio

import (
	"github.com/lixenwraith/blockcast/constants"
)

// AudioConfig holds audio settings. Env tags are relative to the prefix the
// config package assigns (BLOCKCAST_AUDIO_).
type AudioConfig struct {
	Enabled      bool    `env:"ENABLED"`
	MasterVolume float64 `env:"VOLUME"`
	SampleRate   int     `env:"SAMPLE_RATE"`

	// Per-effect gain, not loaded from the environment
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at moderate volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundTick:     0.3,
			SoundPlace:    0.6,
			SoundClear:    0.7,
			SoundReject:   0.5,
			SoundGameOver: 0.8,
		},
	}
}

// Normalize clamps the volume and replaces an invalid sample rate
func (c *AudioConfig) Normalize() {
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constants.DefaultSampleRate
	}
}

// volume returns the final gain for one effect
func (c *AudioConfig) volume(s SoundType) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}
