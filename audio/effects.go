package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/events"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped oscillator note
func tone(freq float64, duration, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

// Sound effect generators

// CreateTickSound generates a very short high click for navigation
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	t := tone(constants.NoteC7, constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease, WaveSine, rate)
	return newVolume(t, cfg.volume(SoundTick))
}

// CreatePlaceSound generates a soft blip for a drop without clears
func CreatePlaceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E6) with a quiet octave below for body
	fund := tone(constants.NoteE6, constants.PlaceSoundDuration, constants.PlaceSoundAttack, constants.PlaceSoundRelease, WaveSine, rate)
	body := tone(constants.NoteE6/2, constants.PlaceSoundDuration, constants.PlaceSoundAttack, constants.PlaceSoundRelease, WaveSine, rate)

	// Take bounds the mix to the note length
	mixed := beep.Take(rate.N(constants.PlaceSoundDuration), beep.Mix(
		newVolume(fund, 0.7),
		newVolume(body, 0.3),
	))
	return newVolume(mixed, cfg.volume(SoundPlace))
}

// CreateClearSound generates a rising C6-E6-G6 arpeggio
func CreateClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(constants.NoteC6, constants.ClearSoundNoteDuration, constants.ClearSoundAttack, constants.ClearSoundRelease, WaveSquare, rate)
	n2 := tone(constants.NoteE6, constants.ClearSoundNoteDuration, constants.ClearSoundAttack, constants.ClearSoundRelease, WaveSquare, rate)
	n3 := tone(constants.NoteG6, constants.ClearSoundLastDuration, constants.ClearSoundAttack, constants.ClearSoundRelease, WaveSquare, rate)

	// Square waves are loud; scale before the effect gain
	sequence := newVolume(beep.Seq(n1, n2, n3), 0.5)
	return newVolume(sequence, cfg.volume(SoundClear))
}

// CreateRejectSound generates two short low buzzes
func CreateRejectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	b1 := tone(constants.NoteC5/4, constants.RejectSoundDuration, constants.RejectSoundAttack, constants.RejectSoundRelease, WaveSaw, rate)
	b2 := tone(constants.NoteC5/4, constants.RejectSoundDuration, constants.RejectSoundAttack, constants.RejectSoundRelease, WaveSaw, rate)

	sequence := beep.Seq(b1, beep.Silence(rate.N(constants.RejectSoundGap)), b2)
	return newVolume(sequence, cfg.volume(SoundReject))
}

// CreateGameOverSound generates a falling G5-E5-C5 phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(constants.NoteG5, constants.GameOverNoteDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, WaveSine, rate)
	n2 := tone(constants.NoteE5, constants.GameOverNoteDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, WaveSine, rate)
	n3 := tone(constants.NoteC5, constants.GameOverLastDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, WaveSine, rate)

	return newVolume(beep.Seq(n1, n2, n3), cfg.volume(SoundGameOver))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundTick:
		return CreateTickSound(cfg)
	case SoundPlace:
		return CreatePlaceSound(cfg)
	case SoundClear:
		return CreateClearSound(cfg)
	case SoundReject:
		return CreateRejectSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}

// SoundsFor lists the effects played, in order, for one feedback event
func SoundsFor(ev events.FeedbackEvent) []SoundType {
	switch ev.Kind {
	case events.FeedbackMovedSelection, events.FeedbackEnteredPlacement, events.FeedbackRestarted:
		return []SoundType{SoundTick}
	case events.FeedbackPlacedNoClear:
		return []SoundType{SoundPlace}
	case events.FeedbackPlacedWithClear:
		return []SoundType{SoundClear}
	case events.FeedbackRejectedPlacement:
		return []SoundType{SoundReject}
	case events.FeedbackGameOver:
		if ev.Lines > 0 {
			return []SoundType{SoundClear, SoundGameOver}
		}
		return []SoundType{SoundPlace, SoundGameOver}
	}
	return nil
}

// CueFor builds the streamer for one feedback event, nil when it is silent
func CueFor(ev events.FeedbackEvent, cfg *AudioConfig) beep.Streamer {
	sounds := SoundsFor(ev)
	switch len(sounds) {
	case 0:
		return nil
	case 1:
		return GetSoundEffect(sounds[0], cfg)
	}
	streamers := make([]beep.Streamer, 0, len(sounds))
	for _, s := range sounds {
		streamers = append(streamers, GetSoundEffect(s, cfg))
	}
	return beep.Seq(streamers...)
}
