package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/events"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("stream did not end")
	return 0, 0
}

// TestOscillatorWaves verifies every wave shape stays in [-1, 1] for its full duration
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 20 * time.Millisecond

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, duration, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(duration) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(duration), n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if wave != WaveNoise && peak == 0 {
			t.Errorf("wave %d: silent", wave)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", buf[50][0])
	}
	if buf[99][0] > 0.2 {
		t.Errorf("Expected release near zero, got %f", buf[99][0])
	}
}

// TestNewVolumeZero verifies zero volume is silent rather than -Inf gain
func TestNewVolumeZero(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSine, rate), 0)
	n, peak := drain(t, s)
	if n == 0 {
		t.Error("Expected samples from silent stream")
	}
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

// TestSoundDurations verifies each cue lasts exactly its configured length
func TestSoundDurations(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound SoundType
		want  time.Duration
	}{
		{SoundTick, constants.TickSoundDuration},
		{SoundPlace, constants.PlaceSoundDuration},
		{SoundClear, 2*constants.ClearSoundNoteDuration + constants.ClearSoundLastDuration},
		{SoundReject, 2*constants.RejectSoundDuration + constants.RejectSoundGap},
		{SoundGameOver, 2*constants.GameOverNoteDuration + constants.GameOverLastDuration},
	}

	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tc.sound, cfg)
			if s == nil {
				t.Fatal("Expected non-nil sound")
			}
			n, peak := drain(t, s)
			if want := rate.N(tc.want); n != want {
				t.Errorf("Expected %d samples, got %d", want, n)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Unexpected peak %f", peak)
			}
		})
	}
}

// TestGetSoundEffectInvalid verifies unknown types give no streamer
func TestGetSoundEffectInvalid(t *testing.T) {
	if GetSoundEffect(SoundType(99), DefaultAudioConfig()) != nil {
		t.Error("Expected nil for invalid sound type")
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected unknown name")
	}
}

// TestMasterVolumeScales verifies master volume scales the peak
func TestMasterVolumeScales(t *testing.T) {
	loud := DefaultAudioConfig()
	loud.MasterVolume = 1
	quiet := DefaultAudioConfig()
	quiet.MasterVolume = 0.25

	_, loudPeak := drain(t, CreatePlaceSound(loud))
	_, quietPeak := drain(t, CreatePlaceSound(quiet))
	if quietPeak >= loudPeak {
		t.Errorf("Expected quieter peak: loud %f quiet %f", loudPeak, quietPeak)
	}

	off := DefaultAudioConfig()
	off.MasterVolume = 0
	if _, peak := drain(t, CreatePlaceSound(off)); peak != 0 {
		t.Errorf("Expected silence at zero volume, got %f", peak)
	}
}

// TestSoundsForFeedback verifies the feedback to sound mapping
func TestSoundsForFeedback(t *testing.T) {
	tests := []struct {
		ev   events.FeedbackEvent
		want []SoundType
	}{
		{events.FeedbackEvent{Kind: events.FeedbackNone}, nil},
		{events.FeedbackEvent{Kind: events.FeedbackQuit}, nil},
		{events.FeedbackEvent{Kind: events.FeedbackMovedSelection}, []SoundType{SoundTick}},
		{events.FeedbackEvent{Kind: events.FeedbackEnteredPlacement}, []SoundType{SoundTick}},
		{events.FeedbackEvent{Kind: events.FeedbackRestarted}, []SoundType{SoundTick}},
		{events.FeedbackEvent{Kind: events.FeedbackPlacedNoClear}, []SoundType{SoundPlace}},
		{events.FeedbackEvent{Kind: events.FeedbackPlacedWithClear, Lines: 2}, []SoundType{SoundClear}},
		{events.FeedbackEvent{Kind: events.FeedbackRejectedPlacement}, []SoundType{SoundReject}},
		{events.FeedbackEvent{Kind: events.FeedbackGameOver}, []SoundType{SoundPlace, SoundGameOver}},
		{events.FeedbackEvent{Kind: events.FeedbackGameOver, Lines: 1}, []SoundType{SoundClear, SoundGameOver}},
	}

	for _, tc := range tests {
		got := SoundsFor(tc.ev)
		if len(got) != len(tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.ev.Kind, tc.want, got)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: expected %v, got %v", tc.ev.Kind, tc.want, got)
			}
		}
	}
}

// TestCueForGameOverAfterClear verifies the combined cue plays both phrases back to back
func TestCueForGameOverAfterClear(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	cue := CueFor(events.FeedbackEvent{Kind: events.FeedbackGameOver, Lines: 1}, cfg)
	n, _ := drain(t, cue)

	clear := 2*constants.ClearSoundNoteDuration + constants.ClearSoundLastDuration
	over := 2*constants.GameOverNoteDuration + constants.GameOverLastDuration
	if want := rate.N(clear) + rate.N(over); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}

	if CueFor(events.FeedbackEvent{Kind: events.FeedbackQuit}, cfg) != nil {
		t.Error("Expected no cue for quit")
	}
}
