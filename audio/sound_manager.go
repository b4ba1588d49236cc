package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/events"
)

// speakerLocker guards the mixer while the speaker goroutine streams it
type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// SoundManager plays feedback cues through one speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	locker      sync.Locker
	initialized bool

	muted  atomic.Bool
	played atomic.Int64
}

// NewSoundManager creates a sound manager; nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		locker: speakerLocker{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.locker.Lock()
	sm.mixer.Clear()
	sm.locker.Unlock()

	if _, ok := sm.locker.(speakerLocker); ok {
		speaker.Close()
	}
	sm.initialized = false
}

// Muted exposes the mute flag for display
func (sm *SoundManager) Muted() *atomic.Bool {
	return &sm.muted
}

// ToggleMute flips mute and returns the new state. Muting drops queued sounds.
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	if muted {
		sm.mu.Lock()
		if sm.initialized {
			sm.locker.Lock()
			sm.mixer.Clear()
			sm.locker.Unlock()
		}
		sm.mu.Unlock()
	}
	return muted
}

// Played returns how many cues reached the mixer
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play queues one effect
func (sm *SoundManager) Play(s SoundType) error {
	return sm.add(GetSoundEffect(s, sm.cfg))
}

// PlayFeedback queues the cue for one feedback event; silent events are a no-op
func (sm *SoundManager) PlayFeedback(ev events.FeedbackEvent) error {
	if !ev.Kind.Audible() {
		return nil
	}
	return sm.add(CueFor(ev, sm.cfg))
}

func (sm *SoundManager) add(st beep.Streamer) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if st == nil || sm.muted.Load() {
		return nil
	}

	sm.locker.Lock()
	sm.mixer.Add(st)
	sm.locker.Unlock()
	sm.played.Add(1)
	return nil
}

// pending returns the number of streamers still in the mixer
func (sm *SoundManager) pending() int {
	sm.locker.Lock()
	defer sm.locker.Unlock()
	return sm.mixer.Len()
}
