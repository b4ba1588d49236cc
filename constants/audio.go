package constants

import "time"

// Audio Engine Timing
const (
	// AudioDrainInterval is how often the audio consumer drains the feedback queue
	AudioDrainInterval = 10 * time.Millisecond

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultSampleRate is used when no sample rate is configured
	DefaultSampleRate = 48000
)

// Tick Sound Timing (selection moved, placement mode entered, restart)
const (
	TickSoundDuration = 10 * time.Millisecond
	TickSoundAttack   = 1 * time.Millisecond
	TickSoundRelease  = 4 * time.Millisecond
)

// Place Sound Timing
const (
	PlaceSoundDuration = 50 * time.Millisecond
	PlaceSoundAttack   = 2 * time.Millisecond
	PlaceSoundRelease  = 20 * time.Millisecond
)

// Clear Sound Timing (three-note arpeggio)
const (
	ClearSoundNoteDuration = 50 * time.Millisecond
	ClearSoundLastDuration = 100 * time.Millisecond
	ClearSoundAttack       = 2 * time.Millisecond
	ClearSoundRelease      = 25 * time.Millisecond
)

// Reject Sound Timing (double buzz)
const (
	RejectSoundDuration = 25 * time.Millisecond
	RejectSoundGap      = 25 * time.Millisecond
	RejectSoundAttack   = 2 * time.Millisecond
	RejectSoundRelease  = 8 * time.Millisecond
)

// Game Over Sound Timing (falling three notes)
const (
	GameOverNoteDuration = 100 * time.Millisecond
	GameOverLastDuration = 250 * time.Millisecond
	GameOverSoundAttack  = 5 * time.Millisecond
	GameOverSoundRelease = 60 * time.Millisecond
)

// Note frequencies (Hz)
const (
	NoteC5 = 523.25
	NoteE5 = 659.25
	NoteG5 = 783.99
	NoteC6 = 1046.50
	NoteE6 = 1318.51
	NoteG6 = 1567.98
	NoteC7 = 2093.00
)
