package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundTick     SoundType = iota // Selection moved, placement entered, restart
	SoundPlace                     // Piece dropped without clearing
	SoundClear                     // Rising arpeggio for cleared lines
	SoundReject                    // Double buzz for an illegal drop
	SoundGameOver                  // Falling three notes
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"tick", "place", "clear", "reject", "gameover"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
)
