// Package hand manages the fixed row of pieces offered to the player.
package hand

import (
	"math/rand"
	"strings"

	"github.com/lixenwraith/blockcast/board"
	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/piece"
)

// Size is the number of slots in a hand
const Size = constants.HandSize

// Hand is a fixed row of slots; refilled only when every slot is empty
type Hand [Size]Slot

// New returns a hand holding the given types, remaining slots empty
func New(types ...piece.Type) Hand {
	var h Hand
	for i := 0; i < len(types) && i < Size; i++ {
		h[i] = Holding(types[i])
	}
	return h
}

// Refill draws a full hand from policy when every slot is empty.
// Returns false and leaves the hand untouched otherwise.
func (h *Hand) Refill(b *board.Board, policy Policy, rng *rand.Rand) bool {
	if !h.IsEmpty() {
		return false
	}
	w := policy.Weights(b)
	for i := range h {
		h[i] = Holding(w.Draw(rng))
	}
	return true
}

// MarkUsed empties slot i
func (h *Hand) MarkUsed(i int) {
	if i < 0 || i >= Size {
		return
	}
	h[i] = Empty
}

// Get returns slot i; out of range is empty
func (h *Hand) Get(i int) Slot {
	if i < 0 || i >= Size {
		return Empty
	}
	return h[i]
}

// Next searches cyclically from start in direction dir (+1 or -1), skipping empty
// slots and start itself. Returns false if no other slot is occupied.
func (h *Hand) Next(start, dir int) (int, bool) {
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	for i := 1; i < Size; i++ {
		idx := ((start+dir*i)%Size + Size) % Size
		if h[idx].Occupied() {
			return idx, true
		}
	}
	return start, false
}

// FirstOccupied returns the lowest occupied slot index
func (h *Hand) FirstOccupied() (int, bool) {
	for i := range h {
		if h[i].Occupied() {
			return i, true
		}
	}
	return 0, false
}

// Occupied returns the number of occupied slots
func (h *Hand) Occupied() int {
	n := 0
	for i := range h {
		if h[i].Occupied() {
			n++
		}
	}
	return n
}

// IsEmpty reports whether every slot has been used
func (h *Hand) IsEmpty() bool {
	return h.Occupied() == 0
}

// AnyFits reports whether some occupied slot's shape has a legal origin on b
func (h *Hand) AnyFits(b *board.Board) bool {
	for i := range h {
		if t, ok := h[i].Piece(); ok && b.Fits(t.Shape()) {
			return true
		}
	}
	return false
}

func (h Hand) String() string {
	parts := make([]string, Size)
	for i := range h {
		parts[i] = h[i].String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
