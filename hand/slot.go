package hand

import "github.com/lixenwraith/blockcast/piece"

// Slot is either empty or holds one piece type
type Slot struct {
	typ      piece.Type
	occupied bool
}

// Empty is the slot left behind by a placed piece
var Empty = Slot{}

// Holding returns a slot occupied by t
func Holding(t piece.Type) Slot {
	return Slot{typ: t, occupied: true}
}

// Piece returns the held type and whether the slot is occupied
func (s Slot) Piece() (piece.Type, bool) {
	return s.typ, s.occupied
}

// Occupied reports whether the slot holds a piece
func (s Slot) Occupied() bool {
	return s.occupied
}

func (s Slot) String() string {
	if !s.occupied {
		return "-"
	}
	return s.typ.String()
}
