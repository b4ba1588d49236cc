package engine

import (
	"github.com/lixenwraith/blockcast/board"
	"github.com/lixenwraith/blockcast/hand"
	"github.com/lixenwraith/blockcast/piece"
)

// Snapshot is a copy of everything a renderer needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	SessionID string
	Board     board.Board
	Hand      hand.Hand
	Selected  int
	Phase     Phase
	Score     uint32
	Layout    Layout
	Policy    string

	// Placement view, meaningful only in PhasePlace
	Cursor   Cursor
	Ghost    piece.Shape
	HasGhost bool
	Valid    bool        // ghost can be placed at Cursor
	Preview  board.Clear // lines that would clear on confirm
}

// Snapshot copies the session state for rendering
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID: s.ID.String(),
		Board:     s.Board,
		Hand:      s.Hand,
		Selected:  s.Selected,
		Phase:     s.Phase,
		Score:     s.Score,
		Layout:    s.layout,
		Policy:    s.policy.Name(),
		Cursor:    s.Cursor,
	}

	if s.Phase != PhasePlace {
		return snap
	}
	t, ok := s.SelectedPiece()
	if !ok {
		return snap
	}
	snap.Ghost = t.Shape()
	snap.HasGhost = true
	snap.Valid = s.Board.CanPlace(snap.Ghost, s.Cursor.X, s.Cursor.Y)
	if snap.Valid {
		snap.Preview = s.Board.PreviewClear(snap.Ghost, s.Cursor.X, s.Cursor.Y)
	}
	return snap
}
