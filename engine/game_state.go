package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/blockcast/board"
	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/events"
	"github.com/lixenwraith/blockcast/hand"
	"github.com/lixenwraith/blockcast/piece"
)

// Cursor is the board origin of the ghost piece
type Cursor struct {
	X, Y int
}

// Outcome reports what one input did
type Outcome struct {
	Feedback events.Feedback
	Lines    int    // lines cleared by a placement
	Gained   uint32 // score added
	Refilled bool   // hand was redrawn after the placement
}

// Placed reports whether the input committed a piece
func (o Outcome) Placed() bool {
	switch o.Feedback {
	case events.FeedbackPlacedNoClear, events.FeedbackPlacedWithClear, events.FeedbackGameOver:
		return true
	}
	return false
}

// Options configure a Session
type Options struct {
	Policy hand.Policy // nil selects the weighted policy
	Layout Layout
	Rand   *rand.Rand // nil seeds from the clock
}

// Session is the complete state of one game. It is not safe for concurrent use;
// Game serializes access.
type Session struct {
	ID       uuid.UUID
	Board    board.Board
	Hand     hand.Hand
	Selected int
	Cursor   Cursor
	Phase    Phase
	Score    uint32

	policy hand.Policy
	layout Layout
	rng    *rand.Rand
}

// NewSession creates a session with a fresh game
func NewSession(opts Options) *Session {
	s := &Session{
		policy: opts.Policy,
		layout: opts.Layout,
		rng:    opts.Rand,
	}
	if s.policy == nil {
		s.policy = hand.NewWeighted()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.Reset()
	return s
}

// Reset starts a new game: empty board, zero score, fresh hand, new ID
func (s *Session) Reset() {
	s.ID = uuid.New()
	s.Board = board.Board{}
	s.Hand = hand.Hand{}
	s.Score = 0
	s.Phase = PhaseSelect
	s.Selected = 0
	s.Cursor = Cursor{X: constants.BoardSize/2 - 1, Y: constants.BoardSize/2 - 1}
	s.Hand.Refill(&s.Board, s.policy, s.rng)
}

// Policy returns the hand generation policy
func (s *Session) Policy() hand.Policy {
	return s.policy
}

// Layout returns the selection key layout
func (s *Session) Layout() Layout {
	return s.layout
}

// SelectedPiece returns the shape in the selected slot
func (s *Session) SelectedPiece() (piece.Type, bool) {
	return s.Hand.Get(s.Selected).Piece()
}

// Apply processes one input. Every key is valid in every phase; unrelated keys are no-ops.
func (s *Session) Apply(k Key) Outcome {
	switch s.Phase {
	case PhaseSelect:
		return s.applySelect(k)
	case PhasePlace:
		return s.applyPlace(k)
	case PhaseOver:
		return s.applyOver(k)
	}
	return Outcome{}
}

func (s *Session) applySelect(k Key) Outcome {
	if step := s.layout.selectionStep(k); step != 0 {
		if s.Hand.Occupied() < 2 {
			return Outcome{}
		}
		if next, ok := s.Hand.Next(s.Selected, step); ok {
			s.Selected = next
			return Outcome{Feedback: events.FeedbackMovedSelection}
		}
		return Outcome{}
	}

	switch k {
	case KeyConfirm:
		t, ok := s.SelectedPiece()
		if !ok {
			return Outcome{}
		}
		x, y := t.Shape().Center()
		s.Cursor = Cursor{X: x, Y: y}
		s.Phase = PhasePlace
		return Outcome{Feedback: events.FeedbackEnteredPlacement}
	case KeyCancel:
		return Outcome{Feedback: events.FeedbackQuit}
	}
	return Outcome{}
}

func (s *Session) applyPlace(k Key) Outcome {
	t, ok := s.SelectedPiece()
	if !ok {
		// selection always points at an occupied slot while placing
		s.Phase = PhaseSelect
		return Outcome{}
	}
	shape := t.Shape()
	maxX := constants.BoardSize - int(shape.W)
	maxY := constants.BoardSize - int(shape.H)

	switch k {
	case KeyUp:
		if s.Cursor.Y > 0 {
			s.Cursor.Y--
		}
	case KeyDown:
		if s.Cursor.Y < maxY {
			s.Cursor.Y++
		}
	case KeyLeft:
		if s.Cursor.X > 0 {
			s.Cursor.X--
		}
	case KeyRight:
		if s.Cursor.X < maxX {
			s.Cursor.X++
		}
	case KeyConfirm:
		return s.commit(shape)
	case KeyCancel:
		s.Phase = PhaseSelect
		return Outcome{Feedback: events.FeedbackMovedSelection}
	}
	return Outcome{}
}

// commit places the selected piece at the cursor and resolves clears, refill and game over
func (s *Session) commit(shape piece.Shape) Outcome {
	if !s.Board.CanPlace(shape, s.Cursor.X, s.Cursor.Y) {
		return Outcome{Feedback: events.FeedbackRejectedPlacement}
	}

	out := Outcome{}
	out.Gained = uint32(s.Board.Place(shape, s.Cursor.X, s.Cursor.Y) * constants.CellPoints)
	s.Hand.MarkUsed(s.Selected)

	cleared := s.Board.ClearFullLines()
	out.Lines = cleared.Count()
	out.Gained += board.LineBonus(out.Lines)
	s.Score += out.Gained

	if s.Hand.IsEmpty() {
		out.Refilled = s.Hand.Refill(&s.Board, s.policy, s.rng)
	}

	if !s.Hand.AnyFits(&s.Board) {
		s.Phase = PhaseOver
		out.Feedback = events.FeedbackGameOver
		return out
	}

	s.Phase = PhaseSelect
	s.Selected, _ = s.Hand.FirstOccupied()
	if out.Lines > 0 {
		out.Feedback = events.FeedbackPlacedWithClear
	} else {
		out.Feedback = events.FeedbackPlacedNoClear
	}
	return out
}

func (s *Session) applyOver(k Key) Outcome {
	switch k {
	case KeyConfirm:
		s.Reset()
		return Outcome{Feedback: events.FeedbackRestarted}
	case KeyCancel:
		return Outcome{Feedback: events.FeedbackQuit}
	}
	return Outcome{}
}
