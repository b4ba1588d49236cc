package events

// Feedback classifies the outcome of one processed input, for audio and haptic consumers
type Feedback uint8

const (
	// FeedbackNone: input changed nothing worth signalling (cursor move, clamped move)
	FeedbackNone Feedback = iota

	// FeedbackMovedSelection: hand selection cycled or placement was cancelled
	FeedbackMovedSelection

	// FeedbackEnteredPlacement: a slot was confirmed and the ghost appeared
	FeedbackEnteredPlacement

	// FeedbackPlacedNoClear: piece committed, no line completed
	FeedbackPlacedNoClear

	// FeedbackPlacedWithClear: piece committed and at least one line cleared
	FeedbackPlacedWithClear

	// FeedbackRejectedPlacement: confirm on an origin where the piece does not fit
	FeedbackRejectedPlacement

	// FeedbackGameOver: no piece in hand fits after a placement resolved
	FeedbackGameOver

	// FeedbackRestarted: a finished game was reset
	FeedbackRestarted

	// FeedbackQuit: the player ended the session
	FeedbackQuit
)

var feedbackNames = [...]string{
	FeedbackNone:              "none",
	FeedbackMovedSelection:    "moved-selection",
	FeedbackEnteredPlacement:  "entered-placement",
	FeedbackPlacedNoClear:     "placed-no-clear",
	FeedbackPlacedWithClear:   "placed-with-clear",
	FeedbackRejectedPlacement: "rejected-placement",
	FeedbackGameOver:          "game-over",
	FeedbackRestarted:         "restarted",
	FeedbackQuit:              "quit",
}

func (f Feedback) String() string {
	if int(f) < len(feedbackNames) {
		return feedbackNames[f]
	}
	return "unknown"
}

// Audible reports whether consumers should react to f
func (f Feedback) Audible() bool {
	return f != FeedbackNone && f != FeedbackQuit
}

// FeedbackEvent is one queued outcome
type FeedbackEvent struct {
	Kind   Feedback
	Lines  int    // lines cleared by the placement
	Gained uint32 // score added by the event
}
