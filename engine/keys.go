package engine

// Key is a logical input; every other terminal event is handled by adapters or dropped
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyCancel
)

var keyNames = [...]string{"none", "up", "down", "left", "right", "confirm", "cancel"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Layout selects which arrow pair cycles the hand selection
type Layout uint8

const (
	// LayoutVertical: Up/Down cycle the selection (hand drawn as a column)
	LayoutVertical Layout = iota
	// LayoutHorizontal: Left/Right cycle the selection (hand drawn as a row)
	LayoutHorizontal
)

func (l Layout) String() string {
	if l == LayoutHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// selectionStep maps a key to -1/+1 selection movement for the layout, 0 if unrelated
func (l Layout) selectionStep(k Key) int {
	switch l {
	case LayoutHorizontal:
		switch k {
		case KeyLeft:
			return -1
		case KeyRight:
			return 1
		}
	default:
		switch k {
		case KeyUp:
			return -1
		case KeyDown:
			return 1
		}
	}
	return 0
}

// Phase is the state machine position
type Phase uint8

const (
	// PhaseSelect: choosing a hand slot
	PhaseSelect Phase = iota
	// PhasePlace: moving the ghost of the chosen piece
	PhasePlace
	// PhaseOver: no piece fits; only restart or quit
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSelect:
		return "select"
	case PhasePlace:
		return "place"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}
