package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockcast/engine"
)

// Action classifies what a terminal key does outside the game state machine
type Action uint8

const (
	ActionNone   Action = iota
	ActionGame          // forward Key to the engine
	ActionMute          // toggle audio
	ActionQuit          // leave immediately regardless of phase
	ActionResize        // terminal size changed
)

var actionNames = [...]string{"none", "game", "mute", "quit", "resize"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// KeyEntry describes one binding
type KeyEntry struct {
	Action Action
	Key    engine.Key
}

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable keys, matched case-insensitively
	Runes map[rune]KeyEntry
}

func game(k engine.Key) KeyEntry { return KeyEntry{Action: ActionGame, Key: k} }

// DefaultKeyTable returns the default bindings: arrows, hjkl and wasd move,
// Enter and Space confirm, Esc, Backspace and q cancel
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:      {Action: ActionQuit},
			tcell.KeyCtrlQ:      {Action: ActionQuit},
			tcell.KeyUp:         game(engine.KeyUp),
			tcell.KeyDown:       game(engine.KeyDown),
			tcell.KeyLeft:       game(engine.KeyLeft),
			tcell.KeyRight:      game(engine.KeyRight),
			tcell.KeyEnter:      game(engine.KeyConfirm),
			tcell.KeyEscape:     game(engine.KeyCancel),
			tcell.KeyBackspace:  game(engine.KeyCancel),
			tcell.KeyBackspace2: game(engine.KeyCancel),
		},

		Runes: map[rune]KeyEntry{
			// Vi motions
			'h': game(engine.KeyLeft),
			'j': game(engine.KeyDown),
			'k': game(engine.KeyUp),
			'l': game(engine.KeyRight),

			// WASD
			'w': game(engine.KeyUp),
			'a': game(engine.KeyLeft),
			's': game(engine.KeyDown),
			'd': game(engine.KeyRight),

			' ': game(engine.KeyConfirm),
			'q': game(engine.KeyCancel),
			'm': {Action: ActionMute},
		},
	}
}

// Lookup returns the binding for a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		// Some terminals report Ctrl+letter as a modified rune
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'q') {
			return KeyEntry{Action: ActionQuit}, true
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		e, ok := t.Runes[r]
		return e, ok
	}
	e, ok := t.SpecialKeys[ev.Key()]
	return e, ok
}
