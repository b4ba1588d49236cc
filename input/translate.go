package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockcast/engine"
)

// Command is the adapter-level result of one terminal event
type Command struct {
	Action Action
	Key    engine.Key
}

// Translator turns tcell events into commands
type Translator struct {
	table *KeyTable
}

// NewTranslator creates a translator; nil table selects DefaultKeyTable
func NewTranslator(table *KeyTable) *Translator {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Translator{table: table}
}

// Translate maps one event. Unbound keys and unrelated events give ActionNone.
func (t *Translator) Translate(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := t.table.Lookup(ev)
		if !ok {
			return Command{}
		}
		return Command{Action: entry.Action, Key: entry.Key}
	case *tcell.EventResize:
		return Command{Action: ActionResize}
	}
	return Command{}
}
