package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/events"
)

// RenderFunc draws one frame; it runs while the game lock is held
type RenderFunc func(Snapshot)

// Loop feeds keys into a Game one at a time and renders after each key and
// whenever no key arrives within the idle interval
type Loop struct {
	game   *Game
	input  <-chan Key
	render RenderFunc
	idle   time.Duration
}

// NewLoop creates a loop; render may be nil
func NewLoop(game *Game, input <-chan Key, render RenderFunc) *Loop {
	if render == nil {
		render = func(Snapshot) {}
	}
	return &Loop{
		game:   game,
		input:  input,
		render: render,
		idle:   constants.IdleRenderInterval,
	}
}

// SetIdle overrides the idle re-render interval
func (l *Loop) SetIdle(d time.Duration) {
	if d > 0 {
		l.idle = d
	}
}

// Run processes input until the player quits, the input channel closes or ctx is done.
// Quit and a closed channel return nil; cancellation returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	l.game.Render(l.render)

	timer := time.NewTimer(l.idle)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case k, ok := <-l.input:
			if !ok {
				return nil
			}
			out := l.game.Apply(k)
			l.game.Render(l.render)
			if out.Feedback == events.FeedbackQuit {
				return nil
			}
			timer.Reset(l.idle)

		case <-timer.C:
			l.game.Render(l.render)
			timer.Reset(l.idle)
		}
	}
}
