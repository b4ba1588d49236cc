package engine

import (
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/blockcast/events"
	"github.com/lixenwraith/blockcast/status"
)

// Game guards a Session with one mutex held for a whole Apply or a whole Render,
// so a frame never observes a partially applied transition
type Game struct {
	mu       sync.Mutex
	session  *Session
	feedback *events.FeedbackQueue
	stats    *status.Registry
	logger   *log.Logger

	// Cached metric pointers
	games      *atomic.Int64
	placements *atomic.Int64
	lines      *atomic.Int64
	rejected   *atomic.Int64
}

// NewGame wraps session. feedback, stats and logger may be nil.
func NewGame(session *Session, feedback *events.FeedbackQueue, stats *status.Registry, logger *log.Logger) *Game {
	if stats == nil {
		stats = status.NewRegistry()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	g := &Game{
		session:    session,
		feedback:   feedback,
		stats:      stats,
		logger:     logger,
		games:      stats.Int(status.KeyGames),
		placements: stats.Int(status.KeyPlacements),
		lines:      stats.Int(status.KeyLines),
		rejected:   stats.Int(status.KeyRejected),
	}
	stats.Text(status.KeyPolicy).Store(session.Policy().Name())
	g.startGame()
	return g
}

// Apply processes one input under the lock and publishes its feedback
func (g *Game) Apply(k Key) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := g.session.Apply(k)
	g.record(k, out)
	if g.feedback != nil && out.Feedback != events.FeedbackNone {
		g.feedback.Push(events.FeedbackEvent{Kind: out.Feedback, Lines: out.Lines, Gained: out.Gained})
	}
	return out
}

// Snapshot returns a copy of the current state
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Snapshot()
}

// Render calls fn with the current state while holding the lock
func (g *Game) Render(fn func(Snapshot)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.session.Snapshot())
}

// Stats returns the registry the game records into
func (g *Game) Stats() *status.Registry {
	return g.stats
}

func (g *Game) startGame() {
	g.games.Add(1)
	g.stats.Text(status.KeySession).Store(g.session.ID.String())
	g.logger.Printf("session %s: new game, hand %s", g.session.ID, g.session.Hand)
}

func (g *Game) record(k Key, out Outcome) {
	s := g.session
	switch {
	case out.Placed():
		g.placements.Add(1)
		g.lines.Add(int64(out.Lines))
		g.stats.Max(status.KeyBestScore, int64(s.Score))
		if out.Lines > 0 {
			g.logger.Printf("session %s: cleared %d lines, +%d, score %d", s.ID, out.Lines, out.Gained, s.Score)
		}
		if out.Refilled {
			g.logger.Printf("session %s: hand refilled %s", s.ID, s.Hand)
		}
	case out.Feedback == events.FeedbackRejectedPlacement:
		g.rejected.Add(1)
	case out.Feedback == events.FeedbackRestarted:
		g.startGame()
	case out.Feedback == events.FeedbackQuit:
		g.logger.Printf("session %s: quit on %s, score %d", s.ID, k, s.Score)
	}
	if out.Feedback == events.FeedbackGameOver {
		g.logger.Printf("session %s: game over, score %d", s.ID, s.Score)
	}
}
