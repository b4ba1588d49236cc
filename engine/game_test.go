package engine

import (
	"bytes"
	"log"
	"sync"
	"testing"

	"github.com/lixenwraith/blockcast/events"
	"github.com/lixenwraith/blockcast/piece"
	"github.com/lixenwraith/blockcast/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, types ...piece.Type) (*Game, *events.FeedbackQueue, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	q := events.NewFeedbackQueue()
	g := NewGame(newTestSession(t, types...), q, status.NewRegistry(), log.New(&buf, "", 0))
	return g, q, &buf
}

func TestGamePublishesFeedback(t *testing.T) {
	g, q, _ := newTestGame(t, piece.Single, piece.Bar2H, piece.Single)

	g.Apply(KeyDown)
	g.Apply(KeyLeft) // no-op in vertical layout
	g.Apply(KeyConfirm)
	g.Apply(KeyConfirm)

	got := q.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, events.FeedbackMovedSelection, got[0].Kind)
	assert.Equal(t, events.FeedbackEnteredPlacement, got[1].Kind)
	assert.Equal(t, events.FeedbackPlacedNoClear, got[2].Kind)
	assert.Equal(t, uint32(2), got[2].Gained)
}

func TestGameRecordsStats(t *testing.T) {
	g, _, buf := newTestGame(t, piece.Single, piece.Single, piece.Single)
	stats := g.Stats()
	assert.Equal(t, int64(1), stats.Int(status.KeyGames).Load())
	assert.Equal(t, "uniform", stats.Text(status.KeyPolicy).Load())

	g.mu.Lock()
	g.session.Board[3] = 0xFF &^ (1 << 3)
	g.session.Board[4] = 1 << 3
	g.mu.Unlock()

	g.Apply(KeyConfirm)
	g.Apply(KeyDown)
	out := g.Apply(KeyConfirm)
	assert.Equal(t, events.FeedbackRejectedPlacement, out.Feedback)

	g.Apply(KeyUp)
	out = g.Apply(KeyConfirm)
	require.Equal(t, events.FeedbackPlacedWithClear, out.Feedback)

	assert.Equal(t, int64(1), stats.Int(status.KeyPlacements).Load())
	assert.Equal(t, int64(1), stats.Int(status.KeyLines).Load())
	assert.Equal(t, int64(1), stats.Int(status.KeyRejected).Load())
	assert.Equal(t, int64(11), stats.Int(status.KeyBestScore).Load())
	assert.Contains(t, buf.String(), "cleared 1 lines")
}

func TestGameRestartCountsGames(t *testing.T) {
	g, _, buf := newTestGame(t, piece.Single, piece.Square3, piece.Square3)
	stats := g.Stats()

	g.mu.Lock()
	g.session.Board = checkerboard()
	g.session.Score = 50
	g.mu.Unlock()

	g.Apply(KeyConfirm)
	for i := 0; i < 3; i++ {
		g.Apply(KeyUp)
	}
	for i := 0; i < 2; i++ {
		g.Apply(KeyLeft)
	}
	require.Equal(t, Cursor{X: 1, Y: 0}, g.Snapshot().Cursor)
	out := g.Apply(KeyConfirm)
	require.Equal(t, events.FeedbackGameOver, out.Feedback)
	assert.Equal(t, int64(51), stats.Int(status.KeyBestScore).Load())

	oldID := stats.Text(status.KeySession).Load()
	out = g.Apply(KeyConfirm)
	assert.Equal(t, events.FeedbackRestarted, out.Feedback)
	assert.Equal(t, int64(2), stats.Int(status.KeyGames).Load())
	assert.NotEqual(t, oldID, stats.Text(status.KeySession).Load())
	assert.Equal(t, int64(51), stats.Int(status.KeyBestScore).Load(), "best survives restart")
	assert.Contains(t, buf.String(), "game over, score 51")
}

func TestGameNilCollaborators(t *testing.T) {
	g := NewGame(newTestSession(t), nil, nil, nil)
	assert.NotPanics(t, func() {
		g.Apply(KeyDown)
		g.Apply(KeyConfirm)
	})
	assert.NotNil(t, g.Stats())
}

func TestGameConcurrentApplyAndRender(t *testing.T) {
	g, q, _ := newTestGame(t)
	keys := []Key{KeyDown, KeyConfirm, KeyLeft, KeyRight, KeyUp, KeyConfirm, KeyCancel}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := keys[i%len(keys)]
				if k == KeyCancel {
					continue
				}
				g.Apply(k)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				g.Render(func(s Snapshot) {
					if s.HasGhost {
						_ = s.Ghost.Cells()
					}
				})
			}
		}()
	}
	wg.Wait()

	snap := g.Snapshot()
	assert.LessOrEqual(t, snap.Board.Filled(), 64)
	q.Consume()
}
