package heuristic

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/blockcast/board"
	"github.com/lixenwraith/blockcast/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilityEmptyBoard(t *testing.T) {
	var b board.Board
	for _, typ := range piece.All() {
		assert.Zero(t, Utility(&b, typ), typ.String())
	}
}

func TestUtilityCompletesLine(t *testing.T) {
	var b board.Board
	b[0] = 0x0F // four cells, a 4h completes the row

	// completed row is worth 10; row 0 itself is full so not near-full
	assert.Equal(t, 10, Utility(&b, piece.Bar4H))
	// 3h leaves row 0 at 7 of 8: one near-full line
	assert.Equal(t, 1, Utility(&b, piece.Bar3H))
	// single cell reaches at best 5 of 8
	assert.Equal(t, 0, Utility(&b, piece.Single))
}

func TestUtilityCountsRowsAndColumns(t *testing.T) {
	var b board.Board
	// column 0 has 7 cells, row 7 has 7 cells, cell (0,7) is the shared gap
	for y := 0; y < 7; y++ {
		b[y] |= 1
	}
	b[7] = 0xFE

	// filling (0,7) completes row 7 and column 0
	assert.Equal(t, 20, Utility(&b, piece.Single))
}

func TestUtilityNoLegalOrigin(t *testing.T) {
	var b board.Board
	for y := range b {
		b[y] = 0xEE
	}
	assert.Zero(t, Utility(&b, piece.Square3))
	assert.Greater(t, Utility(&b, piece.Bar5V), 0)
}

func TestScorerMatchesUncached(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	s := NewScorer(8)

	boards := make([]board.Board, 20)
	for i := range boards {
		for y := range boards[i] {
			boards[i][y] = uint8(rng.Intn(256)) & uint8(rng.Intn(256))
		}
	}

	// two passes so the second is served from cache where capacity allows
	for pass := 0; pass < 2; pass++ {
		for i := range boards {
			require.Equal(t, Evaluate(&boards[i]), s.Evaluate(&boards[i]), "board %d pass %d", i, pass)
		}
	}
	assert.LessOrEqual(t, s.Len(), 8)
}

func TestScorerCaches(t *testing.T) {
	s := NewScorer(0)
	var b board.Board
	b[3] = 0x3C

	first := s.Utility(&b, piece.Bar2H)
	second := s.Utility(&b, piece.Bar2H)

	assert.Equal(t, first, second)
	hits, misses := s.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 1, s.Len())
}
