// Package heuristic rates how useful each piece type is on a given board.
//
// A placement's value is LineUtility per line it completes plus NearFullUtility per
// incomplete row or column left with NearFullThreshold or more cells. A type's utility
// is the best value over all of its legal origins, zero when it fits nowhere.
package heuristic

import (
	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/blockcast/board"
	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/piece"
)

// Utilities holds one utility per catalog type
type Utilities [piece.Count]int

// Utility evaluates t against b without caching
func Utility(b *board.Board, t piece.Type) int {
	s := t.Shape()
	best := 0
	for y := 0; y <= constants.BoardSize-int(s.H); y++ {
		for x := 0; x <= constants.BoardSize-int(s.W); x++ {
			if !b.CanPlace(s, x, y) {
				continue
			}
			scratch := *b
			scratch.Place(s, x, y)
			if v := placementValue(&scratch); v > best {
				best = v
			}
		}
	}
	return best
}

// placementValue scores a board after a simulated placement, before clearing
func placementValue(b *board.Board) int {
	lines := b.FullLines().Count()
	near := 0
	for i := 0; i < constants.BoardSize; i++ {
		if n := b.RowCount(i); n >= constants.NearFullThreshold && n < constants.BoardSize {
			near++
		}
		if n := b.ColCount(i); n >= constants.NearFullThreshold && n < constants.BoardSize {
			near++
		}
	}
	return lines*constants.LineUtility + near*constants.NearFullUtility
}

// Evaluate computes utilities for every catalog type without caching
func Evaluate(b *board.Board) Utilities {
	var u Utilities
	for _, t := range piece.All() {
		u[t] = Utility(b, t)
	}
	return u
}

// Scorer memoizes Evaluate by packed board key. Not safe for concurrent use.
type Scorer struct {
	cache    *intmap.Map[uint64, Utilities]
	capacity int
	hits     uint64
	misses   uint64
}

// NewScorer creates a scorer holding at most capacity boards before it resets
func NewScorer(capacity int) *Scorer {
	if capacity <= 0 {
		capacity = constants.HeuristicCacheCapacity
	}
	return &Scorer{
		cache:    intmap.New[uint64, Utilities](capacity),
		capacity: capacity,
	}
}

// Evaluate returns utilities for every type on b, from cache when seen before
func (s *Scorer) Evaluate(b *board.Board) Utilities {
	key := b.Key()
	if u, ok := s.cache.Get(key); ok {
		s.hits++
		return u
	}
	s.misses++

	u := Evaluate(b)
	if s.cache.Len() >= s.capacity {
		s.cache.Clear()
	}
	s.cache.Put(key, u)
	return u
}

// Utility returns the utility of t on b
func (s *Scorer) Utility(b *board.Board, t piece.Type) int {
	return s.Evaluate(b)[t]
}

// Stats returns cache hits and misses since creation
func (s *Scorer) Stats() (hits, misses uint64) {
	return s.hits, s.misses
}

// Len returns the number of cached boards
func (s *Scorer) Len() int {
	return s.cache.Len()
}
