package hand

import (
	"math/rand"

	"github.com/lixenwraith/blockcast/board"
	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/heuristic"
	"github.com/lixenwraith/blockcast/piece"
)

// Weights is a draw weight per catalog type
type Weights [piece.Count]int

// Total returns the sum of all weights
func (w Weights) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// Draw picks a type with probability proportional to its weight
func (w Weights) Draw(rng *rand.Rand) piece.Type {
	total := w.Total()
	if total <= 0 {
		return piece.Single
	}
	r := rng.Intn(total)
	cumul := 0
	for t, v := range w {
		cumul += v
		if r < cumul {
			return piece.Type(t)
		}
	}
	return piece.Single
}

// Policy decides how likely each piece type is when a hand is refilled
type Policy interface {
	Name() string
	Weights(b *board.Board) Weights
}

// Uniform draws every type with equal probability
type Uniform struct{}

func (Uniform) Name() string { return "uniform" }

func (Uniform) Weights(*board.Board) Weights {
	var w Weights
	for i := range w {
		w[i] = 1
	}
	return w
}

// Weighted biases draws toward types that clear or nearly clear lines on the current board.
// Every type keeps WeightFloor so unplaceable types still appear.
type Weighted struct {
	scorer *heuristic.Scorer
}

// NewWeighted creates a weighted policy backed by its own memoizing scorer
func NewWeighted() *Weighted {
	return &Weighted{scorer: heuristic.NewScorer(constants.HeuristicCacheCapacity)}
}

func (*Weighted) Name() string { return "weighted" }

func (p *Weighted) Weights(b *board.Board) Weights {
	u := p.scorer.Evaluate(b)
	var w Weights
	for i := range w {
		w[i] = constants.WeightFloor + u[i]
	}
	return w
}
