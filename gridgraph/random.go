package gridgraph

import (
	"fmt"
	"math/rand"
)

// DefaultObstacleProbability is the per-cell obstacle chance used by the
// viewer when none is given.
const DefaultObstacleProbability = 0.3

// FillRandom replaces the obstacle layout with independent Bernoulli draws:
// each cell becomes an obstacle with probability p. Cells are drawn in
// row-major order, so a fixed seed always yields the same layout.
// Every point in keep is forced free afterwards (out-of-bounds keeps are
// ignored), which lets callers protect a start and goal cell.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - On error the layout is left untouched.
//
// Complexity: O(W×H) trials.
func (g *Grid) FillRandom(p float64, rng *rand.Rand, keep ...Point) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: p=%.6f not in [0,1]", ErrInvalidProbability, p)
	}
	if rng == nil && p > 0 && p < 1 {
		return ErrNeedRandSource
	}

	for i := range g.blocked {
		switch {
		case p == 0:
			g.blocked[i] = false
		case p == 1:
			g.blocked[i] = true
		default:
			g.blocked[i] = rng.Float64() < p
		}
	}
	for _, k := range keep {
		if g.Contains(k) {
			g.blocked[g.Index(k)] = false
		}
	}

	return nil
}
