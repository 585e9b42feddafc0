package pack

import "github.com/jabulente/bubblechart/pkg/errors"

// Defaults for a Collapse run.
const (
	// DefaultMaxIterations is the number of relaxation rounds to run.
	DefaultMaxIterations = 50

	// DefaultConvergenceThreshold is the fraction of bubbles that must move
	// in a round to avoid halving the step distance.
	DefaultConvergenceThreshold = 0.1
)

// CollapseOption configures a Collapse run.
type CollapseOption func(*collapseConfig)

type collapseConfig struct {
	maxIterations int
	threshold     float64
}

// WithMaxIterations sets the number of relaxation rounds. Zero is allowed and
// leaves the set at its grid-initialized state.
func WithMaxIterations(n int) CollapseOption {
	return func(c *collapseConfig) { c.maxIterations = n }
}

// WithConvergenceThreshold sets the moved-bubble fraction below which the
// step distance is halved. Must be in (0, 1].
func WithConvergenceThreshold(t float64) CollapseOption {
	return func(c *collapseConfig) { c.threshold = t }
}

// Collapse compacts the set around its center of mass, mutating bubble
// positions in place.
//
// Each round visits every bubble in input order and tries to move it by the
// current step distance, first straight toward the centroid and otherwise
// sideways around its most obstructing neighbor. A move is committed only
// when the candidate position overlaps no other bubble, and every committed
// move recomputes the centroid so later bubbles in the same round see it.
// When fewer than threshold·n bubbles moved in a round the step distance is
// halved; it is monotonically non-increasing across the whole run and across
// repeated Collapse calls on the same set.
//
// The loop is purely iteration-count bounded. There is no settled-early exit,
// and an awkward configuration may finish with overlaps still present.
func (s *Set) Collapse(opts ...CollapseOption) error {
	cfg := collapseConfig{
		maxIterations: DefaultMaxIterations,
		threshold:     DefaultConvergenceThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxIterations < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max iterations must be non-negative, got %d", cfg.maxIterations)
	}
	if cfg.threshold <= 0 || cfg.threshold > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "convergence threshold must be in (0, 1], got %v", cfg.threshold)
	}

	n := float64(len(s.bubbles))
	for iter := 0; iter < cfg.maxIterations; iter++ {
		moves := s.iterate()
		if float64(moves)/n < cfg.threshold {
			s.stepDist /= 2
		}
	}
	return nil
}

// iterate runs one relaxation round and returns how many bubbles moved.
func (s *Set) iterate() int {
	moves := 0
	for i := range s.bubbles {
		if s.adjust(i) {
			moves++
		}
	}
	return moves
}

// adjust attempts to move bubble i, preferring the direct move toward the
// centroid and falling back to the sideways dodge.
func (s *Set) adjust(i int) bool {
	if s.moveTowardCentroid(i) {
		return true
	}
	return s.moveSideways(i)
}

// moveTowardCentroid proposes a step from bubble i straight toward the center
// of mass and commits it when the candidate overlaps no other bubble.
// A bubble sitting exactly on the centroid has no direction to move in and
// stays put.
func (s *Set) moveTowardCentroid(i int) bool {
	b := &s.bubbles[i]
	dir, ok := s.centroid.Sub(b.Pos).Unit()
	if !ok {
		return false
	}

	candidate := b.Pos.Add(dir.Scale(s.stepDist))
	if s.collisions(candidate, b.Radius, i) > 0 {
		return false
	}

	b.Pos = candidate
	s.centroid = s.computeCentroid()
	return true
}

// moveSideways dodges around bubble i's most obstructing neighbor: the
// direction to that neighbor is rotated 90 degrees, both resulting
// candidates are considered, and the one closer to the centroid is kept if
// it is collision-free. Coincident centers leave the sideways direction
// undefined and the bubble stays put.
func (s *Set) moveSideways(i int) bool {
	j := s.nearest(i)
	if j < 0 {
		return false
	}

	b := &s.bubbles[i]
	dir, ok := s.bubbles[j].Pos.Sub(b.Pos).Unit()
	if !ok {
		return false
	}

	orth := dir.Orthogonal().Scale(s.stepDist)
	left := b.Pos.Add(orth)
	right := b.Pos.Sub(orth)

	candidate := right
	if s.centroid.Dist(left) < s.centroid.Dist(right) {
		candidate = left
	}

	if s.collisions(candidate, b.Radius, i) > 0 {
		return false
	}

	b.Pos = candidate
	s.centroid = s.computeCentroid()
	return true
}
