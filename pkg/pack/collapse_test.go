package pack

import (
	"math"
	"testing"

	"github.com/jabulente/bubblechart/pkg/errors"
)

func TestCollapseOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []CollapseOption
	}{
		{"negative iterations", []CollapseOption{WithMaxIterations(-1)}},
		{"zero threshold", []CollapseOption{WithConvergenceThreshold(0)}},
		{"threshold above one", []CollapseOption{WithConvergenceThreshold(1.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := New([]float64{1, 1}, 0)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			err = set.Collapse(tt.opts...)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Collapse() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestCollapseZeroIterationsLeavesSetUnchanged(t *testing.T) {
	set, err := New([]float64{3, 1, 4, 1}, 0.3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	before := set.Bubbles()
	step := set.StepDistance()

	if err := set.Collapse(WithMaxIterations(0)); err != nil {
		t.Fatalf("Collapse() error = %v", err)
	}

	for i, b := range set.Bubbles() {
		if b != before[i] {
			t.Errorf("bubble %d changed: %v -> %v", i, before[i], b)
		}
	}
	if set.StepDistance() != step {
		t.Errorf("StepDistance() = %v, want %v", set.StepDistance(), step)
	}
}

func TestCollapsePreservesRadiiAndAreas(t *testing.T) {
	areas := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	set, err := New(areas, 0.3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := set.Collapse(); err != nil {
		t.Fatalf("Collapse() error = %v", err)
	}

	for i, a := range areas {
		b := set.At(i)
		if b.Area != a {
			t.Errorf("bubble %d area = %v, want %v", i, b.Area, a)
		}
		if want := math.Sqrt(a / math.Pi); b.Radius != want {
			t.Errorf("bubble %d radius = %v, want %v", i, b.Radius, want)
		}
	}
}

func TestCollapseKeepsOutlinesSeparated(t *testing.T) {
	tests := []struct {
		name    string
		areas   []float64
		spacing float64
	}{
		{"pair", []float64{1, 1}, 0},
		{"dominant bubble", []float64{100, 1, 1, 1}, 0.5},
		{"equal areas", []float64{2, 2, 2, 2, 2}, 0.2},
		{"mixed areas", []float64{3, 1, 4, 1, 5, 9, 2, 6}, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := New(tt.areas, tt.spacing)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if err := set.Collapse(); err != nil {
				t.Fatalf("Collapse() error = %v", err)
			}
			for i := 0; i < set.Len(); i++ {
				b := set.At(i)
				for j := i + 1; j < set.Len(); j++ {
					if d := set.outlineDistance(b.Pos, b.Radius, j); d < -floatTol {
						t.Errorf("bubbles %d and %d overlap after Collapse: outline distance %v", i, j, d)
					}
				}
			}
		})
	}
}

func TestCollapseSingleBubbleDoesNotMove(t *testing.T) {
	set, err := New([]float64{5}, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	before := set.At(0)
	if err := set.Collapse(); err != nil {
		t.Fatalf("Collapse() error = %v", err)
	}

	// A lone bubble is its own centroid, so the direct move has no
	// direction and the sideways move has no neighbor.
	if got := set.At(0); got != before {
		t.Errorf("bubble moved: %v -> %v", before, got)
	}

	// With zero moves every round, the step distance halves exactly once
	// per iteration.
	want := set.MaxStep() / 2
	for i := 0; i < DefaultMaxIterations; i++ {
		want /= 2
	}
	if set.StepDistance() != want {
		t.Errorf("StepDistance() = %v, want %v", set.StepDistance(), want)
	}
}

func TestCollapseStepDistanceMonotonic(t *testing.T) {
	set, err := New([]float64{3, 1, 4, 1, 5, 9, 2, 6}, 0.3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	prev := set.StepDistance()
	for i := 0; i < DefaultMaxIterations; i++ {
		if err := set.Collapse(WithMaxIterations(1)); err != nil {
			t.Fatalf("Collapse() error = %v", err)
		}
		cur := set.StepDistance()
		if cur > prev {
			t.Fatalf("step distance grew on round %d: %v -> %v", i, prev, cur)
		}
		if cur != prev && cur != prev/2 {
			t.Fatalf("step distance changed by a non-halving amount on round %d: %v -> %v", i, prev, cur)
		}
		prev = cur
	}
}

func TestCollapseSplitRunsMatchSingleRun(t *testing.T) {
	// Step distance carries across Collapse calls on the same set, so two
	// 25-round runs replay exactly the same moves as one 50-round run.
	areas := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	full, err := New(areas, 0.3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := full.Collapse(WithMaxIterations(50)); err != nil {
		t.Fatalf("Collapse() error = %v", err)
	}

	split, err := New(areas, 0.3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := split.Collapse(WithMaxIterations(25)); err != nil {
			t.Fatalf("Collapse() error = %v", err)
		}
	}

	for i := 0; i < full.Len(); i++ {
		if full.At(i) != split.At(i) {
			t.Errorf("bubble %d differs: %v vs %v", i, full.At(i), split.At(i))
		}
	}
}

func TestCollapsePairStaysSymmetric(t *testing.T) {
	set, err := New([]float64{1, 1}, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Grid placement separates the pair by exactly one cell.
	if d := set.At(0).Pos.Dist(set.At(1).Pos); math.Abs(d-set.MaxStep()) > floatTol {
		t.Fatalf("initial separation = %v, want %v", d, set.MaxStep())
	}

	if err := set.Collapse(); err != nil {
		t.Fatalf("Collapse() error = %v", err)
	}

	a, b := set.At(0), set.At(1)
	if d := set.outlineDistance(a.Pos, a.Radius, 1); d < -floatTol {
		t.Errorf("final outline distance = %v, want non-negative", d)
	}

	// Equal areas keep the centroid pinned to the pair's midpoint. The
	// midpoint itself is allowed to drift from its starting position:
	// each bubble steps and the centroid is recomputed before the next
	// one moves, so the pair walks a little as a unit. Only the
	// relative symmetry is an invariant.
	mid := a.Pos.Add(b.Pos).Scale(0.5)
	if c := set.Centroid(); math.Abs(c.X-mid.X) > floatTol || math.Abs(c.Y-mid.Y) > floatTol {
		t.Errorf("Centroid() = %v, want midpoint %v", c, mid)
	}
}

func TestCollapseDominantBubbleAnchorsCentroid(t *testing.T) {
	set, err := New([]float64{100, 1, 1, 1}, 0.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := set.Collapse(); err != nil {
		t.Fatalf("Collapse() error = %v", err)
	}

	// The large bubble carries ~97% of the weight, so the center of mass
	// tracks it and it finishes far closer to the centroid than any of the
	// small bubbles.
	c := set.Centroid()
	large := set.At(0).Pos.Dist(c)
	for i := 1; i < set.Len(); i++ {
		if small := set.At(i).Pos.Dist(c); small <= large {
			t.Errorf("small bubble %d is closer to the centroid (%v) than the large bubble (%v)", i, small, large)
		}
	}
}
