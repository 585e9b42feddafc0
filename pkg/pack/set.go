package pack

import (
	"math"

	"github.com/jabulente/bubblechart/pkg/errors"
	"github.com/jabulente/bubblechart/pkg/geom"
)

// Set is an ordered, fixed-length collection of bubbles. The i-th input area
// always corresponds to the i-th bubble; no insertion or removal is supported
// after construction. A Set is not safe for concurrent use.
type Set struct {
	bubbles  []Bubble
	spacing  float64
	maxStep  float64
	stepDist float64
	centroid geom.Point
}

// New constructs a Set with one bubble per area and seeds the bubbles on a
// square grid with cell size 2·max(radius)+spacing, which guarantees zero
// initial overlap.
//
// The areas sequence must be non-empty and spacing must be non-negative;
// violations return an INVALID_INPUT or INVALID_SPACING error. Individual
// area values are not range-checked (a zero area yields a zero radius), but a
// non-positive or non-finite total area leaves the center of mass undefined
// and is rejected with DEGENERATE_GEOMETRY.
func New(areas []float64, spacing float64) (*Set, error) {
	if err := errors.ValidateSpacing(spacing); err != nil {
		return nil, err
	}
	if err := errors.ValidateAreas(areas); err != nil {
		return nil, err
	}

	bubbles := make([]Bubble, len(areas))
	maxRadius := 0.0
	for i, a := range areas {
		r := math.Sqrt(a / math.Pi)
		bubbles[i] = Bubble{Radius: r, Area: a}
		if r > maxRadius {
			maxRadius = r
		}
	}

	s := &Set{
		bubbles: bubbles,
		spacing: spacing,
		maxStep: 2*maxRadius + spacing,
	}
	s.stepDist = s.maxStep / 2
	s.placeOnGrid()
	s.centroid = s.computeCentroid()
	return s, nil
}

// placeOnGrid assigns initial positions on a row-major square lattice with
// cell size maxStep, consuming exactly len(bubbles) cells.
func (s *Set) placeOnGrid() {
	side := int(math.Ceil(math.Sqrt(float64(len(s.bubbles)))))
	for i := range s.bubbles {
		s.bubbles[i].Pos = geom.Point{
			X: float64(i%side) * s.maxStep,
			Y: float64(i/side) * s.maxStep,
		}
	}
}

// computeCentroid returns the area-weighted mean position over all bubbles.
// It is recomputed in full after every accepted move rather than patched
// incrementally, so floating-point error cannot accumulate across rounds.
func (s *Set) computeCentroid() geom.Point {
	var weighted geom.Point
	total := 0.0
	for i := range s.bubbles {
		b := &s.bubbles[i]
		weighted = weighted.Add(b.Pos.Scale(b.Area))
		total += b.Area
	}
	return weighted.Scale(1 / total)
}

// Len returns the number of bubbles.
func (s *Set) Len() int { return len(s.bubbles) }

// At returns a copy of the i-th bubble, in original input order.
func (s *Set) At(i int) Bubble { return s.bubbles[i] }

// Bubbles returns a copy of all bubbles in original input order.
func (s *Set) Bubbles() []Bubble {
	out := make([]Bubble, len(s.bubbles))
	copy(out, s.bubbles)
	return out
}

// Centroid returns the current area-weighted center of mass.
func (s *Set) Centroid() geom.Point { return s.centroid }

// Spacing returns the minimum required gap between bubble outlines.
func (s *Set) Spacing() float64 { return s.spacing }

// MaxStep returns the grid cell size used for initial placement.
func (s *Set) MaxStep() float64 { return s.maxStep }

// StepDistance returns the current per-iteration displacement magnitude. It
// starts at MaxStep/2 and only ever shrinks.
func (s *Set) StepDistance() float64 { return s.stepDist }
