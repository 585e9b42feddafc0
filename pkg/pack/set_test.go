package pack

import (
	"math"
	"testing"

	"github.com/jabulente/bubblechart/pkg/errors"
)

// floatTol absorbs rounding differences between positions computed as grid
// multiples and distances recomputed from radii.
const floatTol = 1e-9

func TestNewRadiiFromAreas(t *testing.T) {
	areas := []float64{1, 4, 100, 0.25}
	set, err := New(areas, 0.5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if set.Len() != len(areas) {
		t.Fatalf("Len() = %d, want %d", set.Len(), len(areas))
	}

	for i, a := range areas {
		b := set.At(i)
		want := math.Sqrt(a / math.Pi)
		if b.Radius != want {
			t.Errorf("bubble %d radius = %v, want %v", i, b.Radius, want)
		}
		if b.Area != a {
			t.Errorf("bubble %d area = %v, want %v", i, b.Area, a)
		}
		if got := b.Radius * b.Radius * math.Pi; math.Abs(got-a) > floatTol*math.Max(1, a) {
			t.Errorf("bubble %d radius²·π = %v, want %v", i, got, a)
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		areas    []float64
		spacing  float64
		wantCode errors.Code
	}{
		{"empty areas", nil, 0, errors.ErrCodeInvalidInput},
		{"negative spacing", []float64{1}, -1, errors.ErrCodeInvalidSpacing},
		{"zero total area", []float64{0, 0}, 0, errors.ErrCodeDegenerateGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.areas, tt.spacing)
			if err == nil {
				t.Fatal("New() error = nil, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("New() code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestNewToleratesZeroArea(t *testing.T) {
	set, err := New([]float64{0, 1}, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if r := set.At(0).Radius; r != 0 {
		t.Errorf("zero-area bubble radius = %v, want 0", r)
	}
}

func TestMaxStepAndInitialStepDistance(t *testing.T) {
	set, err := New([]float64{1, 100}, 0.47)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wantMax := 2*math.Sqrt(100/math.Pi) + 0.47
	if set.MaxStep() != wantMax {
		t.Errorf("MaxStep() = %v, want %v", set.MaxStep(), wantMax)
	}
	if set.StepDistance() != wantMax/2 {
		t.Errorf("StepDistance() = %v, want %v", set.StepDistance(), wantMax/2)
	}
}

func TestGridPlacementNoOverlap(t *testing.T) {
	tests := []struct {
		name    string
		areas   []float64
		spacing float64
	}{
		{"pair", []float64{1, 1}, 0},
		{"equal areas", []float64{2, 2, 2, 2, 2}, 0.2},
		{"mixed areas", []float64{3, 1, 4, 1, 5, 9, 2, 6}, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := New(tt.areas, tt.spacing)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			for i := 0; i < set.Len(); i++ {
				b := set.At(i)
				for j := 0; j < set.Len(); j++ {
					if j == i {
						continue
					}
					if d := set.outlineDistance(b.Pos, b.Radius, j); d < -floatTol {
						t.Errorf("bubbles %d and %d overlap after grid placement: outline distance %v", i, j, d)
					}
				}
			}
		})
	}
}

func TestGridPlacementRowMajor(t *testing.T) {
	set, err := New([]float64{1, 1, 1, 1, 1}, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// 5 bubbles need a 3x3 lattice; only the first 5 cells are consumed.
	step := set.MaxStep()
	want := [][2]float64{{0, 0}, {step, 0}, {2 * step, 0}, {0, step}, {step, step}}
	for i, w := range want {
		b := set.At(i)
		if b.Pos.X != w[0] || b.Pos.Y != w[1] {
			t.Errorf("bubble %d at (%v, %v), want (%v, %v)", i, b.Pos.X, b.Pos.Y, w[0], w[1])
		}
	}
}

func TestCentroidWeightedMean(t *testing.T) {
	set, err := New([]float64{3, 1}, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Grid puts the bubbles at (0,0) and (maxStep,0); the centroid sits a
	// quarter of the way along because of the 3:1 weight ratio.
	want := set.MaxStep() / 4
	if got := set.Centroid(); math.Abs(got.X-want) > floatTol || got.Y != 0 {
		t.Errorf("Centroid() = %v, want {%v 0}", got, want)
	}
}

func TestCentroidRecomputationIdempotent(t *testing.T) {
	set, err := New([]float64{3, 1, 4, 1, 5}, 0.3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first := set.computeCentroid()
	second := set.computeCentroid()
	if first != second {
		t.Errorf("computeCentroid() not idempotent: %v then %v", first, second)
	}
}

func TestBubblesReturnsCopy(t *testing.T) {
	set, err := New([]float64{1, 2}, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	bubbles := set.Bubbles()
	bubbles[0].Pos.X = 999
	if set.At(0).Pos.X == 999 {
		t.Error("Bubbles() exposed internal state")
	}
}
