package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{
			name: "add",
			got:  Point{1, 2}.Add(Point{3, -1}),
			want: Point{4, 1},
		},
		{
			name: "sub",
			got:  Point{1, 2}.Sub(Point{3, -1}),
			want: Point{-2, 3},
		},
		{
			name: "scale",
			got:  Point{1, -2}.Scale(2.5),
			want: Point{2.5, -5},
		},
		{
			name: "orthogonal",
			got:  Point{3, 4}.Orthogonal(),
			want: Point{4, -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPointNorm(t *testing.T) {
	if got := (Point{3, 4}).Norm(); got != 5 {
		t.Errorf("Norm() = %v, want 5", got)
	}
	if got := (Point{}).Norm(); got != 0 {
		t.Errorf("Norm() = %v, want 0", got)
	}
}

func TestPointDist(t *testing.T) {
	if got := (Point{1, 1}).Dist(Point{4, 5}); got != 5 {
		t.Errorf("Dist() = %v, want 5", got)
	}
}

func TestPointUnit(t *testing.T) {
	u, ok := Point{0, 7}.Unit()
	if !ok {
		t.Fatal("Unit() reported no direction for a non-zero vector")
	}
	if math.Abs(u.Norm()-1) > 1e-12 {
		t.Errorf("Unit() length = %v, want 1", u.Norm())
	}
	if u != (Point{0, 1}) {
		t.Errorf("Unit() = %v, want {0 1}", u)
	}

	if _, ok := (Point{}).Unit(); ok {
		t.Error("Unit() reported a direction for the zero vector")
	}
}

func TestOrthogonalIsPerpendicular(t *testing.T) {
	p := Point{2.3, -1.7}
	o := p.Orthogonal()
	if dot := p.X*o.X + p.Y*o.Y; dot != 0 {
		t.Errorf("dot product = %v, want 0", dot)
	}
	if p.Norm() != o.Norm() {
		t.Errorf("rotation changed length: %v vs %v", p.Norm(), o.Norm())
	}
}
