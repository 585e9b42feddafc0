// Package geom provides the small amount of 2D vector arithmetic needed by the
// packing and rendering code. All operations are value-based and allocation-free.
package geom

import "math"

// Point is a 2D point or vector in user units.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Unit returns p scaled to length 1 and true, or the zero point and false when
// p has zero length and no direction exists.
func (p Point) Unit() (Point, bool) {
	n := p.Norm()
	if n == 0 {
		return Point{}, false
	}
	return Point{p.X / n, p.Y / n}, true
}

// Orthogonal returns p rotated 90 degrees clockwise.
func (p Point) Orthogonal() Point { return Point{p.Y, -p.X} }
