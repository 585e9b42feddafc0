package pack

import (
	"math"

	"github.com/jabulente/bubblechart/pkg/geom"
)

// outlineDistance returns the outline-to-outline distance between a candidate
// circle and bubble j: the center distance minus both radii minus the
// spacing. Negative means the pair overlaps beyond the allowed spacing; zero
// means they touch exactly at the spacing boundary.
func (s *Set) outlineDistance(p geom.Point, radius float64, j int) float64 {
	b := &s.bubbles[j]
	return p.Dist(b.Pos) - radius - b.Radius - s.spacing
}

// collisions counts bubbles, excluding index skip, whose outline distance to
// the candidate circle is negative.
func (s *Set) collisions(p geom.Point, radius float64, skip int) int {
	n := 0
	for j := range s.bubbles {
		if j == skip {
			continue
		}
		if s.outlineDistance(p, radius, j) < 0 {
			n++
		}
	}
	return n
}

// nearest returns the index of the bubble with the minimum outline distance
// to bubble i, or -1 when i is the only bubble. The minimum is returned even
// when it is non-negative, so the caller may receive a neighbor that is not
// actually colliding; the sideways-avoidance step relies on exactly this to
// pick its obstruction.
func (s *Set) nearest(i int) int {
	b := &s.bubbles[i]
	best, bestDist := -1, math.Inf(1)
	for j := range s.bubbles {
		if j == i {
			continue
		}
		if d := s.outlineDistance(b.Pos, b.Radius, j); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}
