package pack

import "github.com/jabulente/bubblechart/pkg/geom"

// Bubble is one packed circle. Pos is the only field mutated after
// construction; Radius and Area are fixed for the bubble's lifetime, with
// Radius always equal to sqrt(Area/π).
type Bubble struct {
	Pos    geom.Point
	Radius float64
	Area   float64
}
