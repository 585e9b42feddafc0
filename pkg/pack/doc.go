// Package pack computes non-overlapping circle placements for bubble charts.
//
// # Overview
//
// A [Set] owns a fixed number of bubbles, one per input area value. Each
// bubble's radius is derived once from its area (radius = sqrt(area/π)) and
// never changes; only positions move. Construction seeds the bubbles on a
// square grid coarse enough to guarantee zero initial overlap, then
// [Set.Collapse] iteratively compacts them around their area-weighted center
// of mass while keeping every pair of outlines at least the configured
// spacing apart.
//
// # Algorithm
//
// Each Collapse round visits every bubble in input order and attempts to move
// it one step toward the centroid. If that move would overlap another bubble,
// the bubble instead tries to sidestep: it finds its most obstructing
// neighbor, rotates the direction to that neighbor by 90 degrees, and takes
// whichever of the two sideways candidates lands closer to the centroid. A
// bubble that cannot move either way stays put for the round. When fewer than
// a threshold fraction of bubbles moved in a round, the step distance is
// halved; it never grows back. The loop always runs its full iteration
// budget, so convergence is soft rather than guaranteed.
//
// # Usage
//
//	set, err := pack.New([]float64{120, 45, 45, 10}, 0.5)
//	if err != nil {
//	    return err
//	}
//	if err := set.Collapse(); err != nil {
//	    return err
//	}
//	for i := 0; i < set.Len(); i++ {
//	    b := set.At(i)
//	    draw(b.Pos.X, b.Pos.Y, b.Radius)
//	}
package pack
