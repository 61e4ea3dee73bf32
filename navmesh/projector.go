package navmesh

// projectGoal is invoked when the goal B has no containing triangle. It
// returns a point guaranteed to lie on the boundary of polygon p (the
// polygon owning A's triangle), or (Point{}, false) in the degenerate
// case where p has no boundary at all — cannot happen given an outer
// ring always has at least 3 points, but guarded rather than assumed.
func projectGoal(a, b Point, p *Polygon, clipToBoundary bool) (Point, bool) {
	if clipToBoundary {
		if pt, ok := rayClipProject(a, b, p); ok {
			return pt, true
		}
		// Fall back to closest-boundary mode.
	}
	return closestBoundaryProject(b, p)
}

// closestBoundaryProject returns the candidate minimizing squared
// distance to b among every vertex and every closest-point-on-edge of the
// outer ring and of each hole, enumerated outer-vertices, outer-edges,
// then each hole's vertices and edges in declared order. Ties go to
// whichever candidate was encountered first.
func closestBoundaryProject(b Point, p *Polygon) (Point, bool) {
	var (
		best  Point
		bestD float64
		found bool
	)
	consider := func(cand Point) {
		d := distSq(cand, b)
		if !found || d < bestD {
			best, bestD, found = cand, d, true
		}
	}

	considerRing := func(ring []Point) {
		n := len(ring)
		if n == 0 {
			return
		}
		for _, v := range ring {
			consider(v)
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			consider(closestPointOnSegment(b, ring[i], ring[j]))
		}
	}

	considerRing(p.Outer)
	for _, hole := range p.Holes {
		considerRing(hole)
	}

	return best, found
}

// rayClipProject returns the intersection of segment a->b with every edge
// of the outer ring and every hole ring, nearest to a by squared
// distance.
func rayClipProject(a, b Point, p *Polygon) (Point, bool) {
	var (
		best  Point
		bestD float64
		found bool
	)

	considerRing := func(ring []Point) {
		n := len(ring)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			hit, ok := segmentIntersection(a, b, ring[i], ring[j])
			if !ok {
				continue
			}
			d := distSq(hit, a)
			if !found || d < bestD {
				best, bestD, found = hit, d, true
			}
		}
	}

	considerRing(p.Outer)
	for _, hole := range p.Holes {
		considerRing(hole)
	}

	return best, found
}
