package navmesh

import "math"

// Geometric primitives. All predicates operate on raw coordinates.
// Degeneracy, collinearity, parallelism and point-equality tests use the
// named epsilons in constants.go; the barycentric weights, the projection
// bounds and the segment parameters are compared with 0 and 1 directly.

// signedArea2 returns (b.x-a.x)(c.y-a.y) - (c.x-a.x)(b.y-a.y), twice the
// signed area of triangle abc. Positive means c lies to the left of
// directed segment a->b, negative to the right, zero means collinear.
func signedArea2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// pointInTriangle reports whether p lies inside or on the boundary of t,
// using barycentric coordinates. A degenerate triangle (|D| < epsOrient)
// never contains any point.
func pointInTriangle(p Point, t *Triangle) bool {
	v0, v1, v2 := t.Vertices[0], t.Vertices[1], t.Vertices[2]

	d := (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y)
	if math.Abs(d) < epsOrient {
		return false
	}

	a := ((v1.Y-v2.Y)*(p.X-v2.X) + (v2.X-v1.X)*(p.Y-v2.Y)) / d
	b := ((v2.Y-v0.Y)*(p.X-v2.X) + (v0.X-v2.X)*(p.Y-v2.Y)) / d
	c := 1 - a - b

	return a >= 0 && b >= 0 && c >= 0
}

// pointOnSegment reports whether p lies on segment ab: collinear, and the
// projection of (p-a) onto (b-a) falls within [0, |b-a|^2].
func pointOnSegment(p, a, b Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
	if math.Abs(cross) >= epsPoint {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	if dot < 0 {
		return false
	}
	lenSq := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
	return dot <= lenSq
}

// segmentIntersection returns the intersection point of segments p1q1 and
// p2q2, parametrically. Parallel or collinear segments (|rxs| < epsParallel)
// are treated as non-intersecting.
func segmentIntersection(p1, q1, p2, q2 Point) (Point, bool) {
	r := Point{q1.X - p1.X, q1.Y - p1.Y}
	s := Point{q2.X - p2.X, q2.Y - p2.Y}
	qp := Point{p2.X - p1.X, p2.Y - p1.Y}

	rxs := r.X*s.Y - r.Y*s.X
	if math.Abs(rxs) < epsParallel {
		return Point{}, false
	}

	t := (qp.X*s.Y - qp.Y*s.X) / rxs
	u := (qp.X*r.Y - qp.Y*r.X) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return Point{p1.X + t*r.X, p1.Y + t*r.Y}, true
}

// closestPointOnSegment returns the point on segment ab closest to p,
// clamping the projection parameter to [0, 1].
func closestPointOnSegment(p, a, b Point) Point {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < epsOrient {
		return a
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{a.X + t*abx, a.Y + t*aby}
}

// pointsEqual reports whether p and q are equal within epsPoint in each
// coordinate.
func pointsEqual(p, q Point) bool {
	return math.Abs(p.X-q.X) < epsPoint && math.Abs(p.Y-q.Y) < epsPoint
}

// distSq returns the squared Euclidean distance between p and q.
func distSq(p, q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// dist returns the Euclidean distance between p and q, used for both the
// A* cost and heuristic.
func dist(p, q Point) float64 {
	return math.Sqrt(distSq(p, q))
}
