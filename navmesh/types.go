package navmesh

import (
	"errors"

	assert "github.com/aurelien-rainone/assertgo"
	"go.uber.org/zap"
)

// Sentinel construction errors. Package-prefixed, stdlib errors.New.
// These are the only errors this package ever returns — FindPath and
// IsPointInNavMesh never do.
var (
	// ErrEmptyPolygonMap indicates a nil or polygon-less PolygonMap.
	ErrEmptyPolygonMap = errors.New("navmesh: polygon map has no polygons")
	// ErrDegenerateOuterRing indicates an outer ring with fewer than 3 points.
	ErrDegenerateOuterRing = errors.New("navmesh: polygon outer ring has fewer than 3 points")
)

// Point is an ordered pair (x, y) of finite real numbers in double
// precision. Equality is tested with absolute epsilon, see pointsEqual.
type Point struct {
	X, Y float64
}

// Triangle is an immutable record supplied by the upstream geometry
// provider. Vertices are not collinear, the neighbor relation is
// symmetric, a triangle is never its own neighbor, and the shared-edge
// count with any neighbor is exactly 2 — these are preconditions on the
// provider, not invariants this package enforces.
//
// Triangles are compared by reference identity (pointer equality), never
// by structural equality: two triangles with identical vertices are
// still distinct nodes in the adjacency graph if the provider allocated
// them separately.
type Triangle struct {
	Vertices  [3]Point
	Centroid  Point
	Neighbors []*Triangle
}

// Polygon is an outer ring (implicitly closed, counter-clockwise by
// convention) plus zero or more hole rings (clockwise), together with the
// Triangles covering the polygon minus its holes. The union of Triangles
// is topologically connected; distinct polygons are pairwise disjoint and
// their triangle sets are disjoint.
type Polygon struct {
	Outer     []Point
	Holes     [][]Point
	Triangles []*Triangle
}

// PolygonMap is an ordered collection of Polygons, supplied whole by the
// upstream geometry/triangulation provider. This package never
// triangulates; it only ever reads Polygon/Triangle data already built.
type PolygonMap struct {
	Polygons []*Polygon
}

// NavMesh owns a reference to a PolygonMap and a flat list of every
// triangle in it, preserving polygon order. Built once at construction
// and never mutated: safe for concurrent IsPointInNavMesh/FindPath calls
// on the same instance.
type NavMesh struct {
	pm           *PolygonMap
	allTriangles []*Triangle
	owner        map[*Triangle]*Polygon
	log          *zap.Logger
}

// Option configures a NavMesh at construction time. There is no other
// configuration surface: no env vars, no files, no wire format.
type Option func(*NavMesh)

// WithLogger attaches a structured logger. It receives a Warn entry for
// each portal dropped over a malformed neighbor relation and a Debug
// entry when a projected goal lands outside every triangle; degenerate
// triangles are skipped by the locator without a log entry. A nil or unset logger
// defaults to a no-op logger; nothing the engine logs is ever required
// for correctness.
func WithLogger(l *zap.Logger) Option {
	return func(m *NavMesh) {
		if l != nil {
			m.log = l
		}
	}
}

// NewNavMesh builds a NavMesh over pm. The triangle list is the
// concatenation of every polygon's triangles, in polygon order; alongside
// it NavMesh keeps a triangle-to-polygon index for polygonOf. Both are
// built here and never change afterwards.
func NewNavMesh(pm *PolygonMap, opts ...Option) (*NavMesh, error) {
	if pm == nil || len(pm.Polygons) == 0 {
		return nil, ErrEmptyPolygonMap
	}
	for _, p := range pm.Polygons {
		if len(p.Outer) < 3 {
			return nil, ErrDegenerateOuterRing
		}
	}

	m := &NavMesh{
		pm:  pm,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.owner = make(map[*Triangle]*Polygon)
	var total int
	for _, p := range pm.Polygons {
		for _, t := range p.Triangles {
			m.allTriangles = append(m.allTriangles, t)
			m.owner[t] = p
			total++
		}
	}
	assert.True(len(m.allTriangles) == total,
		"NavMesh.allTriangles length must equal the sum of every polygon's triangle count")

	return m, nil
}

// polygonOf returns the polygon owning t — the single polygon in the
// PolygonMap whose triangle list contains t.
func (m *NavMesh) polygonOf(t *Triangle) *Polygon {
	return m.owner[t]
}
