package navmesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test fixtures build pre-triangulated PolygonMaps directly in Go rather
// than triangulating at test time: triangulation is an upstream concern
// this package never performs.

func newTestTriangle(a, b, c Point) *Triangle {
	return &Triangle{
		Vertices: [3]Point{a, b, c},
		Centroid: Point{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3},
	}
}

// linkNeighbors wires the Neighbors relation among tris the way an
// upstream provider is expected to: two triangles sharing exactly two
// vertices, by ε-equality, are neighbors.
func linkNeighbors(tris []*Triangle) {
	for i := range tris {
		for j := range tris {
			if i == j {
				continue
			}
			if len(sharedVertices(tris[i], tris[j])) == 2 {
				tris[i].Neighbors = append(tris[i].Neighbors, tris[j])
			}
		}
	}
}

// meshM1 builds a 50x50 square with a concentric 20x20 square hole,
// triangulated as an 8-triangle ring (two triangles per side of the band
// between the outer ring and the hole).
func meshM1(t *testing.T) (*NavMesh, *Polygon) {
	t.Helper()

	A, B, C, D := Point{0, 0}, Point{50, 0}, Point{50, 50}, Point{0, 50}
	E, F, G, H := Point{15, 15}, Point{35, 15}, Point{35, 35}, Point{15, 35}

	tris := []*Triangle{
		newTestTriangle(A, B, F), // bottom band
		newTestTriangle(A, F, E),
		newTestTriangle(B, C, G), // right band
		newTestTriangle(B, G, F),
		newTestTriangle(C, D, H), // top band
		newTestTriangle(C, H, G),
		newTestTriangle(D, A, E), // left band
		newTestTriangle(D, E, H),
	}
	linkNeighbors(tris)

	poly := &Polygon{
		Outer:     []Point{A, B, C, D},
		Holes:     [][]Point{{E, F, G, H}},
		Triangles: tris,
	}
	pm := &PolygonMap{Polygons: []*Polygon{poly}}

	m, err := NewNavMesh(pm)
	require.NoError(t, err)
	return m, poly
}

// meshM2 builds two disjoint unit squares, one at the origin and one
// translated by (10, 0), each triangulated into two triangles with no
// cross-polygon neighbor links.
func meshM2(t *testing.T) *NavMesh {
	t.Helper()

	buildSquare := func(ox, oy float64) *Polygon {
		a := Point{ox, oy}
		b := Point{ox + 1, oy}
		c := Point{ox + 1, oy + 1}
		d := Point{ox, oy + 1}
		tris := []*Triangle{
			newTestTriangle(a, b, c),
			newTestTriangle(a, c, d),
		}
		linkNeighbors(tris)
		return &Polygon{Outer: []Point{a, b, c, d}, Triangles: tris}
	}

	pa := buildSquare(0, 0)
	pb := buildSquare(10, 0)

	pm := &PolygonMap{Polygons: []*Polygon{pa, pb}}
	m, err := NewNavMesh(pm)
	require.NoError(t, err)
	return m
}
