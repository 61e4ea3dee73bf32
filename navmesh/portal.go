package navmesh

import "go.uber.org/zap"

// Portal is the shared edge between two consecutive triangles in a
// corridor, oriented (Left, Right) so that signedArea2(c, Left, Right) is
// positive, where c is the centroid of the triangle the corridor leaves.
// Under signedArea2's convention (positive = to the left) this places
// Right to the left of the ray from c through Left; smoothFunnel's side
// tests are written for this orientation.
type Portal struct {
	Left, Right Point
}

// extractPortals walks corridor pairwise: for each consecutive pair of
// triangles, it finds the two vertices they share by ε-equality and
// orients them relative to the direction of travel. A neighbor pair that
// shares fewer than two vertices indicates a broken neighbor relation;
// that portal is silently dropped (logged at Warn) and the funnel runs on
// whatever portals remain.
func (m *NavMesh) extractPortals(corridor []*Triangle) []Portal {
	portals := make([]Portal, 0, len(corridor)-1)
	for i := 0; i < len(corridor)-1; i++ {
		ti, tj := corridor[i], corridor[i+1]

		shared := sharedVertices(ti, tj)
		if len(shared) != 2 {
			m.log.Warn("dropping portal with malformed neighbor relation",
				zap.Int("sharedVertexCount", len(shared)))
			continue
		}

		left, right := shared[0], shared[1]
		if signedArea2(ti.Centroid, left, right) < epsOrient {
			left, right = right, left
		}
		portals = append(portals, Portal{Left: left, Right: right})
	}
	return portals
}

// sharedVertices returns the vertices a and b have in common, by
// ε-equality rather than by index — the provider may not deduplicate
// vertex storage across triangles.
func sharedVertices(a, b *Triangle) []Point {
	var shared []Point
	for _, va := range a.Vertices {
		for _, vb := range b.Vertices {
			if pointsEqual(va, vb) {
				shared = append(shared, va)
				break
			}
		}
	}
	return shared
}
