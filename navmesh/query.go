package navmesh

// FindPath returns a piecewise-linear path from a to b that lies entirely
// inside the navigable region, locally optimal within the corridor A*
// selects.
//
// clipToBoundary is optional and defaults to false (closest-boundary
// projection); passing true selects ray-clip projection instead.
// Failure is always the empty slice — this method never returns an
// error.
func (m *NavMesh) FindPath(a, b Point, clipToBoundary ...bool) []Point {
	clip := false
	if len(clipToBoundary) > 0 {
		clip = clipToBoundary[0]
	}

	startTri := m.findTriangleContaining(a)
	if startTri == nil {
		return nil
	}

	goal := b
	goalTri := m.findTriangleContaining(b)

	if goalTri == nil {
		poly := m.polygonOf(startTri)
		if poly == nil {
			// Unreachable given every triangle in allTriangles belongs
			// to exactly one polygon; guarded rather than assumed.
			return nil
		}

		projected, ok := projectGoal(a, b, poly, clip)
		if !ok {
			return nil
		}
		goal = projected

		goalTri = m.findTriangleContaining(goal)
		if goalTri == nil {
			m.log.Debug("goal projection landed outside every triangle")
			return nil
		}
	}

	if startTri == goalTri {
		return []Point{a, goal}
	}

	corridor := m.findCorridor(startTri, goalTri)
	if len(corridor) == 0 {
		if isNeighbor(startTri, goalTri) {
			return []Point{a, goal}
		}
		return nil
	}

	fullCorridor := make([]*Triangle, 0, len(corridor)+1)
	fullCorridor = append(fullCorridor, startTri)
	fullCorridor = append(fullCorridor, corridor...)

	portals := m.extractPortals(fullCorridor)
	path := smoothFunnel(a, goal, fullCorridor, portals)

	if len(path) == 0 {
		return []Point{a, goal}
	}
	if pointsEqual(path[len(path)-1], goal) {
		path[len(path)-1] = goal
	} else {
		path = append(path, goal)
	}
	path[0] = a

	return path
}

// isNeighbor reports whether b is one of a's direct neighbors. Used only
// as a fallback for a goal triangle directly adjacent to the start
// triangle, where findCorridor's own start-to-start shortcut would
// otherwise need a second special case.
func isNeighbor(a, b *Triangle) bool {
	for _, n := range a.Neighbors {
		if n == b {
			return true
		}
	}
	return false
}
