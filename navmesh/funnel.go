package navmesh

// smoothFunnel implements Simple-Stupid-Funnel string-pulling: given a
// corridor's oriented portals, it emits the shortest polyline from start
// to end that stays inside the corridor.
//
// Degenerate inputs short-circuit: a single-triangle corridor, or a
// portal list emptied entirely by dropped malformed portals, both return
// the direct two-point path.
func smoothFunnel(start, end Point, corridor []*Triangle, portals []Portal) []Point {
	if len(corridor) <= 1 {
		return []Point{start, end}
	}
	if len(portals) == 0 {
		return []Point{start, end}
	}

	// Sentinel portal so the goal is processed uniformly with every
	// triangle-boundary portal.
	all := make([]Portal, len(portals)+1)
	copy(all, portals)
	all[len(portals)] = Portal{Left: end, Right: end}

	path := []Point{start}

	apex, left, right := start, start, start
	apexIndex, leftIndex, rightIndex := -1, -1, -1

	for i := 0; i < len(all); i++ {
		pL, pR := all[i].Left, all[i].Right

		// Right side update.
		if signedArea2(apex, right, pR) <= 0 {
			if pointsEqual(apex, right) || signedArea2(apex, left, pR) > 0 {
				right = pR
				rightIndex = i
			} else {
				path = append(path, left)
				apex = left
				apexIndex = leftIndex
				left, right = apex, apex
				leftIndex, rightIndex = apexIndex, apexIndex
				i = apexIndex
				continue
			}
		}

		// Left side update (mirror).
		if signedArea2(apex, left, pL) >= 0 {
			if pointsEqual(apex, left) || signedArea2(apex, right, pL) < 0 {
				left = pL
				leftIndex = i
			} else {
				path = append(path, right)
				apex = right
				apexIndex = rightIndex
				left, right = apex, apex
				leftIndex, rightIndex = apexIndex, apexIndex
				i = apexIndex
				continue
			}
		}
	}

	if len(path) == 0 || !pointsEqual(path[len(path)-1], end) {
		path = append(path, end)
	}
	return path
}
