package navmesh

// findCorridor runs A* over the triangle dual graph: nodes are triangles,
// edges are the Neighbors relation, and both the cost g and the heuristic
// h are Euclidean distance between centroids — admissible and consistent
// for this metric.
//
// It returns the ordered list of triangles from the triangle *after*
// start up to and including goal: the start triangle carries no parent
// edge, so the caller prepends it to form the full corridor. A nil/empty
// result means no path was found.
//
// Triangles are identified by pointer rather than by an integer ref,
// since a provider is free to allocate them however it likes — nodes
// live in a map keyed on *Triangle.
func (m *NavMesh) findCorridor(start, goal *Triangle) []*Triangle {
	if start == goal {
		return nil
	}

	open := newOpenList()
	nodes := make(map[*Triangle]*pathNode)

	startNode := &pathNode{
		triangle: start,
		gCost:    0,
		hCost:    dist(start.Centroid, goal.Centroid),
	}
	startNode.fCost = startNode.gCost + startNode.hCost
	nodes[start] = startNode
	open.push(startNode)

	for !open.empty() {
		current := open.pop()
		current.closed = true

		if current.triangle == goal {
			return reconstructCorridor(current)
		}

		for _, neighbor := range current.triangle.Neighbors {
			if neighbor == nil {
				continue
			}
			if n, seen := nodes[neighbor]; seen && n.closed {
				continue
			}

			tentativeG := current.gCost + dist(current.triangle.Centroid, neighbor.Centroid)

			n, seen := nodes[neighbor]
			if !seen {
				n = &pathNode{
					triangle: neighbor,
					gCost:    tentativeG,
					hCost:    dist(neighbor.Centroid, goal.Centroid),
					parent:   current,
				}
				n.fCost = n.gCost + n.hCost
				nodes[neighbor] = n
				open.push(n)
				continue
			}

			if tentativeG < n.gCost {
				n.gCost = tentativeG
				n.fCost = n.gCost + n.hCost
				n.parent = current
				if n.inOpen {
					open.decreaseKey(n)
				} else {
					open.push(n)
				}
			}
		}
	}

	return nil
}

// reconstructCorridor walks parent links from goal back to (but not
// including) start, and returns them in traversal order.
func reconstructCorridor(goal *pathNode) []*Triangle {
	var rev []*Triangle
	for n := goal; n.parent != nil; n = n.parent {
		rev = append(rev, n.triangle)
	}
	corridor := make([]*Triangle, len(rev))
	for i, t := range rev {
		corridor[len(rev)-1-i] = t
	}
	return corridor
}
