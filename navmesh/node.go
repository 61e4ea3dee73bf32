package navmesh

// pathNode is the search-local, ephemeral per-triangle record used by A*.
// It lives only for the duration of one FindPath call and is discarded on
// return; parent forms a tree rooted at the start node.
type pathNode struct {
	triangle *Triangle
	gCost    float64
	hCost    float64
	fCost    float64
	parent   *pathNode
	closed   bool
	inOpen   bool
	heapIdx  int
}

// openList is a binary min-heap over fCost: bubbleUp on push/decrease-key,
// trickleDown on pop. It supports true decrease-key rather than a linear
// re-sort; the corridor A* returns is invariant under that choice because
// ties are broken by the funnel's commutative portal walk.
type openList struct {
	heap []*pathNode
}

func newOpenList() *openList {
	return &openList{}
}

func (q *openList) empty() bool {
	return len(q.heap) == 0
}

func (q *openList) push(n *pathNode) {
	n.heapIdx = len(q.heap)
	n.inOpen = true
	q.heap = append(q.heap, n)
	q.bubbleUp(n.heapIdx)
}

func (q *openList) pop() *pathNode {
	top := q.heap[0]
	last := len(q.heap) - 1
	q.heap[0] = q.heap[last]
	q.heap[0].heapIdx = 0
	q.heap = q.heap[:last]
	if len(q.heap) > 0 {
		q.trickleDown(0)
	}
	top.heapIdx = -1
	top.inOpen = false
	return top
}

// decreaseKey restores heap order after n.fCost has been lowered in
// place by A*'s relax step.
func (q *openList) decreaseKey(n *pathNode) {
	q.bubbleUp(n.heapIdx)
}

func (q *openList) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.heap[parent].fCost <= q.heap[i].fCost {
			break
		}
		q.swap(parent, i)
		i = parent
	}
}

func (q *openList) trickleDown(i int) {
	n := len(q.heap)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && q.heap[left].fCost < q.heap[smallest].fCost {
			smallest = left
		}
		if right < n && q.heap[right].fCost < q.heap[smallest].fCost {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}

func (q *openList) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.heap[i].heapIdx = i
	q.heap[j].heapIdx = j
}
