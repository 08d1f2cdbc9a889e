package hybridastar

// nodeQueueEntry is one priority-queue item over the open set. Stale
// entries — superseded when a cheaper route to the same cell was found —
// are detected by the caller (the entry's key no longer maps to this
// exact push in the open set) and skipped on pop rather than removed
// eagerly, mirroring the astar package's lazy-deletion open queue.
type nodeQueueEntry struct {
	key   uint64
	f     float64
	seq   int
	index int
}

type nodeQueue []*nodeQueueEntry

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *nodeQueue) Push(x interface{}) {
	e := x.(*nodeQueueEntry)
	e.index = len(*q)
	*q = append(*q, e)
}
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
