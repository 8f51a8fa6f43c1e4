package sasd

// pqItem is one entry in the frontier priority queue. seq breaks ties
// between equal-distance entries in FIFO order of insertion, so repeated
// searches over the same grid and targets produce the same path
// deterministically.
type pqItem struct {
	idx  int
	dist float64
	seq  int64
}

// frontier is a binary min-heap over pqItem ordered by (dist, seq),
// implementing container/heap.Interface. Stale entries (superseded by a
// cheaper distance found later) are left in place and skipped lazily on
// pop, rather than removed — the classic lazy decrease-key approach.
type frontier []pqItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(pqItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
