package sasd

import (
	"container/heap"
	"errors"
	"math"

	"github.com/xwalk-go/xwalk/grid"
)

// Sentinel errors for Search.
var (
	ErrNilGrid         = errors.New("sasd: grid is nil")
	ErrSourceOutOfGrid = errors.New("sasd: source cell is outside the grid")
	ErrTargetOutOfGrid = errors.New("sasd: target cell is outside the grid")
	ErrBadMaxDistance  = errors.New("sasd: maximum distance must be positive")
)

// Path is one resolved route through the grid, expressed as the sequence of
// cell indices from source to target inclusive.
type Path struct {
	Cells    []int
	Distance float64
	Found    bool
}

// Result is the outcome of the search for one target: either a Path with
// Found=true, or Found=false if no route within the distance bound exists,
// or a non-nil Err if the target reference itself was invalid.
type Result struct {
	Path Path
	Err  error
}

// OpenSet is an alias of grid.OpenSet, re-exported so callers need not
// import package grid solely to build a Search override.
type OpenSet = grid.OpenSet

// NewOpenSet unions any number of cell-index shells into a single OpenSet,
// as produced by grid.Grid.AtomShell.
func NewOpenSet(shells ...[]int) OpenSet {
	return grid.NewOpenSet(shells...)
}

// config holds the tunable parameters assembled from Options.
type config struct {
	maxExpansions int
}

// Option configures a Search call.
type Option func(*config)

// WithMaxExpansions caps the number of cells the search may settle before
// giving up on any still-unresolved targets, bounding worst-case runtime on
// pathologically large open regions. Zero (the default) means unbounded.
func WithMaxExpansions(n int) Option {
	return func(c *config) { c.maxExpansions = n }
}

// neighborWeights returns the Euclidean step cost, in Ångström (offset
// length times the grid's CellSize), for each of the grid's 26 neighbour
// offsets.
func neighborWeights(g *grid.Grid, offsets [][3]int) []float64 {
	w := make([]float64, len(offsets))
	for i, o := range offsets {
		w[i] = math.Sqrt(float64(o[0]*o[0]+o[1]*o[1]+o[2]*o[2])) * g.CellSize
	}

	return w
}

// Search runs a bounded multi-target Dijkstra search from source to every
// cell in targets, stopping each branch once its distance exceeds dMax.
// open, if non-nil, marks additional cells as passable for this call only.
//
// Complexity: O((cells explored) log(cells explored)), bounded in practice
// by dMax since no branch expands past it.
func Search(g *grid.Grid, source int, targets []int, dMax float64, open OpenSet, opts ...Option) (map[int]Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if source < 0 || source >= g.NCells() {
		return nil, ErrSourceOutOfGrid
	}
	if dMax <= 0 {
		return nil, ErrBadMaxDistance
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make(map[int]Result, len(targets))
	remaining := make(map[int]bool, len(targets))
	for _, t := range targets {
		if t < 0 || t >= g.NCells() {
			results[t] = Result{Err: ErrTargetOutOfGrid}
			continue
		}
		if t == source {
			results[t] = Result{Path: Path{Cells: []int{source}, Distance: 0, Found: true}}
			continue
		}
		remaining[t] = true
	}

	if len(remaining) == 0 {
		return results, nil
	}

	offsets := g.NeighborOffsets()
	weights := neighborWeights(g, offsets)

	dist := map[int]float64{source: 0}
	back := map[int]int{}
	visited := map[int]bool{}

	var seq int64
	pq := &frontier{{idx: source, dist: 0, seq: seq}}
	heap.Init(pq)

	expansions := 0
	for pq.Len() > 0 && len(remaining) > 0 {
		if cfg.maxExpansions > 0 && expansions >= cfg.maxExpansions {
			break
		}

		cur := heap.Pop(pq).(pqItem)
		if visited[cur.idx] {
			continue
		}
		if d, ok := dist[cur.idx]; !ok || cur.dist > d {
			continue
		}
		visited[cur.idx] = true
		expansions++

		if remaining[cur.idx] {
			results[cur.idx] = Result{Path: Path{
				Cells:    reconstruct(back, source, cur.idx),
				Distance: cur.dist,
				Found:    true,
			}}
			delete(remaining, cur.idx)
		}
		if len(remaining) == 0 || cur.dist > dMax {
			continue
		}

		ci, cj, ck := g.Coordinate(cur.idx)
		for n, off := range offsets {
			ni, nj, nk := ci+off[0], cj+off[1], ck+off[2]
			if !g.InBounds(ni, nj, nk) {
				continue
			}
			nidx := g.Index(ni, nj, nk)
			if visited[nidx] {
				continue
			}
			if !g.Passable(nidx, open) {
				continue
			}

			nd := cur.dist + weights[n]
			if nd > dMax {
				continue
			}
			if existing, ok := dist[nidx]; ok && nd >= existing {
				continue
			}

			dist[nidx] = nd
			back[nidx] = cur.idx
			seq++
			heap.Push(pq, pqItem{idx: nidx, dist: nd, seq: seq})
		}
	}

	for t := range remaining {
		results[t] = Result{Path: Path{Found: false}}
	}

	return results, nil
}

// reconstruct walks back from target to source via back-pointers and
// returns the path in source-to-target order.
func reconstruct(back map[int]int, source, target int) []int {
	if target == source {
		return []int{source}
	}

	path := []int{target}
	for cur := target; cur != source; {
		prev, ok := back[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
