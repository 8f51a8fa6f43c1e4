package engine

import (
	"context"
	"sync"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/grid"
	"github.com/xwalk-go/xwalk/pair"
	"github.com/xwalk-go/xwalk/sasd"
)

// indexedCandidate remembers a candidate's position in the original
// enumeration order, so Run's output stays deterministic despite concurrent
// evaluation across source atoms.
type indexedCandidate struct {
	pair.Candidate
	index int
}

// Run evaluates every candidate pair selector req.PairSpec() selects out of
// atoms, computing each pair's solvent-accessible surface distance subject
// to cfg. It fans out across cfg.Workers source atoms concurrently and
// checks ctx between sources and targets, returning whatever Records were
// completed if ctx is cancelled mid-run.
func Run(ctx context.Context, atoms atom.List, req Request, cfg Config) ([]Record, error) {
	if cfg.MaxDistance <= 0 {
		return nil, sasd.ErrBadMaxDistance
	}
	if cfg.GridCellSize <= 0 {
		return nil, grid.ErrBadCellSize
	}
	if cfg.MaxDistance > MaxSASDDistance {
		cfg.MaxDistance = MaxSASDDistance
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	candidates := pair.Enumerate(atoms, req.PairSpec())
	if len(candidates) == 0 {
		return nil, nil
	}

	groups := make(map[int][]indexedCandidate)
	for i, c := range candidates {
		groups[c.SourceIdx] = append(groups[c.SourceIdx], indexedCandidate{Candidate: c, index: i})
	}

	gopts := grid.GridOptions{CellSize: cfg.GridCellSize, SolventRadius: cfg.SolventRadius}
	useLocal := cfg.ForceLocalGrid || maxExtent(atoms) > MaxProteinDimension

	var sharedGrid *grid.Grid
	if !useLocal {
		g, err := grid.NewGrid(atoms, gopts)
		if err != nil {
			return nil, err
		}
		sharedGrid = g
	}

	records := make([]Record, len(candidates))

	type job struct {
		sourceIdx int
		cands     []indexedCandidate
	}
	jobs := make(chan job)

	worker := func() {
		for j := range jobs {
			select {
			case <-ctx.Done():
				return
			default:
			}

			g := sharedGrid
			if useLocal {
				lg, err := grid.NewLocalGrid(atoms, j.sourceIdx, cfg.MaxDistance, gopts)
				if err != nil {
					for _, c := range j.cands {
						r := newRecord(c.index, atoms, j.sourceIdx, c.TargetIdx, c.Euclidean)
						r.Err = err
						records[c.index] = r
					}
					continue
				}
				g = lg
			}
			processGroup(ctx, atoms, g, j.sourceIdx, j.cands, cfg, records)
		}
	}

	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go func() {
			defer wg.Done()
			worker()
		}()
	}

sendLoop:
	for sourceIdx, cands := range groups {
		select {
		case <-ctx.Done():
			break sendLoop
		case jobs <- job{sourceIdx: sourceIdx, cands: cands}:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return records, err
	}

	return records, nil
}

// processGroup resolves every candidate sharing a single source atom: it
// first tries grid.Grid.LineOfSight as a cheap shortcut, then runs one
// bounded multi-target sasd.Search for everything left.
func processGroup(ctx context.Context, atoms atom.List, g *grid.Grid, sourceIdx int, cands []indexedCandidate, cfg Config, records []Record) {
	sourcePos := atoms[sourceIdx].Position
	sourceCellIdx, ok := g.IndexOf(sourcePos)
	if !ok {
		for _, c := range cands {
			r := newRecord(c.index, atoms, sourceIdx, c.TargetIdx, c.Euclidean)
			r.Err = grid.ErrOutOfGrid
			records[c.index] = r
		}
		return
	}

	sourceShell := g.AtomShell(sourceIdx)
	shells := [][]int{sourceShell}
	targetCells := make(map[int]int, len(cands))
	resolved := make(map[int]bool, len(cands))
	var needSearch []int

	for _, c := range cands {
		select {
		case <-ctx.Done():
			return
		default:
		}

		targetPos := atoms[c.TargetIdx].Position
		tCellIdx, ok := g.IndexOf(targetPos)
		if !ok {
			r := newRecord(c.index, atoms, sourceIdx, c.TargetIdx, c.Euclidean)
			r.Err = grid.ErrOutOfGrid
			records[c.index] = r
			resolved[c.TargetIdx] = true
			continue
		}

		pairOpen := grid.NewOpenSet(sourceShell, g.AtomShell(c.TargetIdx))
		if g.LineOfSight(sourcePos, targetPos, pairOpen) {
			// A clear straight path establishes SASD == Euclidean, so the
			// pair is reported directly and skipped by the search — this
			// holds whether or not the Euclidean distance itself exceeds
			// MaxDistance (spec.md §4.4).
			r := newRecord(c.index, atoms, sourceIdx, c.TargetIdx, c.Euclidean)
			r.SASD = c.Euclidean
			records[c.index] = r
			resolved[c.TargetIdx] = true
			continue
		}

		if c.Euclidean > cfg.MaxDistance {
			// SASD is never shorter than Euclidean, so once Euclidean
			// already exceeds the bound and no clear sweep was found
			// above, the pair is provably unreachable without running
			// the bounded search at all.
			r := newRecord(c.index, atoms, sourceIdx, c.TargetIdx, c.Euclidean)
			r.Unreachable = true
			records[c.index] = r
			resolved[c.TargetIdx] = true
			continue
		}

		targetCells[c.TargetIdx] = tCellIdx
		needSearch = append(needSearch, tCellIdx)
		shells = append(shells, g.AtomShell(c.TargetIdx))
	}

	if len(needSearch) == 0 {
		return
	}

	open := sasd.NewOpenSet(shells...)
	results, err := sasd.Search(g, sourceCellIdx, needSearch, cfg.MaxDistance, open)
	if err != nil {
		for _, c := range cands {
			if resolved[c.TargetIdx] {
				continue
			}
			r := newRecord(c.index, atoms, sourceIdx, c.TargetIdx, c.Euclidean)
			r.Err = err
			records[c.index] = r
		}
		return
	}

	for _, c := range cands {
		if resolved[c.TargetIdx] {
			continue
		}
		cellIdx := targetCells[c.TargetIdx]
		sr := results[cellIdx]
		r := newRecord(c.index, atoms, sourceIdx, c.TargetIdx, c.Euclidean)
		switch {
		case sr.Err != nil:
			r.Err = sr.Err
		case !sr.Path.Found:
			r.Unreachable = true
		default:
			r.SASD = sr.Path.Distance
		}
		records[c.index] = r
	}
}

// maxExtent returns the largest dimension of atoms' bounding box.
func maxExtent(atoms atom.List) float64 {
	ext := atoms.BoundingBox().Extent()
	max := ext.X
	if ext.Y > max {
		max = ext.Y
	}
	if ext.Z > max {
		max = ext.Z
	}

	return max
}
