package grid

import (
	"math"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
)

// NewGrid builds a full occupancy grid spanning every atom in atoms.
// Complexity: O(cells) for allocation plus O(atoms·shell + occupied·clearance)
// for marking.
func NewGrid(atoms atom.List, opts GridOptions) (*Grid, error) {
	if len(atoms) == 0 {
		return nil, ErrEmptyAtoms
	}
	if opts.CellSize <= 0 {
		return nil, ErrBadCellSize
	}

	margin := atoms.MaxVdWRadius() + opts.SolventRadius + opts.CellSize
	box := atoms.BoundingBox().Expand(margin)

	return build(atoms, allIndices(len(atoms)), box, opts)
}

// NewLocalGrid builds a grid restricted to a cube of edge
// 2·(dMax+2·PathClearanceRadius) + 2·margin (margin being the max van der
// Waals radius plus solvent radius plus one cell) centred on
// atoms[sourceIdx], intersected with the
// structure's full bounding box. Atoms whose centre falls outside the cube
// are excluded from occupancy; Grid.Contains reports whether a given
// position was covered, so a driver can detect out-of-range targets.
func NewLocalGrid(atoms atom.List, sourceIdx int, dMax float64, opts GridOptions) (*Grid, error) {
	if len(atoms) == 0 {
		return nil, ErrEmptyAtoms
	}
	if sourceIdx < 0 || sourceIdx >= len(atoms) {
		return nil, ErrOutOfGrid
	}
	if opts.CellSize <= 0 {
		return nil, ErrBadCellSize
	}

	margin := atoms.MaxVdWRadius() + opts.SolventRadius + opts.CellSize
	fullBox := atoms.BoundingBox().Expand(margin)
	edge := 2*(dMax+2*PathClearanceRadius) + 2*margin
	cube := geom.CubeAround(atoms[sourceIdx].Position, edge)
	box := geom.Intersect(cube, fullBox)
	if !box.Valid() {
		return nil, ErrDegenerateBox
	}

	var included []int
	for i, a := range atoms {
		if box.Contains(a.Position) {
			included = append(included, i)
		}
	}
	if len(included) == 0 {
		return nil, ErrDegenerateBox
	}

	return build(atoms, included, box, opts)
}

// allIndices returns [0, n).
func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// build quantises box into cells and marks occupancy/clearance for the
// atoms named by included.
func build(atoms atom.List, included []int, box geom.BBox, opts GridOptions) (*Grid, error) {
	extent := box.Extent()
	nx := int(math.Ceil(extent.X / opts.CellSize))
	ny := int(math.Ceil(extent.Y / opts.CellSize))
	nz := int(math.Ceil(extent.Z / opts.CellSize))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	if nz < 1 {
		nz = 1
	}

	g := &Grid{
		Origin:        box.Min,
		CellSize:      opts.CellSize,
		Nx:            nx,
		Ny:            ny,
		Nz:            nz,
		solventRadius: opts.SolventRadius,
		AtomCells:     make(map[int][]int, len(included)),
	}
	g.Occupied = make([]bool, g.NCells())

	for _, ai := range included {
		a := atoms[ai]
		radius := a.VdWRadius + opts.SolventRadius
		shell := markSphere(g, g.Occupied, a.Position, radius)
		g.AtomCells[ai] = shell
	}

	g.Blocked = dilate(g, g.Occupied, PathClearanceRadius)

	return g, nil
}

// markSphere sets mark[idx]=true for every cell whose centre lies within
// radius of centre, restricted to the cube of indices that could possibly
// intersect the sphere. Returns the indices it touched.
func markSphere(g *Grid, mark []bool, centre geom.Point, radius float64) []int {
	iMin, jMin, kMin := g.WorldToCoordinate(geom.Point{X: centre.X - radius, Y: centre.Y - radius, Z: centre.Z - radius})
	iMax, jMax, kMax := g.WorldToCoordinate(geom.Point{X: centre.X + radius, Y: centre.Y + radius, Z: centre.Z + radius})

	var touched []int
	for k := kMin; k <= kMax; k++ {
		for j := jMin; j <= jMax; j++ {
			for i := iMin; i <= iMax; i++ {
				if !g.InBounds(i, j, k) {
					continue
				}
				cell := g.CellCenter(i, j, k)
				if geom.Distance(cell, centre) > radius {
					continue
				}
				idx := g.Index(i, j, k)
				if !mark[idx] {
					mark[idx] = true
				}
				touched = append(touched, idx)
			}
		}
	}

	return touched
}

// dilate returns a new mask where cell idx is true iff occupied[idx] is true
// or idx lies within radius of some occupied cell.
func dilate(g *Grid, occupied []bool, radius float64) []bool {
	out := make([]bool, len(occupied))
	copy(out, occupied)

	for idx, on := range occupied {
		if !on {
			continue
		}
		i, j, k := g.Coordinate(idx)
		centre := g.CellCenter(i, j, k)
		markSphere(g, out, centre, radius)
	}

	return out
}
