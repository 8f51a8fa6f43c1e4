package grid

import (
	"errors"
	"math"

	"github.com/xwalk-go/xwalk/geom"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyAtoms indicates an empty atom list was given to NewGrid.
	ErrEmptyAtoms = errors.New("grid: atom list is empty")
	// ErrDegenerateBox indicates the computed bounding box has no volume
	// (e.g. local-grid mode whose cube does not overlap the structure).
	ErrDegenerateBox = errors.New("grid: bounding box is degenerate")
	// ErrBadCellSize indicates a non-positive cell size was requested.
	ErrBadCellSize = errors.New("grid: cell size must be positive")
	// ErrOutOfGrid indicates a requested index or atom reference falls
	// outside the grid's coverage.
	ErrOutOfGrid = errors.New("grid: index out of bounds")
)

// PathClearanceRadius is the fixed clearance a path cell must maintain from
// any occupied cell, representing the cross-linker moiety's thickness. It is
// a design constant, not a tunable GridOptions field — see SPEC_FULL.md §9.
const PathClearanceRadius = 3.0

// GridOptions carries the construction-time parameters for a Grid.
type GridOptions struct {
	// CellSize is the cubic cell edge length in Ångström.
	CellSize float64
	// SolventRadius is added to each atom's van der Waals radius before
	// marking occupied cells.
	SolventRadius float64
}

// DefaultGridOptions returns CellSize=1.0, SolventRadius=1.4.
func DefaultGridOptions() GridOptions {
	return GridOptions{CellSize: 1.0, SolventRadius: 1.4}
}

// neighborOffsets26 is the full 3×3×3 neighbourhood minus the centre cell,
// precomputed once so every search iterates the same fixed slice.
var neighborOffsets26 = func() [][3]int {
	offs := make([][3]int, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offs = append(offs, [3]int{dx, dy, dz})
			}
		}
	}

	return offs
}()

// Grid is a dense, axis-aligned 3D occupancy grid over a protein's volume.
//
// Occupied[idx] is true iff some atom's van der Waals sphere (expanded by
// the solvent radius) covers that cell's centre. Blocked[idx] is true iff
// the cell lies within PathClearanceRadius of any occupied cell; Blocked is
// always a superset of Occupied. Both are computed once at construction and
// never mutated.
type Grid struct {
	Origin   geom.Point
	CellSize float64
	Nx, Ny, Nz int

	Occupied []bool
	Blocked  []bool

	// AtomCells maps an atom's index (in the caller's atom.List) to the
	// cell indices its own van der Waals shell occupies, so a driver can
	// compute an open-set override for a specific source/target without
	// mutating the grid.
	AtomCells map[int][]int

	solventRadius float64
}

// NCells returns the total number of cells in the grid.
func (g *Grid) NCells() int {
	return g.Nx * g.Ny * g.Nz
}

// Index maps a cell coordinate to its flat index. Complexity: O(1).
func (g *Grid) Index(i, j, k int) int {
	return (k*g.Ny+j)*g.Nx + i
}

// Coordinate maps a flat index back to (i, j, k). Complexity: O(1).
func (g *Grid) Coordinate(idx int) (i, j, k int) {
	i = idx % g.Nx
	rest := idx / g.Nx
	j = rest % g.Ny
	k = rest / g.Ny

	return i, j, k
}

// InBounds reports whether (i, j, k) lies within the grid.
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny && k >= 0 && k < g.Nz
}

// CellCenter returns the world-space centre of cell (i, j, k).
func (g *Grid) CellCenter(i, j, k int) geom.Point {
	half := g.CellSize / 2
	return geom.Point{
		X: g.Origin.X + float64(i)*g.CellSize + half,
		Y: g.Origin.Y + float64(j)*g.CellSize + half,
		Z: g.Origin.Z + float64(k)*g.CellSize + half,
	}
}

// WorldToCoordinate floor-quantises a world point to a cell coordinate. It
// does not check bounds; callers should follow with InBounds or IndexOf.
func (g *Grid) WorldToCoordinate(p geom.Point) (i, j, k int) {
	i = int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	j = int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	k = int(math.Floor((p.Z - g.Origin.Z) / g.CellSize))

	return i, j, k
}

// IndexOf returns the flat cell index containing p, or ok=false if p falls
// outside the grid.
func (g *Grid) IndexOf(p geom.Point) (idx int, ok bool) {
	i, j, k := g.WorldToCoordinate(p)
	if !g.InBounds(i, j, k) {
		return 0, false
	}

	return g.Index(i, j, k), true
}

// Contains reports whether p falls within the grid's world-space bounds.
func (g *Grid) Contains(p geom.Point) bool {
	_, ok := g.IndexOf(p)
	return ok
}

// IsBlocked reports whether cell idx is occupied or within clearance of an
// occupied cell. Indices outside [0, NCells()) report true.
func (g *Grid) IsBlocked(idx int) bool {
	if idx < 0 || idx >= len(g.Blocked) {
		return true
	}

	return g.Blocked[idx]
}

// OpenSet names cells that must be treated as passable for one query
// regardless of Blocked — used to "un-occupy" a source or target atom's own
// shell for a single search or line-of-sight check without mutating the
// shared grid. A nil OpenSet defers entirely to Blocked.
type OpenSet map[int]bool

// NewOpenSet unions any number of cell-index shells, as produced by
// AtomShell, into a single OpenSet.
func NewOpenSet(shells ...[]int) OpenSet {
	open := make(OpenSet)
	for _, shell := range shells {
		for _, idx := range shell {
			open[idx] = true
		}
	}

	return open
}

// Passable reports whether cell idx may be entered, i.e. it is not Blocked
// or it is named in open.
func (g *Grid) Passable(idx int, open OpenSet) bool {
	return open[idx] || !g.IsBlocked(idx)
}

// NeighborOffsets returns the precomputed 26-cell neighbourhood offsets.
func (g *Grid) NeighborOffsets() [][3]int {
	return neighborOffsets26
}

// AtomShell returns the cell indices occupied by a single atom's own van
// der Waals shell (plus solvent radius), as recorded at construction.
func (g *Grid) AtomShell(atomIdx int) []int {
	return g.AtomCells[atomIdx]
}

// SolventRadius returns the solvent radius this grid was built with.
func (g *Grid) SolventRadius() float64 {
	return g.solventRadius
}
