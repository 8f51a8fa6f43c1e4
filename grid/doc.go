// Package grid builds a uniform 3D occupancy grid over a protein's van der
// Waals volume and answers cell-level occupancy, shell, and line-of-sight
// queries against it.
//
// The grid is immutable once constructed: Occupied and Blocked are computed
// once in NewGrid/NewLocalGrid and never mutated afterward. Callers that
// need to treat specific cells as passable for one search (see package
// sasd's OpenSet) pass that override into the search call instead of
// mutating the grid, so occupancy and clearance stay safe to read from
// concurrent searches.
package grid
