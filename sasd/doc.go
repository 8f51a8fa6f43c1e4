// Package sasd implements the bounded multi-target weighted shortest-path
// search — Dijkstra's algorithm over a grid.Grid's 26-cell neighbourhood —
// used to compute solvent-accessible surface distance between atom shells.
//
// Scratch state (distance, visited, back-pointer) lives in maps created
// fresh for each Search call rather than dense grid-sized arrays, so
// resetting between searches costs nothing beyond letting the maps go out
// of scope — no explicit grid-wide reset step is needed.
package sasd
