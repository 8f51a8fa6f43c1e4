// Package geom provides the point, bounding-box, and distance primitives
// used throughout xwalk.
//
// Complexity: every operation in this package is O(1); there is no
// allocation-heavy state. Points and boxes are plain values, copied by
// assignment like the teacher library's Vertex/Edge records.
package geom
