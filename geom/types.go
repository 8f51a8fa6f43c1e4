// Package geom defines the three-dimensional geometric primitives shared by
// every other xwalk package: points, axis-aligned bounding boxes, and
// Euclidean distance with a fixed coincidence tolerance.
package geom

import "math"

// CoincidenceTolerance is the distance, in Ångström, below which two points
// are treated as the same location. Used by Equal and by atom identity
// comparisons elsewhere in the module.
const CoincidenceTolerance = 1e-4

// Point is an immutable triple of double-precision coordinates in Ångström.
type Point struct {
	X, Y, Z float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Norm returns the Euclidean length of p treated as a vector from the origin.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the straight-line distance between p and q in Ångström.
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return p.Sub(q).Norm()
}

// Equal reports whether p and q are the same point within CoincidenceTolerance.
func Equal(p, q Point) bool {
	return Distance(p, q) < CoincidenceTolerance
}

// BBox is an axis-aligned bounding box, inclusive of Min and Max.
type BBox struct {
	Min, Max Point
}

// EmptyBBox returns a degenerate box positioned so that the first call to
// Extend establishes real bounds.
func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{
		Min: Point{inf, inf, inf},
		Max: Point{-inf, -inf, -inf},
	}
}

// Extend grows b, in place, to include p.
func (b *BBox) Extend(p Point) {
	b.Min.X, b.Max.X = math.Min(b.Min.X, p.X), math.Max(b.Max.X, p.X)
	b.Min.Y, b.Max.Y = math.Min(b.Min.Y, p.Y), math.Max(b.Max.Y, p.Y)
	b.Min.Z, b.Max.Z = math.Min(b.Min.Z, p.Z), math.Max(b.Max.Z, p.Z)
}

// Expand returns a copy of b with every face pushed outward by margin.
func (b BBox) Expand(margin float64) BBox {
	m := Point{margin, margin, margin}
	return BBox{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Extent returns the per-axis size of the box.
func (b BBox) Extent() Point {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies within b (inclusive).
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersect returns the overlap of a and b. The result may be degenerate
// (Min > Max on some axis) if a and b do not overlap; callers that need a
// non-degenerate result must check with Valid.
func Intersect(a, b BBox) BBox {
	return BBox{
		Min: Point{
			math.Max(a.Min.X, b.Min.X),
			math.Max(a.Min.Y, b.Min.Y),
			math.Max(a.Min.Z, b.Min.Z),
		},
		Max: Point{
			math.Min(a.Max.X, b.Max.X),
			math.Min(a.Max.Y, b.Max.Y),
			math.Min(a.Max.Z, b.Max.Z),
		},
	}
}

// Valid reports whether b has non-negative extent on every axis.
func (b BBox) Valid() bool {
	return b.Max.X >= b.Min.X && b.Max.Y >= b.Min.Y && b.Max.Z >= b.Min.Z
}

// CubeAround returns a cube of the given edge length centred on p.
func CubeAround(p Point, edge float64) BBox {
	half := edge / 2
	m := Point{half, half, half}
	return BBox{Min: p.Sub(m), Max: p.Add(m)}
}
