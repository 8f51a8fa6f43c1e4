package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		name   string
		p, q   Point
		wantGE float64
	}{
		{"origin", Point{0, 0, 0}, Point{0, 0, 0}, 0},
		{"unitX", Point{0, 0, 0}, Point{1, 0, 0}, 1},
		{"3-4-5", Point{0, 0, 0}, Point{3, 4, 0}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.p, tc.q)
			if math.Abs(got-tc.wantGE) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v; want %v", tc.p, tc.q, got, tc.wantGE)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := Point{1, 2, 3}
	b := Point{1 + 1e-6, 2, 3}
	c := Point{1 + 1e-3, 2, 3}
	if !Equal(a, b) {
		t.Errorf("Equal(%v, %v) = false; want true (within tolerance)", a, b)
	}
	if Equal(a, c) {
		t.Errorf("Equal(%v, %v) = true; want false (outside tolerance)", a, c)
	}
}

func TestBBoxExtendAndExpand(t *testing.T) {
	b := EmptyBBox()
	b.Extend(Point{1, 2, 3})
	b.Extend(Point{-1, 5, 0})
	if b.Min != (Point{-1, 2, 0}) || b.Max != (Point{1, 5, 3}) {
		t.Fatalf("unexpected box after Extend: %+v", b)
	}
	e := b.Expand(1)
	if e.Min != (Point{-2, 1, -1}) || e.Max != (Point{2, 6, 4}) {
		t.Fatalf("unexpected box after Expand: %+v", e)
	}
}

func TestBBoxContains(t *testing.T) {
	b := BBox{Min: Point{0, 0, 0}, Max: Point{10, 10, 10}}
	if !b.Contains(Point{5, 5, 5}) {
		t.Error("expected box to contain interior point")
	}
	if b.Contains(Point{11, 5, 5}) {
		t.Error("expected box to reject point outside X range")
	}
}

func TestIntersectValid(t *testing.T) {
	a := BBox{Min: Point{0, 0, 0}, Max: Point{5, 5, 5}}
	b := BBox{Min: Point{3, 3, 3}, Max: Point{8, 8, 8}}
	i := Intersect(a, b)
	if !i.Valid() {
		t.Fatal("expected overlapping boxes to intersect validly")
	}
	if i.Min != (Point{3, 3, 3}) || i.Max != (Point{5, 5, 5}) {
		t.Fatalf("unexpected intersection: %+v", i)
	}

	c := BBox{Min: Point{100, 100, 100}, Max: Point{200, 200, 200}}
	disjoint := Intersect(a, c)
	if disjoint.Valid() {
		t.Fatal("expected disjoint boxes to produce an invalid intersection")
	}
}

func TestCubeAround(t *testing.T) {
	c := CubeAround(Point{5, 5, 5}, 4)
	if c.Min != (Point{3, 3, 3}) || c.Max != (Point{7, 7, 7}) {
		t.Fatalf("unexpected cube: %+v", c)
	}
}
