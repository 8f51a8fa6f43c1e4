package atom_test

import (
	"errors"
	"testing"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
)

func mustAtom(t *testing.T, serial int, name, chain string, resSeq int, pos geom.Point, element string) atom.Atom {
	t.Helper()
	a, err := atom.New(serial, name, "", "LYS", chain, resSeq, "", pos, element, atom.DefaultVdWRadius)
	if err != nil {
		t.Fatalf("atom.New: unexpected error: %v", err)
	}

	return a
}

func TestNewResolvesKnownElementRadius(t *testing.T) {
	a := mustAtom(t, 1, "NZ", "A", 42, geom.Point{}, "N")
	if a.VdWRadius != 1.55 {
		t.Errorf("VdWRadius = %v; want 1.55 for nitrogen", a.VdWRadius)
	}
}

func TestNewFallsBackToDefaultForUnknownElement(t *testing.T) {
	a := mustAtom(t, 1, "X1", "A", 1, geom.Point{}, "Xx")
	if a.VdWRadius != atom.DefaultVdWRadius {
		t.Errorf("VdWRadius = %v; want default %v", a.VdWRadius, atom.DefaultVdWRadius)
	}
}

func TestNewRejectsOutOfBoundsCoordinate(t *testing.T) {
	_, err := atom.New(1, "CA", "", "ALA", "A", 1, "", geom.Point{X: 20000}, "C", atom.DefaultVdWRadius)
	if !errors.Is(err, atom.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestNewRejectsOutOfBoundsResidueNumber(t *testing.T) {
	_, err := atom.New(1, "CA", "", "ALA", "A", 20000, "", geom.Point{}, "C", atom.DefaultVdWRadius)
	if !errors.Is(err, atom.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestEqualRequiresIdentityAndCoincidence(t *testing.T) {
	a := mustAtom(t, 1, "NZ", "A", 42, geom.Point{1, 2, 3}, "N")
	b := mustAtom(t, 2, "NZ", "A", 42, geom.Point{1, 2, 3 + 1e-6}, "N")
	c := mustAtom(t, 3, "NZ", "B", 42, geom.Point{1, 2, 3}, "N")

	if !atom.Equal(a, b) {
		t.Error("expected coincident atoms to be equal regardless of Serial")
	}
	if atom.Equal(a, c) {
		t.Error("expected atoms on different chains to be unequal")
	}
}

func TestIsBackbone(t *testing.T) {
	ca := mustAtom(t, 1, "CA", "A", 1, geom.Point{}, "C")
	nz := mustAtom(t, 2, "NZ", "A", 1, geom.Point{}, "N")
	if !ca.IsBackbone() {
		t.Error("CA should be backbone")
	}
	if nz.IsBackbone() {
		t.Error("NZ should not be backbone")
	}
}

func TestListBoundingBoxAndMaxRadius(t *testing.T) {
	l := atom.List{
		mustAtom(t, 1, "CA", "A", 1, geom.Point{0, 0, 0}, "C"),
		mustAtom(t, 2, "S", "A", 2, geom.Point{10, -5, 2}, "S"),
	}
	box := l.BoundingBox()
	if box.Min != (geom.Point{0, -5, 0}) || box.Max != (geom.Point{10, 0, 2}) {
		t.Fatalf("unexpected bounding box: %+v", box)
	}
	if l.MaxVdWRadius() != 1.80 {
		t.Errorf("MaxVdWRadius = %v; want 1.80 (sulfur)", l.MaxVdWRadius())
	}
}

func TestDescriptor(t *testing.T) {
	a := mustAtom(t, 1, "NZ", "A", 42, geom.Point{}, "N")
	if got, want := a.Descriptor(), "LYS-42-A-NZ"; got != want {
		t.Errorf("Descriptor() = %q; want %q", got, want)
	}
}
