package pair_test

import (
	"testing"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
	"github.com/xwalk-go/xwalk/pair"
	"github.com/xwalk-go/xwalk/selector"
)

func newLys(t *testing.T, serial int, chain string, resSeq int, pos geom.Point) atom.Atom {
	t.Helper()
	a, err := atom.New(serial, "NZ", "", "LYS", chain, resSeq, "", pos, "N", atom.DefaultVdWRadius)
	if err != nil {
		t.Fatalf("atom.New: %v", err)
	}

	return a
}

func TestEnumerateDeduplicatesUnorderedPairs(t *testing.T) {
	atoms := atom.List{
		newLys(t, 1, "A", 10, geom.Point{0, 0, 0}),
		newLys(t, 2, "A", 20, geom.Point{10, 0, 0}),
	}
	spec := selector.PairSpec{
		Selector1: selector.Selector{ResNames: []string{"LYS"}},
		Selector2: selector.Selector{ResNames: []string{"LYS"}},
	}
	cands := pair.Enumerate(atoms, spec)
	if len(cands) != 1 {
		t.Fatalf("len(cands) = %d; want 1 (dedup of reciprocal pair)", len(cands))
	}
	if cands[0].Euclidean != 10 {
		t.Errorf("Euclidean = %v; want 10", cands[0].Euclidean)
	}
}

func TestEnumerateDirectedKeepsBothOrders(t *testing.T) {
	atoms := atom.List{
		newLys(t, 1, "A", 10, geom.Point{0, 0, 0}),
		newLys(t, 2, "A", 20, geom.Point{10, 0, 0}),
	}
	spec := selector.PairSpec{
		Selector1: selector.Selector{ResNames: []string{"LYS"}},
		Selector2: selector.Selector{ResNames: []string{"LYS"}},
		Directed:  true,
	}
	cands := pair.Enumerate(atoms, spec)
	if len(cands) != 2 {
		t.Fatalf("len(cands) = %d; want 2 (directed keeps both orderings)", len(cands))
	}
}

func TestEnumerateIntraOnly(t *testing.T) {
	atoms := atom.List{
		newLys(t, 1, "A", 10, geom.Point{0, 0, 0}),
		newLys(t, 2, "B", 20, geom.Point{10, 0, 0}),
	}
	spec := selector.PairSpec{
		Selector1: selector.Selector{ResNames: []string{"LYS"}},
		Selector2: selector.Selector{ResNames: []string{"LYS"}},
		Chain:     selector.ChainIntraOnly,
	}
	if cands := pair.Enumerate(atoms, spec); len(cands) != 0 {
		t.Fatalf("len(cands) = %d; want 0 (different chains under IntraOnly)", len(cands))
	}
}

func TestEnumerateHomomericCollapsesSymmetricChains(t *testing.T) {
	atoms := atom.List{
		newLys(t, 1, "A", 42, geom.Point{0, 0, 0}),
		newLys(t, 2, "B", 42, geom.Point{20, 0, 0}),
	}
	spec := selector.PairSpec{
		Selector1: selector.Selector{ResNames: []string{"LYS"}},
		Selector2: selector.Selector{ResNames: []string{"LYS"}},
		Homomeric: true,
	}
	cands := pair.Enumerate(atoms, spec)
	if len(cands) != 1 {
		t.Fatalf("len(cands) = %d; want 1 (A_K42, B_K42) emitted once", len(cands))
	}
}

func TestEnumerateRejectsSelfPairs(t *testing.T) {
	atoms := atom.List{newLys(t, 1, "A", 10, geom.Point{0, 0, 0})}
	spec := selector.PairSpec{
		Selector1: selector.Selector{},
		Selector2: selector.Selector{},
	}
	if cands := pair.Enumerate(atoms, spec); len(cands) != 0 {
		t.Fatalf("len(cands) = %d; want 0 (only candidate is a self-pair)", len(cands))
	}
}
