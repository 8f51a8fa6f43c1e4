package selector_test

import (
	"testing"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
	"github.com/xwalk-go/xwalk/selector"
)

func lysNZ(t *testing.T, chain string, resSeq int) atom.Atom {
	t.Helper()
	a, err := atom.New(1, "NZ", "", "LYS", chain, resSeq, "", geom.Point{}, "N", atom.DefaultVdWRadius)
	if err != nil {
		t.Fatalf("atom.New: %v", err)
	}

	return a
}

func TestSelectorEmptyMeansAny(t *testing.T) {
	s := selector.Selector{}
	if !s.Matches(lysNZ(t, "A", 42)) {
		t.Error("empty selector should match any atom")
	}
}

func TestSelectorConstrainsByResidueName(t *testing.T) {
	s := selector.Selector{ResNames: []string{"LYS"}}
	if !s.Matches(lysNZ(t, "A", 42)) {
		t.Error("expected LYS selector to match lysine")
	}

	ala, err := atom.New(1, "CA", "", "ALA", "A", 10, "", geom.Point{}, "C", atom.DefaultVdWRadius)
	if err != nil {
		t.Fatalf("atom.New: %v", err)
	}
	if s.Matches(ala) {
		t.Error("expected LYS selector to reject alanine")
	}
}

func TestSelectorConstrainsByMultipleFields(t *testing.T) {
	s := selector.Selector{
		ResNames:  []string{"LYS"},
		Chains:    []string{"A"},
		AtomNames: []string{"NZ"},
	}
	if !s.Matches(lysNZ(t, "A", 42)) {
		t.Error("expected full match to pass")
	}
	if s.Matches(lysNZ(t, "B", 42)) {
		t.Error("expected chain mismatch to fail")
	}
}
