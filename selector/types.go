// Package selector defines atom selectors and the pair specification that
// configures candidate-pair enumeration.
package selector

import "github.com/xwalk-go/xwalk/atom"

// Selector enumerates the allowed values for each identifying field of a
// candidate atom. An empty (nil or zero-length) field means "any" — the
// selector does not constrain that field.
type Selector struct {
	ResNames  []string
	ResNums   []int
	Chains    []string
	AtomNames []string
	AltLocs   []string
}

// Matches reports whether a satisfies s: every non-empty field of s must
// contain the corresponding field of a.
// Complexity: O(k) where k is the total size of s's allow-lists.
func (s Selector) Matches(a atom.Atom) bool {
	if !matchString(s.ResNames, a.ResName) {
		return false
	}
	if !matchInt(s.ResNums, a.ResSeq) {
		return false
	}
	if !matchString(s.Chains, a.ChainID) {
		return false
	}
	if !matchString(s.AtomNames, a.Name) {
		return false
	}
	if !matchString(s.AltLocs, a.AltLoc) {
		return false
	}

	return true
}

func matchString(allowed []string, value string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, v := range allowed {
		if v == value {
			return true
		}
	}

	return false
}

func matchInt(allowed []int, value int) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, v := range allowed {
		if v == value {
			return true
		}
	}

	return false
}

// ChainRule restricts candidate pairs by chain relationship.
type ChainRule int

const (
	// ChainAny admits both intramolecular and intermolecular pairs.
	ChainAny ChainRule = iota
	// ChainIntraOnly admits only pairs where both atoms share a chain.
	ChainIntraOnly
	// ChainInterOnly admits only pairs on different chains.
	ChainInterOnly
)

// PairSpec configures candidate-pair enumeration: two selectors applied
// independently to the atom list, plus ordering and deduplication rules.
type PairSpec struct {
	// Selector1 and Selector2 select the candidate sets S1 and S2. A pair
	// (a, b) matches when a satisfies Selector1 and b satisfies Selector2.
	Selector1, Selector2 Selector

	// Chain restricts pairs by the intra/inter chain relationship.
	Chain ChainRule

	// Homomeric, when set, canonicalises pairs by residue identity so
	// symmetric pairs across equivalent chains are emitted once.
	Homomeric bool

	// Directed, when true, disables the duplicate-pair cache so (a, b) and
	// (b, a) may both be emitted when both selectors admit both atoms.
	Directed bool
}
