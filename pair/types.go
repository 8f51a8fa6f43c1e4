// Package pair enumerates candidate atom pairs from a selector.PairSpec,
// applying ordering rules, homomeric canonicalisation, and duplicate-pair
// suppression, and computes each candidate's Euclidean distance.
package pair

import (
	"fmt"

	"github.com/xwalk-go/xwalk/atom"
	"github.com/xwalk-go/xwalk/geom"
	"github.com/xwalk-go/xwalk/selector"
)

// Candidate is one enumerated pair: the indices of the two atoms in the
// caller's atom.List, plus the pre-computed Euclidean distance between them.
type Candidate struct {
	SourceIdx int
	TargetIdx int
	Euclidean float64
}

// Enumerate applies spec.Selector1 and spec.Selector2 to atoms independently,
// then emits every ordered pair (a, b) in S1×S2 subject to a ≠ b, the chain
// rule, homomeric canonicalisation, and duplicate suppression.
// Complexity: O(|S1|·|S2|) candidate evaluations, O(n) selector application.
func Enumerate(atoms atom.List, spec selector.PairSpec) []Candidate {
	s1 := selectIndices(atoms, spec.Selector1)
	s2 := selectIndices(atoms, spec.Selector2)

	seenOrdered := make(map[[2]int]bool)
	seenHomomeric := make(map[string]bool)
	var out []Candidate

	for _, i := range s1 {
		for _, j := range s2 {
			if i == j {
				continue
			}
			a, b := atoms[i], atoms[j]
			if atom.Equal(a, b) {
				continue
			}
			switch spec.Chain {
			case selector.ChainIntraOnly:
				if a.ChainID != b.ChainID {
					continue
				}
			case selector.ChainInterOnly:
				if a.ChainID == b.ChainID {
					continue
				}
			}

			if !spec.Directed {
				key := unorderedKey(i, j)
				if seenOrdered[key] {
					continue
				}
				seenOrdered[key] = true
			}

			if spec.Homomeric {
				key := homomericKey(a, b)
				if seenHomomeric[key] {
					continue
				}
				seenHomomeric[key] = true
			}

			out = append(out, Candidate{
				SourceIdx: i,
				TargetIdx: j,
				Euclidean: geom.Distance(a.Position, b.Position),
			})
		}
	}

	return out
}

// selectIndices returns the indices of every atom in atoms matching s.
func selectIndices(atoms atom.List, s selector.Selector) []int {
	var idx []int
	for i, a := range atoms {
		if s.Matches(a) {
			idx = append(idx, i)
		}
	}

	return idx
}

// unorderedKey returns a key identifying {i, j} regardless of order, so
// (a, b) and (b, a) collapse to the same cache entry.
func unorderedKey(i, j int) [2]int {
	if i < j {
		return [2]int{i, j}
	}

	return [2]int{j, i}
}

// homomericKey canonicalises a pair by residue identity, ignoring chain, so
// equivalent pairs across symmetric chains collapse to the same key.
func homomericKey(a, b atom.Atom) string {
	ka := residueIdentity(a)
	kb := residueIdentity(b)
	if ka > kb {
		ka, kb = kb, ka
	}

	return ka + "::" + kb
}

func residueIdentity(a atom.Atom) string {
	return fmt.Sprintf("%s|%d|%s", a.ResName, a.ResSeq, a.Name)
}
