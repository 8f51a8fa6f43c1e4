// Package pair turns a selector.PairSpec and an atom.List into the ordered
// candidate pairs the engine will run searches for.
//
// Complexity: O(|S1|·|S2|) where S1, S2 are the selector-matched subsets.
package pair
