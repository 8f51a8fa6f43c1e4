// Package atom defines the Atom record, List, and van der Waals radius
// resolution used by the grid and pair packages.
//
// Errors:
//
//   - ErrOutOfBounds: coordinate or residue number outside the ranges this
//     engine treats as physically plausible ([-9999, 9999] Å, [-999, 9999]).
//
// Atoms are immutable once constructed; List order is caller-meaningful
// (matches input file order) but not semantically significant downstream.
package atom
