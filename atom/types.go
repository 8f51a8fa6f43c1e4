// Package atom defines the Atom record and AtomList used across xwalk, plus
// the van der Waals radius table consulted when an atom is admitted to a
// grid.
package atom

import (
	"errors"
	"fmt"

	"github.com/xwalk-go/xwalk/geom"
)

// Sentinel errors for atom construction.
var (
	// ErrOutOfBounds indicates a coordinate or residue number fell outside
	// the bounds this engine treats as physically plausible input.
	ErrOutOfBounds = errors.New("atom: field out of bounds")
)

// Bounds enforced at construction, per the Input error kind in the
// engine's error taxonomy.
const (
	MaxCoordinate    = 9999.0
	MinResidueSeq    = -999
	MaxResidueSeq    = 9999
	DefaultVdWRadius = 1.5
)

// vdwRadii maps element symbol to van der Waals radius in Ångström.
// Grounded on the radii used for steric clash detection in the pack's
// molecular-mechanics code: H, C, N, O, S.
var vdwRadii = map[string]float64{
	"H": 1.20,
	"C": 1.70,
	"N": 1.55,
	"O": 1.52,
	"S": 1.80,
}

// backboneAtomNames are the four backbone atom names per residue.
var backboneAtomNames = map[string]bool{
	"N": true, "CA": true, "C": true, "O": true,
}

// Atom is an immutable record describing one atom in a protein structure.
// Two atoms are equal iff their identifying fields match and their
// coordinates agree within geom.CoincidenceTolerance.
type Atom struct {
	Serial     int
	Name       string
	AltLoc     string
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      string
	Position   geom.Point
	Element    string
	VdWRadius  float64
	Charge     *float64
	Aromatic   bool
	Metallic   bool
}

// New constructs an Atom, resolving its van der Waals radius from the
// element table (or defaultRadius when the element is unrecognised), and
// validates the bounds invariant from the engine's Input error kind.
// Complexity: O(1).
func New(serial int, name, altLoc, resName, chainID string, resSeq int, iCode string,
	pos geom.Point, element string, defaultRadius float64) (Atom, error) {
	a := Atom{
		Serial:    serial,
		Name:      name,
		AltLoc:    altLoc,
		ResName:   resName,
		ChainID:   chainID,
		ResSeq:    resSeq,
		ICode:     iCode,
		Position:  pos,
		Element:   element,
		VdWRadius: ResolveRadius(element, defaultRadius),
	}
	if err := a.validate(); err != nil {
		return Atom{}, err
	}

	return a, nil
}

// validate checks the bounds invariant from spec: coordinates within
// ±MaxCoordinate, residue number within [MinResidueSeq, MaxResidueSeq].
func (a Atom) validate() error {
	if a.Position.X < -MaxCoordinate || a.Position.X > MaxCoordinate ||
		a.Position.Y < -MaxCoordinate || a.Position.Y > MaxCoordinate ||
		a.Position.Z < -MaxCoordinate || a.Position.Z > MaxCoordinate {
		return fmt.Errorf("%w: atom %d coordinate exceeds ±%.0f Å", ErrOutOfBounds, a.Serial, MaxCoordinate)
	}
	if a.ResSeq < MinResidueSeq || a.ResSeq > MaxResidueSeq {
		return fmt.Errorf("%w: atom %d residue number %d out of [%d, %d]", ErrOutOfBounds, a.Serial, a.ResSeq, MinResidueSeq, MaxResidueSeq)
	}

	return nil
}

// ResolveRadius looks up the van der Waals radius for element, case-sensitive
// on the usual single/double-letter PDB element symbol; unknown elements
// fall back to defaultRadius.
func ResolveRadius(element string, defaultRadius float64) float64 {
	if r, ok := vdwRadii[element]; ok {
		return r
	}

	return defaultRadius
}

// IsBackbone reports whether a is one of the four backbone atoms (N, CA, C, O).
// This is the "backbone-only vs. all-atom" predicate the Design Notes call
// for in place of a type hierarchy.
func (a Atom) IsBackbone() bool {
	return backboneAtomNames[a.Name]
}

// Equal reports whether a and b are the same atom: identifying fields match
// exactly and coordinates agree within geom.CoincidenceTolerance.
func Equal(a, b Atom) bool {
	return a.Name == b.Name &&
		a.ChainID == b.ChainID &&
		a.AltLoc == b.AltLoc &&
		a.ResName == b.ResName &&
		a.ResSeq == b.ResSeq &&
		geom.Equal(a.Position, b.Position)
}

// Descriptor formats a's identifying fields as "residueName-residueNumber-chain-atomName",
// the format the engine uses for Record source/target descriptors.
func (a Atom) Descriptor() string {
	return fmt.Sprintf("%s-%d-%s-%s", a.ResName, a.ResSeq, a.ChainID, a.Name)
}

// List is an ordered sequence of atoms. Order is caller-meaningful (it
// mirrors input file order) but carries no semantic weight for the engine.
type List []Atom

// MaxVdWRadius returns the largest van der Waals radius among all atoms in
// l, used by the grid to size its construction margin. Returns 0 for an
// empty list.
func (l List) MaxVdWRadius() float64 {
	var max float64
	for _, a := range l {
		if a.VdWRadius > max {
			max = a.VdWRadius
		}
	}

	return max
}

// BoundingBox returns the axis-aligned bounding box of every atom centre in l.
func (l List) BoundingBox() geom.BBox {
	box := geom.EmptyBBox()
	for _, a := range l {
		box.Extend(a.Position)
	}

	return box
}
