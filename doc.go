// Package xwalk computes solvent-accessible surface distances (SASD)
// between candidate atom pairs in a protein structure, subject to a
// cross-linker reagent's bounded reach.
//
// What it does:
//
//   - Builds a uniform 3D occupancy grid over a protein's van der Waals
//     volume (package grid).
//   - Runs a bounded, multi-target weighted shortest-path search over that
//     grid between a source atom and a set of target atoms (package sasd).
//   - Enumerates candidate atom pairs from selector specifications, with
//     each pair's Euclidean distance and homomeric deduplication (package
//     pair); the driver compares that distance against the bound.
//   - Orchestrates grid construction and per-source searches into a stream
//     of (source, target, euclidean, sasd) records (package engine).
//
// Why:
//
//   - Cross-linking mass spectrometry needs to know which candidate residue
//     pairs a flexible reagent of known length could actually bridge
//     through solvent, as opposed to pairs that are merely close in a
//     straight line but separated by the protein body.
//
// Package layout:
//
//	geom/     — points, bounding boxes, Euclidean distance
//	atom/     — atom records, atom lists, van der Waals radii
//	selector/ — atom selector matching and pair specifications
//	pair/     — candidate pair enumeration
//	grid/     — occupancy grid construction and line-of-sight sweeps
//	sasd/     — bounded multi-target shortest-path search
//	engine/   — distance driver, configuration, concurrency
//
// xwalk does not parse PDB files, handle command-line arguments, perform
// tryptic digestion, or format output tables — those are the caller's
// concern. xwalk consumes a finished atom list and a pair specification and
// returns structured records.
//
//	go get github.com/xwalk-go/xwalk
package xwalk
