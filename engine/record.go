package engine

import "github.com/xwalk-go/xwalk/atom"

// Record is one evaluated atom pair's outcome.
type Record struct {
	// Index preserves the candidate's position in pair.Enumerate's output,
	// so callers can recover a deterministic ordering after concurrent
	// evaluation.
	Index int

	SourceIdx int
	TargetIdx int
	Source    string
	Target    string

	Euclidean float64

	// SASD is the solvent-accessible surface distance, valid only when
	// Unreachable is false and Err is nil.
	SASD float64
	// Unreachable reports that no path within the configured MaxDistance
	// was found, as distinct from a construction or lookup error.
	Unreachable bool
	// Err is set when the pair could not be evaluated at all (e.g. an
	// atom fell outside local-grid coverage).
	Err error
}

func newRecord(idx int, atoms atom.List, sourceIdx, targetIdx int, euclidean float64) Record {
	return Record{
		Index:     idx,
		SourceIdx: sourceIdx,
		TargetIdx: targetIdx,
		Source:    atoms[sourceIdx].Descriptor(),
		Target:    atoms[targetIdx].Descriptor(),
		Euclidean: euclidean,
	}
}
