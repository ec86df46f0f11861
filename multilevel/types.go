package multilevel

import "github.com/katalvlaran/edgecut/options"

// LevelStats records a coarsening level's size and cut quality at the
// point it was visited, for diagnostic traceability (SPEC_FULL.md
// §5.1's supplemented per-level trace stats; not present in spec.md's
// distilled external interface). CutCost is in the doubled internal
// form (each cut edge counted from both endpoints); CutSize counts each
// cut edge once.
type LevelStats struct {
	N       int
	CutCost float64
	CutSize int
}

// Result is MultilevelDriver's output (spec.md §6).
type Result struct {
	Partition []bool

	CutCost       float64
	CutSize       int
	W0, W1        float64
	Imbalance     float64
	NormalizedCut float64

	Status options.Status

	// Levels records, coarsest level first and root last, every level
	// visited during uncoarsening (after its own waterdance pass
	// completed).
	Levels []LevelStats
}
