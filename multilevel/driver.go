package multilevel

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/edgecut/coarsen"
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/guess"
	"github.com/katalvlaran/edgecut/matching"
	"github.com/katalvlaran/edgecut/options"
	"github.com/katalvlaran/edgecut/waterdance"
)

// Progress is an optional callback invoked at each stage the driver
// passes through: "coarsen" once per coarsening attempt (including a
// final attempt that fails to shrink the graph), "guess" once on the
// coarsest level, "dance" once per waterdance call (once on the
// coarsest level, then once per level while ascending), and "project"
// once per uncoarsen step. n is the current level's vertex count.
//
// This is a zero-dependency stand-in for the original C++ engine's
// global Logger singleton (SPEC_FULL.md §2, §9): no package in the
// corpus this module is grounded on supplies a structured logger, so a
// plain caller-supplied callback is used instead of introducing one.
type Progress func(stage string, level, n int)

// statusFor classifies err per spec.md §7's status kinds.
func statusFor(err error) options.Status {
	switch {
	case errors.Is(err, options.ErrInvalidOption):
		return options.InvalidOption
	case errors.Is(err, cutgraph.ErrEmptyGraph):
		return options.EmptyGraph
	case errors.Is(err, cutgraph.ErrOutOfMemory):
		return options.OutOfMemory
	default:
		return options.Internal
	}
}

// level is one entry of the driver's stack: a Graph plus the Matching
// that was used to build its child (nil for the current top level).
type level struct {
	g *cutgraph.Graph
	m *matching.Matching
}

// Run executes MultilevelDriver end to end (spec.md §4.12): validate,
// seed the RNG, build the root level, coarsen down to coarsenLimit,
// produce an initial guess, dance at the coarsest level, then uncoarsen
// one level at a time — projecting, dancing, and popping — until back
// at the root, and finalize.
//
// p, i, x, w are the external CSC input graph (spec.md §6). alloc may
// be nil, in which case cutgraph.DefaultAllocator() is used. progress
// may be nil.
//
// Complexity: O((n+nz) log n) dominated by the coarsening/uncoarsening
// chain's per-level heap-driven refinement.
func Run(p, i []int, x, w []float64, opts options.Options, alloc cutgraph.Allocator, progress Progress) (*Result, error) {
	if progress == nil {
		progress = func(string, int, int) {}
	}
	if err := options.Validate(opts); err != nil {
		return &Result{Status: statusFor(err)}, err
	}
	if alloc == nil {
		alloc = cutgraph.DefaultAllocator()
	}
	rng := rand.New(rand.NewSource(opts.RandomSeed))

	root, err := cutgraph.NewFromCSC(p, i, x, w, alloc)
	if err != nil {
		return &Result{Status: statusFor(err)}, err
	}

	stack := []*level{{g: root}}
	top := root
	depth := 0
	for top.N >= opts.CoarsenLimit {
		progress("coarsen", depth, top.N)
		m := matching.Run(top, opts, rng)
		next, err := coarsen.Run(top, m, alloc)
		if err != nil {
			return &Result{Status: statusFor(err)}, err
		}
		if next.N >= top.N {
			// No vertex was ever paired (e.g. an edgeless graph): further
			// coarsening cannot make progress, so stop here rather than
			// looping forever.
			break
		}
		stack[len(stack)-1].m = m
		stack = append(stack, &level{g: next})
		top = next
		depth++
	}

	progress("guess", depth, top.N)
	guess.Run(top, opts, rng)
	progress("dance", depth, top.N)
	waterdance.Dance(top, opts)

	// Graph.CutSize is only set by Finalize, so each level's cut edge
	// count is taken from its ExternalDegree here.
	stats := func(g *cutgraph.Graph) LevelStats {
		ext := 0
		for k := 0; k < g.N; k++ {
			ext += g.ExternalDegree[k]
		}

		return LevelStats{N: g.N, CutCost: g.CutCost, CutSize: ext / 2}
	}
	levels := []LevelStats{stats(top)}
	for len(stack) > 1 {
		child := stack[len(stack)-1]
		parent := stack[len(stack)-2]
		depth--

		progress("project", depth, parent.g.N)
		waterdance.Project(parent.g, child.g, parent.m, opts)
		progress("dance", depth, parent.g.N)
		waterdance.Dance(parent.g, opts)

		stack = stack[:len(stack)-1]
		top = parent.g
		levels = append(levels, stats(top))
	}

	top.Finalize(opts.TargetSplit, opts.SoftSplitTolerance)

	return &Result{
		Partition:     append([]bool(nil), top.Partition...),
		CutCost:       top.CutCost,
		CutSize:       top.CutSize,
		W0:            top.W0,
		W1:            top.W1,
		Imbalance:     top.Imbalance,
		NormalizedCut: top.NormalizedCut(),
		Status:        options.Success,
		Levels:        levels,
	}, nil
}
