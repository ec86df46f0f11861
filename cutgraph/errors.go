package cutgraph

import "errors"

// Sentinel errors for GraphStore construction and invariant checks.
var (
	// ErrEmptyGraph indicates n == 0 (spec.md §6, §8 boundary behavior).
	ErrEmptyGraph = errors.New("cutgraph: empty graph (n == 0)")

	// ErrBadCSC indicates the CSC triple failed a structural check:
	// P[0] != 0, P[n] != len(I), or len(I) != len(X).
	ErrBadCSC = errors.New("cutgraph: malformed CSC adjacency")

	// ErrSelfLoop indicates a stored entry (u,u) was found; GraphStore
	// requires a diagonal-free adjacency (spec.md §3).
	ErrSelfLoop = errors.New("cutgraph: self-loop present in adjacency")

	// ErrNonFiniteWeight indicates an edge weight is NaN or +/-Inf
	// (spec.md §6: "Edge weights x must be finite").
	ErrNonFiniteWeight = errors.New("cutgraph: non-finite edge weight")

	// ErrNegativeVertexWeight indicates w[k] < 0 (spec.md §3: "w >= 0").
	ErrNegativeVertexWeight = errors.New("cutgraph: negative vertex weight")

	// ErrOutOfMemory is returned by an Allocator that has exhausted its
	// configured budget. See FailingAllocator.
	ErrOutOfMemory = errors.New("cutgraph: allocation failed")
)
