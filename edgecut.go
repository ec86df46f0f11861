package edgecut

import (
	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/multilevel"
	"github.com/katalvlaran/edgecut/options"
)

// Separate partitions the graph given by the symmetric, diagonal-free
// CSC adjacency triple (p, i, x) of lengths n+1, nz, nz and the vertex
// weight vector w of length n (spec.md §6), into two sides according to
// opts.
//
// The caller is responsible for any upstream sanitization (symmetrizing
// an unsymmetric matrix, stripping the diagonal, extracting the largest
// strongly connected component): Separate assumes already-sanitized
// input. It rejects a self-loop (ErrSelfLoop) and a structurally
// malformed triple (ErrBadCSC); symmetry and connectivity are not
// checked.
//
// alloc may be nil, in which case cutgraph.DefaultAllocator() is used;
// pass a custom cutgraph.Allocator to simulate or bound memory pressure.
// progress may be nil; see multilevel.Progress.
//
// Complexity: O((n+nz) log n).
func Separate(p, i []int, x, w []float64, opts options.Options, alloc cutgraph.Allocator, progress multilevel.Progress) (*multilevel.Result, error) {
	return multilevel.Run(p, i, x, w, opts, alloc, progress)
}
