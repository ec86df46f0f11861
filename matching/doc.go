// Package matching implements Matcher: it computes a vertex matching
// under one of four strategies (spec.md §4.4) and produces the
// fine->coarse and coarse->fine maps package coarsen needs to build the
// next level of the hierarchy.
//
// A Matching groups each fine vertex into a cluster of one (orphan), two
// (standard/brotherly), or three (community) vertices, represented as a
// union of fixed-point self-loops, 2-cycles, and 3-cycles over Pairs —
// a direct but offset-free rendering of spec.md §3's
// "matching[v] = w+1 iff v and w are matched" encoding: since Go slices
// can use a vertex's own index as its own sentinel, the "+1 to avoid
// colliding with a false/zero value" trick the original C needed is
// unnecessary here (see DESIGN.md's Open Question resolution).
package matching
