// Package coarsen implements Coarsener: given a fine level's Matching,
// it builds the next-coarser level's Graph by contracting matched
// clusters and summing parallel-edge weights.
//
// Grounded on original_source/Source/Mongoose_Graph.cpp's edge-creation
// loop (column-scatter against a length-cn "htable" of last-seen
// positions, per spec.md §4.5) and on cutgraph's own CSC construction
// style.
package coarsen
