// Package napsack implements the Euclidean projection of a vector y onto
// the knapsack-constrained box
//
//	{ x : 0 <= x <= 1, lo <= a.x <= hi }     (a >= 0)
//
// used repeatedly inside QPRefiner's gradient-projection loop (spec.md
// §4.8, §4.9).
//
// x_i(lambda) = clamp(y_i - lambda*a_i, 0, 1) is piecewise linear and
// non-increasing in lambda, so b(lambda) = a.x(lambda) is piecewise
// linear and non-increasing too. Project walks the breakpoints where
// some x_i enters or leaves the interior (0 < x_i < 1), using a MinHeap
// to advance lambda upward (shrinking b toward hi) or a MaxHeap to
// retreat lambda downward (growing b toward lo), and solves the final
// linear piece exactly for the lambda that hits the target bound.
//
// Grounded on original_source/Include/Mongoose_QPNapsack.hpp,
// Mongoose_QPNapUp.hpp, Mongoose_QPNapDown.hpp, Mongoose_QPMaxHeap.hpp,
// and Mongoose_QPMinHeap.hpp.
package napsack
