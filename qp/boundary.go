package qp

import (
	"math"

	"github.com/katalvlaran/edgecut/cutgraph"
)

// Boundary runs Phase C (QPBoundary, spec.md §4.9): five sequential
// stages that push fractional coordinates to 0 or 1 while decreasing
// the quadratic cost, keeping b = a.X within [Lo,Hi] throughout.
//
// Complexity: O(n + nz) per stage.
func Boundary(g *cutgraph.Graph, d *Delta) {
	stageSlideFreeToBound(g, d)
	stageFlipPinned(g, d)
	stagePairNonAdjacent(g, d)
	stagePairAdjacent(g, d)
	stageSingleFree(g, d)
}

// stageSlideFreeToBound is stage 1: while b sits strictly inside
// (Lo,Hi), walk the free set sliding each coordinate toward the bound
// its gradient sign favors, consuming b's slack, until b reaches a
// bound or the free set is exhausted.
func stageSlideFreeToBound(g *cutgraph.Graph, d *Delta) {
	if !(d.B > d.Lo && d.B < d.Hi) {
		return
	}
	free := append([]int(nil), d.FreeList...)
	for _, k := range free {
		if d.Status[k] != 0 {
			continue
		}
		target := 1.0
		if d.Gradient[k] > 0 {
			target = 0.0
		}
		wk := g.W[k]
		if wk == 0 {
			continue
		}
		dx := target - d.X[k]
		newB := d.B + wk*dx
		if target == 1.0 && newB > d.Hi {
			dx = (d.Hi - d.B) / wk
			newB = d.Hi
		} else if target == 0.0 && newB < d.Lo {
			dx = (d.Lo - d.B) / wk
			newB = d.Lo
		}
		d.X[k] += dx
		d.B = newB
		if d.X[k] >= 1 {
			d.X[k] = 1
			d.setStatus(k, 1)
		} else if d.X[k] <= 0 {
			d.X[k] = 0
			d.setStatus(k, -1)
		}
		if d.B <= d.Lo || d.B >= d.Hi {
			break
		}
	}
}

// stageFlipPinned is stage 2: for each pinned index, try flipping to
// the opposite bound when slack in b admits it and the scalar cost
// change (driven by D[k]/2 + Gradient[k]) favors the flip.
func stageFlipPinned(g *cutgraph.Graph, d *Delta) {
	for k := 0; k < g.N; k++ {
		if d.Status[k] == 0 {
			continue
		}
		wk := g.W[k]
		if wk == 0 {
			continue
		}
		var target float64
		var costDelta float64
		if d.Status[k] == 1 {
			target = 0
			costDelta = -(0.5*d.D[k] + d.Gradient[k])
		} else {
			target = 1
			costDelta = 0.5*d.D[k] + d.Gradient[k]
		}
		if costDelta >= 0 {
			continue
		}
		dx := target - d.X[k]
		newB := d.B + wk*dx
		if newB < d.Lo || newB > d.Hi {
			continue
		}
		d.X[k] = target
		d.B = newB
		if target == 1 {
			d.setStatus(k, 1)
		} else {
			d.setStatus(k, -1)
		}
	}
}

// stagePairNonAdjacent is stage 3: for each pair of free, non-adjacent
// indices, choose a coordinated update that preserves a.x exactly
// (Δx_j = s/a_j, Δx_i = -s/a_i) and drives at least one coordinate to a
// bound, keeping whichever sign of s reduces cost more.
func stagePairNonAdjacent(g *cutgraph.Graph, d *Delta) {
	adjacent := make(map[[2]int]bool, g.Nz)
	for k := 0; k < g.N; k++ {
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			j := g.I[pos]
			adjacent[[2]int{k, j}] = true
		}
	}

	free := append([]int(nil), d.FreeList...)
	used := make(map[int]bool, len(free))
	for idx := 0; idx < len(free); idx++ {
		i := free[idx]
		if used[i] || d.Status[i] != 0 {
			continue
		}
		for jdx := idx + 1; jdx < len(free); jdx++ {
			j := free[jdx]
			if used[j] || d.Status[j] != 0 {
				continue
			}
			if adjacent[[2]int{i, j}] {
				continue
			}
			if g.W[i] == 0 || g.W[j] == 0 {
				continue
			}
			if pairSlide(g, d, i, j) {
				used[i], used[j] = true, true
			}
			break
		}
	}
}

// stagePairAdjacent is stage 4: same two-variable move as stage 3, but
// over remaining free pairs that are mutually adjacent, picking the
// direction whose directional derivative is non-positive.
func stagePairAdjacent(g *cutgraph.Graph, d *Delta) {
	free := append([]int(nil), d.FreeList...)
	used := make(map[int]bool, len(free))
	for idx := 0; idx < len(free); idx++ {
		i := free[idx]
		if used[i] || d.Status[i] != 0 {
			continue
		}
		for jdx := idx + 1; jdx < len(free); jdx++ {
			j := free[jdx]
			if used[j] || d.Status[j] != 0 {
				continue
			}
			if g.W[i] == 0 || g.W[j] == 0 {
				continue
			}
			if pairSlide(g, d, i, j) {
				used[i], used[j] = true, true
			}
			break
		}
	}
}

// pairSlide applies Δx_j = s/a_j, Δx_i = -s/a_i for the sign of s that
// reduces the linearized cost most, clipped so neither coordinate
// leaves [0,1]; returns whether a move was applied.
func pairSlide(g *cutgraph.Graph, d *Delta, i, j int) bool {
	ai, aj := g.W[i], g.W[j]

	maxSPos := math.Min((1-d.X[j])*aj, d.X[i]*ai)
	maxSNeg := math.Min(d.X[j]*aj, (1-d.X[i])*ai)

	costAt := func(s float64) float64 {
		dxj := s / aj
		dxi := -s / ai
		return d.Gradient[j]*dxj + d.Gradient[i]*dxi
	}

	best, bestCost := 0.0, 0.0
	if maxSPos > 0 {
		if c := costAt(maxSPos); c < bestCost {
			best, bestCost = maxSPos, c
		}
	}
	if maxSNeg > 0 {
		if c := costAt(-maxSNeg); c < bestCost {
			best, bestCost = -maxSNeg, c
		}
	}
	if best == 0 {
		return false
	}

	d.X[j] += best / aj
	d.X[i] -= best / ai
	if d.X[j] >= 1 {
		d.X[j] = 1
		d.setStatus(j, 1)
	} else if d.X[j] <= 0 {
		d.X[j] = 0
		d.setStatus(j, -1)
	}
	if d.X[i] >= 1 {
		d.X[i] = 1
		d.setStatus(i, 1)
	} else if d.X[i] <= 0 {
		d.X[i] = 0
		d.setStatus(i, -1)
	}

	return true
}

// stageSingleFree is stage 5: if exactly one free index remains,
// optimize the scalar subproblem in that coordinate directly against
// the knapsack bounds.
func stageSingleFree(g *cutgraph.Graph, d *Delta) {
	if len(d.FreeList) != 1 {
		return
	}
	k := d.FreeList[0]
	wk := g.W[k]
	if wk == 0 {
		return
	}
	target := 1.0
	if d.Gradient[k] > 0 {
		target = 0.0
	}
	dx := target - d.X[k]
	newB := d.B + wk*dx
	if newB > d.Hi {
		dx = (d.Hi - d.B) / wk
	} else if newB < d.Lo {
		dx = (d.Lo - d.B) / wk
	}
	d.X[k] += dx
	d.B += wk * dx
	if d.X[k] >= 1 {
		d.X[k] = 1
		d.setStatus(k, 1)
	} else if d.X[k] <= 0 {
		d.X[k] = 0
		d.setStatus(k, -1)
	}
}
