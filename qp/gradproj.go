package qp

import (
	"math"

	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/napsack"
	"gonum.org/v1/gonum/floats"
)

// applyAD computes ((A+D)v) restricted to d's current FreeSet: for each
// free k, D[k]*v[k] plus the sum of w(k,j)*v[j] over free neighbors j;
// zero at every non-free index.
func applyAD(g *cutgraph.Graph, d *Delta, v []float64) []float64 {
	out := make([]float64, g.N)
	for _, k := range d.FreeList {
		s := d.D[k] * v[k]
		for pos := g.P[k]; pos < g.P[k+1]; pos++ {
			j := g.I[pos]
			if d.Status[j] == 0 {
				s += g.X[pos] * v[j]
			}
		}
		out[k] = s
	}

	return out
}

// reclassify updates Status/FreeList for every index whose position
// relative to [0,1] changed after an update to x.
func reclassify(d *Delta) {
	for k := range d.X {
		switch {
		case d.X[k] >= 1:
			d.setStatus(k, 1)
		case d.X[k] <= 0:
			d.setStatus(k, -1)
		default:
			d.setStatus(k, 0)
		}
	}
}

// GradProj runs Phase B (spec.md §4.9): gradient-projected descent on
// the quadratic, warm-starting the napsack multiplier across iterations.
//
// Complexity: O(iterationLimit * (n + nz) log n).
func GradProj(g *cutgraph.Graph, d *Delta, iterationLimit int, tolerance float64) {
	a := g.W
	for iter := 0; iter < iterationLimit; iter++ {
		y := make([]float64, g.N)
		for k := range y {
			y[k] = d.X[k] - d.Gradient[k]
		}
		projected, lambda := napsack.Project(y, a, d.Lo, d.Hi, d.Lambda)
		d.Lambda = lambda

		errMax := 0.0
		for k := range projected {
			if e := math.Abs(projected[k] - d.X[k]); e > errMax {
				errMax = e
			}
		}
		if errMax <= tolerance {
			return
		}

		gradF := make([]float64, g.N)
		for _, k := range d.FreeList {
			gradF[k] = d.Gradient[k]
		}
		dgrad := applyAD(g, d, gradF)
		for k := range dgrad {
			dgrad[k] = -dgrad[k]
		}

		denom := floats.Dot(gradF, applyAD(g, d, gradF))
		st := 1.0
		if denom > 0 {
			st = math.Max(floats.Dot(gradF, gradF)/denom, 0.001)
		}

		y2 := make([]float64, g.N)
		for k := range y2 {
			y2[k] = d.X[k] - st*d.Gradient[k]
		}
		projected2, lambda2 := napsack.Project(y2, a, d.Lo, d.Hi, d.Lambda)
		d.Lambda = lambda2

		delta := make([]float64, g.N)
		floats.SubTo(delta, projected2, d.X)

		if floats.Dot(d.Gradient, delta) >= 0 {
			return
		}

		s := floats.Dot(d.Gradient, delta)
		adDelta := applyAD(g, d, delta)
		t := -floats.Dot(delta, adDelta)

		if s+t <= 0 {
			copy(d.X, projected2)
			reclassify(d)
			floats.Add(d.Gradient, dgrad)
		} else {
			alpha := -s / t
			floats.AddScaled(d.X, alpha, delta)
			reclassify(d)
			floats.AddScaled(d.Gradient, alpha, dgrad)
		}

		d.B = floats.Dot(a, d.X)
	}
}
