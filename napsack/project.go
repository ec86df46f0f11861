package napsack

// clamp restricts v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

// Project solves min ||x-y||_2 s.t. 0<=x<=1, lo<=a.x<=hi (a_i >= 0),
// returning the feasible x and the shift lambda such that
// x = clamp(y - lambda*a, 0, 1). lambda0 is a warm-start estimate
// (e.g. the lambda returned by a previous call on a nearby y, per
// spec.md §4.9 phase B step 2); correctness does not depend on it, only
// the number of breakpoints walked before converging.
//
// If the box at lambda0 already satisfies lo<=a.x<=hi, lambda0 is
// returned unchanged and x = clamp(y-lambda0*a, 0,1) (spec.md §4.8 edge
// case: "If initial b already satisfies lo<=b<=hi, lambda is returned
// unchanged").
//
// Complexity: O((n+k) log n) where k <= 2n is the number of breakpoints
// actually walked.
func Project(y, a []float64, lo, hi, lambda0 float64) (x []float64, lambda float64) {
	n := len(y)
	x = make([]float64, n)
	for k := 0; k < n; k++ {
		x[k] = clamp01(y[k] - lambda0*a[k])
	}
	b := dot(a, x)
	if b >= lo && b <= hi {
		return x, lambda0
	}
	if b < lo {
		return napUp(y, a, x, lambda0, lo)
	}

	return napDown(y, a, x, lambda0, hi)
}

func dot(a, x []float64) float64 {
	var s float64
	for k := range a {
		s += a[k] * x[k]
	}

	return s
}

// napDown handles b(lambda0) > hi: lambda increases, b decreases toward
// hi. Interior coordinates leave to 0 as lambda grows past y_i/a_i;
// coordinates currently pinned at 1 leave to the interior as lambda
// grows past (y_i-1)/a_i. A minHeap advances lambda to the nearest
// upcoming crossing first.
//
// Grounded on original_source/Include/Mongoose_QPNapDown.hpp.
func napDown(y, a, x []float64, lambda0, target float64) ([]float64, float64) {
	n := len(y)
	var asum, a2sum float64
	h := &minHeap{}
	for k := 0; k < n; k++ {
		if a[k] == 0 {
			continue
		}
		switch {
		case x[k] <= 0:
			// Already at 0; stays at 0 as lambda grows further. No contribution.
		case x[k] >= 1:
			asum += a[k] // constant contribution while pinned at 1
			cross := (y[k] - 1) / a[k]
			if cross >= lambda0 {
				h.Push(breakpoint{lambda: cross, idx: k, entering: true})
			}
		default:
			asum += a[k] * y[k]
			a2sum += a[k] * a[k]
			cross := y[k] / a[k]
			if cross >= lambda0 {
				h.Push(breakpoint{lambda: cross, idx: k, entering: false})
			}
		}
	}

	lam := lambda0
	for {
		bp, ok := h.Pop()
		if !ok {
			break
		}
		bAtBp := asum - bp.lambda*a2sum
		if bAtBp <= target {
			break
		}
		lam = bp.lambda
		k := bp.idx
		if bp.entering {
			// k was pinned at 1, now enters the interior; it leaves to 0
			// further on, at y_k/a_k.
			asum += a[k]*y[k] - a[k]
			a2sum += a[k] * a[k]
			h.Push(breakpoint{lambda: y[k] / a[k], idx: k, entering: false})
		} else {
			// k was interior, now pinned at 0.
			asum -= a[k] * y[k]
			a2sum -= a[k] * a[k]
		}
	}

	if a2sum > 0 {
		lam = (asum - target) / a2sum
	}
	for k := 0; k < n; k++ {
		x[k] = clamp01(y[k] - lam*a[k])
	}

	return x, lam
}

// napUp handles b(lambda0) < lo: lambda decreases, b increases toward
// lo. Interior coordinates leave to 1 as lambda falls below
// (y_i-1)/a_i; coordinates currently pinned at 0 leave to the interior
// as lambda falls below y_i/a_i. A maxHeap retreats lambda to the
// nearest upcoming crossing first.
//
// Grounded on original_source/Include/Mongoose_QPNapUp.hpp.
func napUp(y, a, x []float64, lambda0, target float64) ([]float64, float64) {
	n := len(y)
	var asum, a2sum float64
	h := &maxHeap{}
	for k := 0; k < n; k++ {
		if a[k] == 0 {
			continue
		}
		switch {
		case x[k] >= 1:
			// Already at 1; stays at 1 as lambda falls further. No contribution.
			asum += a[k]
		case x[k] <= 0:
			cross := y[k] / a[k]
			if cross <= lambda0 {
				h.Push(breakpoint{lambda: cross, idx: k, entering: true})
			}
		default:
			asum += a[k] * y[k]
			a2sum += a[k] * a[k]
			cross := (y[k] - 1) / a[k]
			if cross <= lambda0 {
				h.Push(breakpoint{lambda: cross, idx: k, entering: false})
			}
		}
	}

	lam := lambda0
	for {
		bp, ok := h.Pop()
		if !ok {
			break
		}
		bAtBp := asum - bp.lambda*a2sum
		if bAtBp >= target {
			break
		}
		lam = bp.lambda
		k := bp.idx
		if bp.entering {
			// k was pinned at 0, now enters the interior; it leaves to 1
			// further on, at (y_k-1)/a_k.
			asum += a[k] * y[k]
			a2sum += a[k] * a[k]
			h.Push(breakpoint{lambda: (y[k] - 1) / a[k], idx: k, entering: false})
		} else {
			// k was interior, now pinned at 1.
			asum += a[k] - a[k]*y[k]
			a2sum -= a[k] * a[k]
		}
	}

	if a2sum > 0 {
		lam = (asum - target) / a2sum
	}
	for k := 0; k < n; k++ {
		x[k] = clamp01(y[k] - lam*a[k])
	}

	return x, lam
}
