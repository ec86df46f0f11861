package napsack

// breakpoint is one candidate lambda value at which some coordinate's
// x_i(lambda) crosses the 0 or 1 boundary, carrying enough state
// (which coordinate, and which way it is crossing) to update the
// running linear-piece coefficients when it is popped.
type breakpoint struct {
	lambda float64
	idx    int
	// entering is true when idx is transitioning INTO the interior
	// (from 0, for a descending/MaxHeap walk; from 1, for an
	// ascending/MinHeap walk) and false when it is leaving the interior.
	entering bool
}

// minHeap is a small array-based binary min-heap of breakpoints ordered
// by ascending lambda, used to advance lambda upward one crossing at a
// time. It carries no inverse index: breakpoints are disposable and
// only ever removed via Pop, unlike bheap's vertex-identity heaps.
type minHeap struct{ data []breakpoint }

func (h *minHeap) Len() int { return len(h.data) }

func (h *minHeap) Push(bp breakpoint) {
	h.data = append(h.data, bp)
	h.siftUp(len(h.data) - 1)
}

func (h *minHeap) Pop() (breakpoint, bool) {
	if len(h.data) == 0 {
		return breakpoint{}, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.siftDown(0)
	}

	return top, true
}

func (h *minHeap) siftUp(pos int) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if h.data[parent].lambda <= h.data[pos].lambda {
			break
		}
		h.data[parent], h.data[pos] = h.data[pos], h.data[parent]
		pos = parent
	}
}

func (h *minHeap) siftDown(pos int) {
	n := len(h.data)
	for {
		left, right := 2*pos+1, 2*pos+2
		smallest := pos
		if left < n && h.data[left].lambda < h.data[smallest].lambda {
			smallest = left
		}
		if right < n && h.data[right].lambda < h.data[smallest].lambda {
			smallest = right
		}
		if smallest == pos {
			break
		}
		h.data[pos], h.data[smallest] = h.data[smallest], h.data[pos]
		pos = smallest
	}
}

// maxHeap is the mirror-image structure ordered by descending lambda,
// used to retreat lambda downward one crossing at a time.
type maxHeap struct{ data []breakpoint }

func (h *maxHeap) Len() int { return len(h.data) }

func (h *maxHeap) Push(bp breakpoint) {
	h.data = append(h.data, bp)
	h.siftUp(len(h.data) - 1)
}

func (h *maxHeap) Pop() (breakpoint, bool) {
	if len(h.data) == 0 {
		return breakpoint{}, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.siftDown(0)
	}

	return top, true
}

func (h *maxHeap) siftUp(pos int) {
	for pos > 0 {
		parent := (pos - 1) / 2
		if h.data[parent].lambda >= h.data[pos].lambda {
			break
		}
		h.data[parent], h.data[pos] = h.data[pos], h.data[parent]
		pos = parent
	}
}

func (h *maxHeap) siftDown(pos int) {
	n := len(h.data)
	for {
		left, right := 2*pos+1, 2*pos+2
		largest := pos
		if left < n && h.data[left].lambda > h.data[largest].lambda {
			largest = left
		}
		if right < n && h.data[right].lambda > h.data[largest].lambda {
			largest = right
		}
		if largest == pos {
			break
		}
		h.data[pos], h.data[largest] = h.data[largest], h.data[pos]
		pos = largest
	}
}
