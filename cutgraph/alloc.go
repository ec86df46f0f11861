package cutgraph

// Allocator is the single allocation facade required by spec.md §5/§9:
// "All allocations happen through a single allocation facade; every
// allocation is checked and any failure triggers cooperative unwinding."
//
// Real Go allocation cannot fail short of the runtime aborting the
// process, so Allocator models the failure path spec.md requires for
// OutOfMemory without fabricating a fake heap: Reserve is consulted
// before every slice allocation a Graph makes, and a caller-supplied
// Allocator (see FailingAllocator) can simulate exhaustion for tests of
// the unwind path.
type Allocator interface {
	// Reserve is called before allocating a slice of the given element
	// count. Returning a non-nil error aborts construction with
	// ErrOutOfMemory; the caller (package multilevel) unwinds the level
	// stack built so far.
	Reserve(elems int) error
}

// defaultAllocator never fails; it is the Allocator used when a caller
// passes nil to NewFromCSC.
type defaultAllocator struct{}

// Reserve always succeeds.
func (defaultAllocator) Reserve(elems int) error { return nil }

// DefaultAllocator returns the always-succeeding Allocator used when no
// explicit allocator is supplied.
func DefaultAllocator() Allocator { return defaultAllocator{} }

// FailingAllocator simulates allocation exhaustion after a fixed number
// of Reserve calls have succeeded, so the multilevel driver's unwind path
// (spec.md §5, §7) can be exercised deterministically in tests.
type FailingAllocator struct {
	// Budget is the number of Reserve calls that succeed before every
	// subsequent call returns ErrOutOfMemory.
	Budget int

	calls int
}

// Reserve succeeds until Budget calls have been made, then always fails.
func (f *FailingAllocator) Reserve(elems int) error {
	f.calls++
	if f.calls > f.Budget {
		return ErrOutOfMemory
	}

	return nil
}
