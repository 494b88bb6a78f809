package queue

import (
	"fmt"

	"github.com/KizzyCode/slice-queue/errors"
)

// At returns the element at index i, counted from the front. An index
// outside [0, Len()) is a fault.
func (q *Queue[T]) At(i int) T {
	if i < 0 || i >= len(q.items) {
		fault(fmt.Errorf("%w: index %d, length %d", errors.ErrRangeOutOfBounds, i, len(q.items)),
			"At", "index validation")
	}
	return q.items[i]
}

// SetAt replaces the element at index i. An index outside [0, Len()) is a
// fault.
func (q *Queue[T]) SetAt(i int, element T) {
	if i < 0 || i >= len(q.items) {
		fault(fmt.Errorf("%w: index %d, length %d", errors.ErrRangeOutOfBounds, i, len(q.items)),
			"SetAt", "index validation")
	}
	q.items[i] = element
}

// Slice returns a view of the live elements in the half-open range [a, b).
// The view aliases the queue's storage and is invalidated by the next
// mutation. An inverted range or bounds outside [0, Len()] are faults.
func (q *Queue[T]) Slice(a, b int) []T {
	q.checkRange(a, b, "Slice")
	return q.items[a:b:b]
}

// SliceFrom returns a view of the live elements from index a to the end.
func (q *Queue[T]) SliceFrom(a int) []T {
	return q.Slice(a, len(q.items))
}

// SliceTo returns a view of the first b live elements.
func (q *Queue[T]) SliceTo(b int) []T {
	return q.Slice(0, b)
}

// All returns a view of all live elements.
func (q *Queue[T]) All() []T {
	return q.Slice(0, len(q.items))
}

// SliceInclusive returns a view of the live elements in the closed range
// [a, b]. A negative upper bound is a fault in its own right: it cannot
// express an empty range, unlike the half-open form.
func (q *Queue[T]) SliceInclusive(a, b int) []T {
	if b < 0 {
		fault(fmt.Errorf("%w: inclusive upper bound %d", errors.ErrRangeOutOfBounds, b),
			"SliceInclusive", "bound validation")
	}
	return q.Slice(a, b+1)
}

// checkRange faults unless [a, b) is a well-formed range over the live
// elements.
func (q *Queue[T]) checkRange(a, b int, operation string) {
	if a > b {
		fault(fmt.Errorf("%w: [%d, %d)", errors.ErrRangeInverted, a, b),
			operation, "range validation")
	}
	if a < 0 || b > len(q.items) {
		fault(fmt.Errorf("%w: [%d, %d), length %d", errors.ErrRangeOutOfBounds, a, b, len(q.items)),
			operation, "range validation")
	}
}
