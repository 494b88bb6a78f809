package queue

// ShrinkMode controls how the queue releases over-allocated memory after
// elements are consumed.
type ShrinkMode int

const (
	// Opportunistic shrinks in 50% steps, mirroring the amortized-doubling
	// growth strategy of the allocator. This mode is the default.
	Opportunistic ShrinkMode = iota

	// Aggressive immediately reallocates to exactly fit after every
	// removal. Potentially inefficient but useful when memory is tight.
	Aggressive

	// Disabled turns auto-shrink off. Callers must invoke
	// ShrinkOpportunistic or ShrinkToFit themselves if necessary.
	Disabled
)

// String returns a human-readable representation of the shrink mode.
func (m ShrinkMode) String() string {
	switch m {
	case Opportunistic:
		return "Opportunistic"
	case Aggressive:
		return "Aggressive"
	case Disabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}

// shrinkFloor is the minimum live length before opportunistic shrinking
// kicks in; below it, reallocation churn outweighs the reclaimed bytes.
// A policy parameter, not a tuning result.
const shrinkFloor = 4

// ShrinkOpportunistic releases excess capacity if less than half of it is
// used or the allocation exceeds the limit. Otherwise a no-op.
func (q *Queue[T]) ShrinkOpportunistic() {
	halfCapacity := cap(q.items) / 2

	if len(q.items) > shrinkFloor && (len(q.items) <= halfCapacity || cap(q.items) > q.limit) {
		q.ShrinkToFit()
	}
}

// ShrinkToFit reallocates the backing storage to exactly fit the live
// elements.
func (q *Queue[T]) ShrinkToFit() {
	if cap(q.items) == len(q.items) {
		return
	}

	fitted := make([]T, len(q.items))
	copy(fitted, q.items)
	q.items = fitted

	q.stats.Shrink()
	if q.metrics != nil {
		q.metrics.recordShrink(len(q.items), q.limit)
	}
	if q.logger != nil {
		q.logger.Debug("shrunk backing storage",
			"length", len(q.items), "capacity", cap(q.items))
	}
}

// autoShrink performs the shrink action selected by the shrink mode.
// Invoked after every removal.
func (q *Queue[T]) autoShrink() {
	switch q.shrinkMode {
	case Opportunistic:
		q.ShrinkOpportunistic()
	case Aggressive:
		q.ShrinkToFit()
	case Disabled:
	}
}
