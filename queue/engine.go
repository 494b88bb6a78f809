package queue

// engine is the internal transfer capability behind every bulk operation:
// front shift, bulk copy-out and in-place tail reservation.
//
// Two interchangeable implementations exist. The safe engine builds on
// high-level slice primitives only; the raw engine moves elements through
// reconstructed pointer views and releases vacated slots by explicit
// zeroing. Both must produce identical externally observable results for
// every input; they may differ only in performance. The package default
// is selected at build time (see engine_default.go), and the conformance
// tests exercise both regardless of the default.
//
// Every implementation maintains one invariant the rest of the package
// relies on: slots beyond the live region are always released
// (zero-valued), so no logically removed element is reachable twice.
type engine[T any] interface {
	// shiftOut moves the first n live elements into dst[:n], left-shifts
	// the remainder to index 0 and releases the vacated tail slots.
	shiftOut(items []T, dst []T, n int) []T

	// shift discards the first n live elements, left-shifting the
	// remainder and releasing the vacated tail slots.
	shift(items []T, n int) []T

	// extend grows the live region by n zero-valued slots, reallocating
	// through the allocator's amortized growth if needed.
	extend(items []T, n int) []T

	// truncate releases the slots beyond index k and shortens the live
	// region to k.
	truncate(items []T, k int) []T

	// name identifies the engine in test output.
	name() string
}
