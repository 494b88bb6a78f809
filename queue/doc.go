// Package queue provides a bounded, front-consuming append queue backed by
// a single flat allocation, with built-in statistics tracking and optional
// Prometheus metrics integration.
//
// # Overview
//
// A Queue holds its live elements contiguously at the front of one growable
// slice. Appends go to the tail, consumption happens at the front, and
// every removal left-shifts the survivors back to index zero, so the live
// region is always addressable as a plain slice. An optional length limit
// clips appends instead of evicting, and a configurable shrink policy
// returns over-allocated memory after large drains.
//
// # Quick Start
//
// Basic queue usage:
//
//	q := queue.New[int]()
//	q.Push(42)
//	q.PushN([]int{1, 2, 3})
//
//	value, ok := q.Pop()
//	batch, complete := q.PopN(2)
//
// With a limit, preallocation and metrics:
//
//	q, err := queue.NewQueue[[]byte](
//		queue.WithLimit[[]byte](4096),
//		queue.WithPrealloc[[]byte](1024),
//		queue.WithMetrics[[]byte](registry, "ingest"),
//	)
//
// # Limit Semantics
//
// The limit caps the queue's length, never its contents after the fact:
//
//   - Push rejects the element when no headroom remains and returns false.
//   - PushN accepts the fitting prefix and returns the rejected suffix.
//   - Lowering the limit below the current length never truncates; the
//     queue is simply full until enough elements are consumed.
//   - ReserveN clips capacity reservations to the limit's headroom.
//
// Clipping is an expected, recoverable outcome and is reported through
// return values. Contract violations - negative counts, zero limits,
// malformed ranges, an in-place fill claiming more slots than it was
// given - panic with a classified error instead (see the errors package).
//
// # Shrink Policy
//
// Consumption can leave the backing allocation much larger than the live
// region. Three modes control reclamation:
//
//   - Opportunistic: shrink when at most half the capacity is live, or
//     when the allocation exceeds the limit (default)
//   - Aggressive: reallocate to exact fit after every removal
//   - Disabled: never shrink automatically
//
// ShrinkToFit and ShrinkOpportunistic are also available for manual use.
//
// # Observability
//
// Statistics are always collected via atomic counters and available
// through q.Stats(); they count elements, not operations. Prometheus
// metrics are optional and enabled with WithMetrics(), exporting push,
// pop, discard, reject and shrink totals plus length and utilization
// gauges labeled per queue instance.
//
// # Byte Streams
//
// For byte queues, Stream adapts the queue to io.Reader and io.Writer.
// Both directions are total: a read from an empty queue returns zero
// bytes and a clipped write reports only the accepted count, with a nil
// error in every case.
//
//	q := queue.NewWithLimit[byte](65536)
//	s := queue.NewStream(q)
//	n, _ := s.Write(payload)
//
// # Thread Safety
//
// Queue performs no internal locking. Statistics are safe to read
// concurrently, but mutating operations require external synchronization.
//
// # Performance Characteristics
//
// Operations:
//   - Push: amortized O(1)
//   - Pop/PopN/DiscardN: O(remaining) due to the front left-shift
//   - Peek/PeekN/At/Slice: O(1) views, no copying
//
// The left-shift keeps the live region contiguous, trading removal cost
// for zero-copy random access and slice views over the queue contents.
package queue
