// Package slicequeue provides a bounded, front-consuming append buffer:
// a contiguous growable sequence optimized for bulk appends at the tail
// and bulk removals from the head.
//
// # Philosophy
//
// slice-queue is a staging buffer for pipelines that accumulate data in
// large chunks (incoming bytes, decoded frames) and consume it in
// variable-sized chunks (parsed records). It deliberately keeps live
// elements left-aligned in one flat allocation instead of using a
// wraparound ring layout: consumers get contiguous, cache-friendly views
// of the live region at the cost of an O(remainder) shift on every
// front removal.
//
// The library is split into focused packages:
//
//   - queue: the core Queue[T] (capacity/shrink heuristics, limit
//     enforcement, dual transfer engines, byte stream adapter)
//   - errors: error classification (shortfall vs. contract violation)
//   - metric: Prometheus registry wrapper and optional HTTP exporter
//   - retry: exponential backoff for callers reacting to shortfalls
//
// # What slice-queue is not
//
// Queue[T] is not a concurrent data structure. It performs no internal
// locking and is not safe for mutation from multiple goroutines without
// external synchronization; this keeps single-threaded use free of
// overhead. It is also not a general-purpose collection: it specializes
// in "append many, consume many from the front".
//
// See the queue package documentation for the full API.
package slicequeue
