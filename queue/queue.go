package queue

import (
	"log/slog"
	"math"

	"github.com/KizzyCode/slice-queue/errors"
)

// Unbounded is the default length limit: effectively no limit at all.
const Unbounded = math.MaxInt

// Queue is a bounded, front-consuming append buffer. Live elements occupy
// items[0:len] of one flat, growable allocation; spare capacity sits at
// items[len:cap] and is always kept released (zero-valued).
//
// Queue performs no internal locking and is not safe for concurrent
// mutation without external synchronization.
type Queue[T any] struct {
	items      []T
	limit      int
	shrinkMode ShrinkMode
	engine     engine[T]
	stats      *Statistics
	metrics    *queueMetrics
	logger     *slog.Logger
}

// New creates a new empty Queue with an unbounded limit.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		limit:      Unbounded,
		shrinkMode: Opportunistic,
		engine:     defaultEngine[T](),
		stats:      NewStatistics(),
	}
}

// NewWithCapacity creates a Queue with preallocated capacity for n elements.
func NewWithCapacity[T any](n int) *Queue[T] {
	q := New[T]()
	q.items = make([]T, 0, n)
	return q
}

// NewWithLimit creates a Queue that never holds more than limit elements.
// A non-positive limit is a fault.
func NewWithLimit[T any](limit int) *Queue[T] {
	q := New[T]()
	q.SetLimit(limit)
	return q
}

// FromSlice creates a Queue holding a copy of src, with capacity fitting
// exactly.
func FromSlice[T any](src []T) *Queue[T] {
	q := New[T]()
	q.items = make([]T, len(src))
	copy(q.items, src)
	return q
}

// NewQueue creates a Queue configured through functional options.
// Returns an error if metrics registration fails when metrics are requested.
func NewQueue[T any](options ...Option[T]) (*Queue[T], error) {
	opts := applyOptions(options...)

	q := New[T]()
	q.shrinkMode = opts.shrinkMode
	q.logger = opts.logger
	if opts.prealloc > 0 {
		q.items = make([]T, 0, opts.prealloc)
	}
	if opts.limitSet {
		q.SetLimit(opts.limit)
	}

	if opts.metricsReg != nil && opts.metricsName != "" {
		metrics, err := newQueueMetrics(opts.metricsReg, opts.metricsName)
		if err != nil {
			return nil, errors.Wrap(err, "Queue", "NewQueue", "metrics registration")
		}
		q.metrics = metrics
	}

	return q, nil
}

// fault aborts the current operation with a contract-classified panic.
// Contract violations are caller bugs and are never reported as
// recoverable outcomes.
func fault(err error, operation, action string) {
	panic(errors.WrapContract(err, "Queue", operation, action))
}

// Len returns the number of live elements.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no live elements.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Capacity returns the currently allocated element slots.
func (q *Queue[T]) Capacity() int {
	return cap(q.items)
}

// Limit returns the maximum permitted length.
func (q *Queue[T]) Limit() int {
	return q.limit
}

// SetLimit sets a new length limit. The limit is only enforced during
// appends: lowering it below the current length is accepted silently and
// takes effect on the next push attempt, without truncation.
// A non-positive limit is a fault.
func (q *Queue[T]) SetLimit(limit int) {
	if limit <= 0 {
		fault(errors.ErrZeroLimit, "SetLimit", "limit validation")
	}
	q.limit = limit
}

// SetShrinkMode sets how the queue releases over-allocated memory after
// elements are consumed.
func (q *Queue[T]) SetShrinkMode(mode ShrinkMode) {
	q.shrinkMode = mode
}

// ShrinkMode returns the shrink mode currently in effect.
func (q *Queue[T]) ShrinkMode() ShrinkMode {
	return q.shrinkMode
}

// Stats returns queue statistics (always available for observability).
func (q *Queue[T]) Stats() *Statistics {
	return q.stats
}

// Remaining returns the amount of space left until the limit is reached.
func (q *Queue[T]) Remaining() int {
	if q.limit < len(q.items) {
		return 0
	}
	return q.limit - len(q.items)
}

// Reserved returns the number of elements that can be appended without
// reallocating.
func (q *Queue[T]) Reserved() int {
	return cap(q.items) - len(q.items)
}

// ReserveN grows the allocated capacity so that up to n more elements fit
// without reallocating. The reservation is clipped to the room the limit
// leaves above the current capacity; a capacity that already exceeds a
// lowered limit clips it to zero rather than shrinking. Returns the
// amount actually reserved and whether the full request was satisfied.
func (q *Queue[T]) ReserveN(n int) (int, bool) {
	if n < 0 {
		fault(errors.ErrNegativeCount, "ReserveN", "count validation")
	}

	toReserve := n
	if room := q.limit - cap(q.items); room < toReserve {
		toReserve = max(room, 0)
	}
	if free := cap(q.items) - len(q.items); free < toReserve {
		grown := make([]T, len(q.items), len(q.items)+toReserve)
		copy(grown, q.items)
		q.items = grown
	}

	return toReserve, toReserve == n
}

// Peek returns the front element without consuming it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// PeekN returns a view of up to n front elements without consuming them.
// The flag is true iff n elements were available. The view aliases the
// queue's storage and is invalidated by the next mutation.
func (q *Queue[T]) PeekN(n int) ([]T, bool) {
	if n < 0 {
		fault(errors.ErrNegativeCount, "PeekN", "count validation")
	}
	visible := min(len(q.items), n)
	return q.items[:visible:visible], visible == n
}

// Pop removes and returns the front element. Fails on an empty queue.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	var front [1]T
	q.items = q.engine.shiftOut(q.items, front[:], 1)
	q.afterRemoval(1, 0)
	return front[0], true
}

// PopN removes up to n front elements in order. The flag is true iff
// exactly n elements were available; otherwise the returned slice holds
// however many were.
func (q *Queue[T]) PopN(n int) ([]T, bool) {
	if n < 0 {
		fault(errors.ErrNegativeCount, "PopN", "count validation")
	}

	taken := min(len(q.items), n)
	popped := make([]T, taken)
	if taken > 0 {
		q.items = q.engine.shiftOut(q.items, popped, taken)
	}
	q.afterRemoval(taken, 0)
	return popped, taken == n
}

// PopInto removes min(Len(), len(dst)) front elements into dst starting at
// dst[0], overwriting (and thereby releasing) the prior occupants of the
// filled portion. Returns the count moved and whether dst was filled
// completely.
func (q *Queue[T]) PopInto(dst []T) (int, bool) {
	taken := min(len(q.items), len(dst))
	if taken > 0 {
		q.items = q.engine.shiftOut(q.items, dst[:taken], taken)
	}
	q.afterRemoval(taken, 0)
	return taken, taken == len(dst)
}

// DiscardN releases up to n front elements without returning them.
// Returns the count discarded and whether exactly n were.
func (q *Queue[T]) DiscardN(n int) (int, bool) {
	if n < 0 {
		fault(errors.ErrNegativeCount, "DiscardN", "count validation")
	}

	dropped := min(len(q.items), n)
	if dropped > 0 {
		q.items = q.engine.shift(q.items, dropped)
	}
	q.afterRemoval(0, dropped)
	return dropped, dropped == n
}

// Push appends one element at the tail. The element is rejected when no
// limit headroom remains; ownership then stays with the caller.
func (q *Queue[T]) Push(element T) bool {
	if q.Remaining() < 1 {
		q.rejected(1)
		return false
	}

	q.items = append(q.items, element)
	q.afterAppend(1)
	return true
}

// PushN appends as many of the given ordered elements as fit under the
// limit and returns the rejected suffix, nil when everything was accepted.
func (q *Queue[T]) PushN(elements []T) []T {
	accepted := min(q.Remaining(), len(elements))
	q.items = append(q.items, elements[:accepted]...)
	q.afterAppend(accepted)

	if accepted == len(elements) {
		return nil
	}
	q.rejected(len(elements) - accepted)
	return elements[accepted:]
}

// PushFrom copies and appends the leading elements of src that fit under
// the limit. Returns the count appended and whether src was accepted
// completely.
func (q *Queue[T]) PushFrom(src []T) (int, bool) {
	appended := min(q.Remaining(), len(src))
	q.items = append(q.items, src[:appended]...)
	q.afterAppend(appended)

	if appended != len(src) {
		q.rejected(len(src) - appended)
	}
	return appended, appended == len(src)
}

// PushInPlace reserves n zero-valued slots at the tail and invokes fill
// with exclusive access to exactly those slots. fill reports how many of
// them it populated; unused reserved slots are released again. On a fill
// error the length is unchanged and all n slots are released.
//
// A reservation that would exceed the limit is a fault, as is a fill
// callback claiming more slots than it was given.
func (q *Queue[T]) PushInPlace(n int, fill func(slots []T) (int, error)) (int, error) {
	if n < 0 {
		fault(errors.ErrNegativeCount, "PushInPlace", "count validation")
	}
	if n > q.limit-len(q.items) {
		fault(errors.ErrReserveOverLimit, "PushInPlace", "reservation check")
	}

	oldLen := len(q.items)
	q.items = q.engine.extend(q.items, n)

	filled, err := fill(q.items[oldLen:])
	if err != nil {
		q.items = q.engine.truncate(q.items, oldLen)
		q.autoShrink()
		return 0, err
	}
	if filled > n {
		fault(errors.ErrFillOverclaim, "PushInPlace", "fill result validation")
	}
	if filled < 0 {
		fault(errors.ErrNegativeCount, "PushInPlace", "fill result validation")
	}

	q.items = q.engine.truncate(q.items, oldLen+filled)
	q.afterAppend(filled)
	q.autoShrink()
	return filled, nil
}

// afterAppend records a successful append of n elements.
func (q *Queue[T]) afterAppend(n int) {
	q.stats.Push(int64(n))
	q.stats.UpdateLength(int64(len(q.items)))
	if q.metrics != nil {
		q.metrics.recordAppend(n, len(q.items), q.limit)
	}
}

// afterRemoval records a removal and runs the configured auto-shrink.
func (q *Queue[T]) afterRemoval(popped, discarded int) {
	q.stats.Pop(int64(popped))
	q.stats.Discard(int64(discarded))
	q.stats.UpdateLength(int64(len(q.items)))
	if q.metrics != nil {
		q.metrics.recordRemoval(popped, discarded, len(q.items), q.limit)
	}
	q.autoShrink()
}

// rejected records elements clipped away by the limit guard.
func (q *Queue[T]) rejected(n int) {
	q.stats.Reject(int64(n))
	if q.metrics != nil {
		q.metrics.recordReject(n)
	}
	if q.logger != nil {
		q.logger.Debug("push clipped by limit",
			"rejected", n, "limit", q.limit, "length", len(q.items))
	}
}
