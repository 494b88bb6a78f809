package queue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/KizzyCode/slice-queue/errors"
	"github.com/KizzyCode/slice-queue/metric"
)

// enginesFor returns both transfer engines so tests can run every scenario
// against each of them regardless of the build-time default.
func enginesFor[T any]() []engine[T] {
	return []engine[T]{safeEngine[T]{}, rawEngine[T]{}}
}

// requireContractFault asserts that fn panics with a contract-classified error.
func requireContractFault(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract fault")
		err, ok := r.(error)
		require.True(t, ok, "fault payload must be an error, got %T", r)
		require.True(t, cerrors.IsContract(err), "fault must be contract-classified: %v", err)
	}()
	fn()
}

func TestQueueInitialState(t *testing.T) {
	q := New[int]()

	assert.Equal(t, 0, q.Len())
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Capacity())
	assert.Equal(t, Unbounded, q.Limit())
	assert.Equal(t, Opportunistic, q.ShrinkMode())
	assert.NotNil(t, q.Stats())
}

func TestQueueBasicOperations(t *testing.T) {
	for _, eng := range enginesFor[string]() {
		t.Run(eng.name(), func(t *testing.T) {
			q := New[string]()
			q.engine = eng

			require.True(t, q.Push("first"))
			require.True(t, q.Push("second"))
			require.True(t, q.Push("third"))
			require.Equal(t, 3, q.Len())

			// Peek must not consume
			value, ok := q.Peek()
			require.True(t, ok)
			require.Equal(t, "first", value)
			require.Equal(t, 3, q.Len())

			value, ok = q.Pop()
			require.True(t, ok)
			require.Equal(t, "first", value)
			require.Equal(t, 2, q.Len())

			batch, complete := q.PopN(2)
			require.True(t, complete)
			require.Equal(t, []string{"second", "third"}, batch)
			require.True(t, q.IsEmpty())
		})
	}
}

// Round-trip: a pushed sequence pops back in original order.
func TestQueueRoundTrip(t *testing.T) {
	for _, eng := range enginesFor[int]() {
		t.Run(eng.name(), func(t *testing.T) {
			q := New[int]()
			q.engine = eng

			input := make([]int, 100)
			for i := range input {
				input[i] = i * 7
			}
			require.Nil(t, q.PushN(input))

			output, complete := q.PopN(len(input))
			require.True(t, complete)
			require.Equal(t, input, output)
		})
	}
}

// Partial consumption leaves the suffix left-aligned at index 0.
func TestQueueOrderUnderPartialConsumption(t *testing.T) {
	for _, eng := range enginesFor[int]() {
		t.Run(eng.name(), func(t *testing.T) {
			q := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
			q.engine = eng

			_, complete := q.PopN(4)
			require.True(t, complete)
			require.Equal(t, []int{4, 5, 6, 7, 8, 9}, q.All())
			require.Equal(t, 4, q.At(0))
		})
	}
}

func TestQueueLimitScenario(t *testing.T) {
	for _, eng := range enginesFor[byte]() {
		t.Run(eng.name(), func(t *testing.T) {
			q := NewWithLimit[byte](9)
			q.engine = eng

			require.Nil(t, q.PushN([]byte("Testolope")))
			require.Equal(t, 9, q.Len())
			require.Equal(t, 0, q.Remaining())

			// No headroom left: everything is rejected
			rejected := q.PushN([]byte("!!"))
			require.Equal(t, []byte("!!"), rejected)
			require.Equal(t, 9, q.Len())

			// Lowering the limit below the length truncates nothing
			q.SetLimit(4)
			require.Equal(t, 9, q.Len())
			require.Equal(t, 0, q.Remaining())

			dropped, complete := q.DiscardN(8)
			require.True(t, complete)
			require.Equal(t, 8, dropped)
			require.Equal(t, []byte("e"), q.All())
			require.Equal(t, 3, q.Remaining())

			rejected = q.PushN([]byte("!!!XXX"))
			require.Equal(t, []byte("XXX"), rejected)
			require.Equal(t, []byte("e!!!"), q.All())
			require.Equal(t, 0, q.Remaining())
		})
	}
}

func TestQueuePopEmpty(t *testing.T) {
	q := New[int]()

	_, ok := q.Pop()
	require.False(t, ok)

	require.True(t, q.Push(42))
	value, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 42, value)

	_, ok = q.Pop()
	require.False(t, ok)
}

func TestQueuePeekN(t *testing.T) {
	q := FromSlice([]int{1, 2, 3})

	view, complete := q.PeekN(2)
	require.True(t, complete)
	require.Equal(t, []int{1, 2}, view)
	require.Equal(t, 3, q.Len())

	view, complete = q.PeekN(5)
	require.False(t, complete)
	require.Equal(t, []int{1, 2, 3}, view)

	requireContractFault(t, func() { q.PeekN(-1) })
}

func TestQueuePopNShortfall(t *testing.T) {
	for _, eng := range enginesFor[int]() {
		t.Run(eng.name(), func(t *testing.T) {
			q := FromSlice([]int{1, 2})
			q.engine = eng

			batch, complete := q.PopN(5)
			require.False(t, complete)
			require.Equal(t, []int{1, 2}, batch)
			require.True(t, q.IsEmpty())
		})
	}
}

func TestQueuePopInto(t *testing.T) {
	for _, eng := range enginesFor[int]() {
		t.Run(eng.name(), func(t *testing.T) {
			q := FromSlice([]int{1, 2, 3, 4})
			q.engine = eng

			dst := make([]int, 3)
			n, filled := q.PopInto(dst)
			require.True(t, filled)
			require.Equal(t, 3, n)
			require.Equal(t, []int{1, 2, 3}, dst)
			require.Equal(t, []int{4}, q.All())

			n, filled = q.PopInto(dst)
			require.False(t, filled)
			require.Equal(t, 1, n)
			require.Equal(t, 4, dst[0])
			require.True(t, q.IsEmpty())
		})
	}
}

func TestQueueDiscardN(t *testing.T) {
	for _, eng := range enginesFor[int]() {
		t.Run(eng.name(), func(t *testing.T) {
			q := FromSlice([]int{1, 2, 3})
			q.engine = eng

			dropped, complete := q.DiscardN(2)
			require.True(t, complete)
			require.Equal(t, 2, dropped)
			require.Equal(t, []int{3}, q.All())

			dropped, complete = q.DiscardN(5)
			require.False(t, complete)
			require.Equal(t, 1, dropped)
			require.True(t, q.IsEmpty())

			requireContractFault(t, func() { q.DiscardN(-1) })
		})
	}
}

func TestQueuePushSingleRejected(t *testing.T) {
	q := NewWithLimit[int](1)

	require.True(t, q.Push(1))
	require.False(t, q.Push(2))
	require.Equal(t, []int{1}, q.All())
	require.Equal(t, int64(1), q.Stats().Rejects())
}

func TestQueuePushFrom(t *testing.T) {
	q := NewWithLimit[byte](4)

	n, complete := q.PushFrom([]byte("ab"))
	require.True(t, complete)
	require.Equal(t, 2, n)

	n, complete = q.PushFrom([]byte("cdef"))
	require.False(t, complete)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("abcd"), q.All())
}

func TestQueueStepwiseShrink(t *testing.T) {
	for _, eng := range enginesFor[int]() {
		t.Run(eng.name(), func(t *testing.T) {
			elements := make([]int, 14)
			for i := range elements {
				elements[i] = i
			}
			q := FromSlice(elements)
			q.engine = eng
			require.Equal(t, 14, q.Capacity())

			// 8 live of 14 allocated: more than half in use, no shrink
			_, complete := q.DiscardN(6)
			require.True(t, complete)
			require.Equal(t, 8, q.Len())
			require.Equal(t, 14, q.Capacity())

			// 7 live of 14 allocated: at the halfway mark, shrink to fit
			_, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, 7, q.Len())
			require.Equal(t, 7, q.Capacity())
			require.Equal(t, []int{7, 8, 9, 10, 11, 12, 13}, q.All())
		})
	}
}

func TestQueueShrinkFloor(t *testing.T) {
	q := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8})
	require.Equal(t, 8, q.Capacity())

	// Draining to 4 or fewer live elements never shrinks
	_, complete := q.DiscardN(5)
	require.True(t, complete)
	require.Equal(t, 3, q.Len())
	require.Equal(t, 8, q.Capacity())
}

func TestQueueShrinkModes(t *testing.T) {
	t.Run("Aggressive", func(t *testing.T) {
		q := FromSlice([]int{1, 2, 3, 4})
		q.SetShrinkMode(Aggressive)

		_, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, 3, q.Len())
		require.Equal(t, 3, q.Capacity())
	})

	t.Run("Disabled", func(t *testing.T) {
		elements := make([]int, 16)
		q := FromSlice(elements)
		q.SetShrinkMode(Disabled)

		_, complete := q.DiscardN(10)
		require.True(t, complete)
		require.Equal(t, 6, q.Len())
		require.Equal(t, 16, q.Capacity())

		q.ShrinkToFit()
		require.Equal(t, 6, q.Capacity())
	})
}

func TestShrinkModeString(t *testing.T) {
	assert.Equal(t, "Opportunistic", Opportunistic.String())
	assert.Equal(t, "Aggressive", Aggressive.String())
	assert.Equal(t, "Disabled", Disabled.String())
	assert.Equal(t, "Unknown", ShrinkMode(42).String())
}

func TestQueueReserveN(t *testing.T) {
	t.Run("unbounded", func(t *testing.T) {
		q := New[int]()

		reserved, complete := q.ReserveN(10)
		require.True(t, complete)
		require.Equal(t, 10, reserved)
		require.GreaterOrEqual(t, q.Capacity(), 10)
		require.Equal(t, 0, q.Len())
	})

	t.Run("clipped by limit", func(t *testing.T) {
		q := NewWithLimit[int](8)
		require.Nil(t, q.PushN([]int{1, 2, 3}))
		q.ShrinkToFit()

		// Only 5 slots of headroom above the current capacity of 3
		reserved, complete := q.ReserveN(10)
		require.False(t, complete)
		require.Equal(t, 5, reserved)
		require.Equal(t, 8, q.Capacity())
	})

	t.Run("capacity already sufficient", func(t *testing.T) {
		q := NewWithCapacity[int](42)

		reserved, complete := q.ReserveN(10)
		require.True(t, complete)
		require.Equal(t, 10, reserved)
		require.Equal(t, 42, q.Capacity())
	})

	t.Run("capacity above lowered limit", func(t *testing.T) {
		q := NewWithCapacity[int](16)
		q.SetLimit(8)

		// The allocation already exceeds the limit: nothing to reserve,
		// and nothing is shrunk either
		reserved, complete := q.ReserveN(4)
		require.False(t, complete)
		require.Equal(t, 0, reserved)
		require.Equal(t, 16, q.Capacity())
	})

	t.Run("negative count faults", func(t *testing.T) {
		q := New[int]()
		requireContractFault(t, func() { q.ReserveN(-1) })
	})
}

func TestQueuePushInPlace(t *testing.T) {
	for _, eng := range enginesFor[byte]() {
		t.Run(eng.name(), func(t *testing.T) {
			t.Run("full fill", func(t *testing.T) {
				q := New[byte]()
				q.engine = eng

				filled, err := q.PushInPlace(9, func(slots []byte) (int, error) {
					require.Len(t, slots, 9)
					return copy(slots, "Testolope"), nil
				})
				require.NoError(t, err)
				require.Equal(t, 9, filled)
				require.Equal(t, []byte("Testolope"), q.All())
			})

			t.Run("partial fill releases the rest", func(t *testing.T) {
				q := New[byte]()
				q.engine = eng

				filled, err := q.PushInPlace(9, func(slots []byte) (int, error) {
					return copy(slots, "abc"), nil
				})
				require.NoError(t, err)
				require.Equal(t, 3, filled)
				require.Equal(t, []byte("abc"), q.All())
			})

			t.Run("fill error leaves length unchanged", func(t *testing.T) {
				q := FromSlice([]byte("keep"))
				q.engine = eng

				filled, err := q.PushInPlace(9, func(slots []byte) (int, error) {
					copy(slots, "discarded")
					return 5, fmt.Errorf("source drained")
				})
				require.Error(t, err)
				require.Equal(t, 0, filled)
				require.Equal(t, []byte("keep"), q.All())
			})

			t.Run("reservation over limit faults", func(t *testing.T) {
				q := NewWithLimit[byte](4)
				q.engine = eng
				require.Nil(t, q.PushN([]byte("ab")))

				requireContractFault(t, func() {
					q.PushInPlace(3, func(slots []byte) (int, error) { return 0, nil })
				})
				require.Equal(t, []byte("ab"), q.All())
			})

			t.Run("overclaiming fill faults", func(t *testing.T) {
				q := New[byte]()
				q.engine = eng

				requireContractFault(t, func() {
					q.PushInPlace(2, func(slots []byte) (int, error) { return 3, nil })
				})
			})

			t.Run("negative counts fault", func(t *testing.T) {
				q := New[byte]()
				q.engine = eng

				requireContractFault(t, func() {
					q.PushInPlace(-1, func(slots []byte) (int, error) { return 0, nil })
				})
				requireContractFault(t, func() {
					q.PushInPlace(2, func(slots []byte) (int, error) { return -1, nil })
				})
			})
		})
	}
}

func TestQueueRangeAccess(t *testing.T) {
	q := FromSlice([]byte("Testolope"))

	assert.Equal(t, []byte("olo"), q.Slice(4, 7))
	assert.Equal(t, []byte("Testolope"), q.All())
	assert.Equal(t, []byte("olope"), q.SliceFrom(4))
	assert.Equal(t, []byte("Test"), q.SliceTo(4))
	assert.Equal(t, []byte("olo"), q.SliceInclusive(4, 6))
	assert.Empty(t, q.Slice(4, 4))

	assert.Equal(t, byte('T'), q.At(0))
	assert.Equal(t, byte('e'), q.At(8))

	q.SetAt(0, 'B')
	assert.Equal(t, byte('B'), q.At(0))

	requireContractFault(t, func() { q.Slice(9, 10) })
	requireContractFault(t, func() { q.Slice(7, 4) })
	requireContractFault(t, func() { q.Slice(-1, 2) })
	requireContractFault(t, func() { q.SliceInclusive(0, -1) })
	requireContractFault(t, func() { q.At(9) })
	requireContractFault(t, func() { q.At(-1) })
	requireContractFault(t, func() { q.SetAt(9, 'x') })
}

func TestQueueSetLimitValidation(t *testing.T) {
	q := New[int]()

	requireContractFault(t, func() { q.SetLimit(0) })
	requireContractFault(t, func() { q.SetLimit(-3) })
	requireContractFault(t, func() { NewWithLimit[int](0) })
}

func TestNewQueueOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := NewQueue[int]()
		require.NoError(t, err)
		require.Equal(t, Unbounded, q.Limit())
		require.Equal(t, Opportunistic, q.ShrinkMode())
	})

	t.Run("configured", func(t *testing.T) {
		q, err := NewQueue[int](
			WithLimit[int](100),
			WithPrealloc[int](32),
			WithShrinkMode[int](Disabled),
		)
		require.NoError(t, err)
		require.Equal(t, 100, q.Limit())
		require.Equal(t, 32, q.Capacity())
		require.Equal(t, Disabled, q.ShrinkMode())
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		q, err := NewQueue[int](nil, WithLimit[int](5))
		require.NoError(t, err)
		require.Equal(t, 5, q.Limit())
	})

	t.Run("metrics option with nil registry is ignored", func(t *testing.T) {
		q, err := NewQueue[int](WithMetrics[int](nil, "ignored"))
		require.NoError(t, err)
		require.Nil(t, q.metrics)
	})

	t.Run("duplicate metrics registration fails", func(t *testing.T) {
		registry := metric.NewRegistry()

		_, err := NewQueue[int](WithMetrics[int](registry, "dup"))
		require.NoError(t, err)

		_, err = NewQueue[int](WithMetrics[int](registry, "dup"))
		require.Error(t, err)
		require.True(t, cerrors.IsContract(err))
	})
}

func TestQueueStrategyEquivalence(t *testing.T) {
	// One fixed operation script replayed against both engines must yield
	// identical return values and identical final contents.
	type result struct {
		contents []int
		values   []int
		flags    []bool
	}

	run := func(eng engine[int]) result {
		q := NewWithLimit[int](12)
		q.engine = eng

		var res result
		record := func(v int, ok bool) {
			res.values = append(res.values, v)
			res.flags = append(res.flags, ok)
		}

		q.PushN([]int{1, 2, 3, 4, 5, 6, 7, 8})
		record(q.Pop())
		batch, complete := q.PopN(3)
		res.values = append(res.values, batch...)
		res.flags = append(res.flags, complete)
		q.Push(9)
		dropped, complete := q.DiscardN(2)
		res.values = append(res.values, dropped)
		res.flags = append(res.flags, complete)
		filled, err := q.PushInPlace(3, func(slots []int) (int, error) {
			slots[0], slots[1] = 10, 11
			return 2, nil
		})
		res.values = append(res.values, filled)
		res.flags = append(res.flags, err == nil)
		record(q.Pop())

		res.contents = append([]int(nil), q.All()...)
		return res
	}

	engines := enginesFor[int]()
	baseline := run(engines[0])
	for _, eng := range engines[1:] {
		require.Equal(t, baseline, run(eng), "engine %s diverged from %s",
			eng.name(), engines[0].name())
	}
}
