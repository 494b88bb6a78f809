package queue

// safeEngine implements the transfer capability using only high-level
// slice primitives: copy, append and clear.
type safeEngine[T any] struct{}

func (safeEngine[T]) name() string { return "safe" }

func (safeEngine[T]) shiftOut(items, dst []T, n int) []T {
	copy(dst[:n], items[:n])
	kept := copy(items, items[n:])
	clear(items[kept:])
	return items[:kept]
}

func (safeEngine[T]) shift(items []T, n int) []T {
	kept := copy(items, items[n:])
	clear(items[kept:])
	return items[:kept]
}

func (safeEngine[T]) extend(items []T, n int) []T {
	return append(items, make([]T, n)...)
}

func (safeEngine[T]) truncate(items []T, k int) []T {
	clear(items[k:])
	return items[:k]
}
