package queue

import "unsafe"

// rawEngine implements the transfer capability on raw memory: element
// moves go through pointer-reconstructed views of the backing array, and
// vacated slots are released by zeroing them one at a time, exactly once.
// The unsafe surface is confined to this file; the observable contract is
// identical to the safe engine's.
type rawEngine[T any] struct{}

func (rawEngine[T]) name() string { return "raw" }

func (rawEngine[T]) shiftOut(items, dst []T, n int) []T {
	if n == 0 {
		return items
	}

	base := unsafe.SliceData(items)
	rawMove(unsafe.SliceData(dst), base, n)

	remaining := len(items) - n
	if remaining > 0 {
		rawMove(base, elemPtr(base, n), remaining)
	}
	rawRelease(elemPtr(base, remaining), n)

	return unsafe.Slice(base, cap(items))[:remaining]
}

func (rawEngine[T]) shift(items []T, n int) []T {
	if n == 0 {
		return items
	}

	base := unsafe.SliceData(items)
	remaining := len(items) - n
	if remaining > 0 {
		rawMove(base, elemPtr(base, n), remaining)
	}
	rawRelease(elemPtr(base, remaining), n)

	return unsafe.Slice(base, cap(items))[:remaining]
}

func (rawEngine[T]) extend(items []T, n int) []T {
	if n == 0 {
		return items
	}
	if cap(items)-len(items) >= n {
		// Spare slots are kept released, so the reserved region already
		// reads as default values; re-zero it anyway so the invariant
		// never depends on a remote call site.
		grown := items[:len(items)+n]
		rawRelease(elemPtr(unsafe.SliceData(grown), len(items)), n)
		return grown
	}
	return append(items, make([]T, n)...)
}

func (rawEngine[T]) truncate(items []T, k int) []T {
	if k < len(items) {
		rawRelease(elemPtr(unsafe.SliceData(items), k), len(items)-k)
	}
	return items[:k]
}

// rawMove copies n elements between pointer views. copy on reconstructed
// slices has memmove semantics, so overlapping regions are handled.
func rawMove[T any](dst, src *T, n int) {
	copy(unsafe.Slice(dst, n), unsafe.Slice(src, n))
}

// rawRelease zeroes n slots starting at p so no stale reference survives
// a logical removal.
func rawRelease[T any](p *T, n int) {
	var zero T
	for i := 0; i < n; i++ {
		*elemPtr(p, i) = zero
	}
}

// elemPtr returns a pointer to the i-th element after p.
func elemPtr[T any](p *T, i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(zero)))
}
