//go:build !slicequeue_raw

package queue

// defaultEngine returns the transfer strategy selected at build time: the
// safe engine unless the slicequeue_raw build tag is set.
func defaultEngine[T any]() engine[T] { return safeEngine[T]{} }
