package queue

import "io"

// Stream adapts a byte queue to the standard library's stream interfaces.
// Reads drain the front, writes append at the tail and both are total:
// Read on an empty queue returns 0 bytes, Write beyond the limit clips
// and reports only the accepted count. Neither ever returns an error,
// including io.EOF; an empty queue is merely momentarily drained.
type Stream struct {
	queue *Queue[byte]
}

var (
	_ io.Reader = (*Stream)(nil)
	_ io.Writer = (*Stream)(nil)
)

// NewStream wraps the given byte queue in a stream adapter. The adapter
// and direct queue operations act on the same elements.
func NewStream(q *Queue[byte]) *Stream {
	return &Stream{queue: q}
}

// Queue returns the underlying byte queue.
func (s *Stream) Queue() *Queue[byte] {
	return s.queue
}

// Read drains up to len(p) bytes from the front of the queue into p.
// The returned error is always nil.
func (s *Stream) Read(p []byte) (int, error) {
	n, _ := s.queue.PopInto(p)
	return n, nil
}

// Write appends the bytes of p that fit under the queue's limit.
// The returned error is always nil; a clipped write is visible only
// through the returned count.
func (s *Stream) Write(p []byte) (int, error) {
	n, _ := s.queue.PushFrom(p)
	return n, nil
}

// Flush is a no-op. Every write lands in the queue immediately; the
// method exists so the adapter satisfies flush-aware writer checks.
func (s *Stream) Flush() error {
	return nil
}
