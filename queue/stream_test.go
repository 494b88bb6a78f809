package queue

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamReadWrite(t *testing.T) {
	s := NewStream(New[byte]())

	n, err := s.Write([]byte("Testolope"))
	require.NoError(t, err)
	require.Equal(t, 9, n)

	buf := make([]byte, 4)
	n, err = s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("Test"), buf)

	n, err = s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("olop"), buf)

	n, err = s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte('e'), buf[0])
}

// An empty queue is not end-of-stream: reads report zero bytes and no error.
func TestStreamReadEmpty(t *testing.T) {
	s := NewStream(New[byte]())

	buf := make([]byte, 8)
	n, err := s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

// A write beyond the limit clips silently; the count is the only signal.
func TestStreamWriteClipped(t *testing.T) {
	q := NewWithLimit[byte](4)
	s := NewStream(q)

	n, err := s.Write([]byte("Testolope"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte("Test"), q.All())

	n, err = s.Write([]byte("!"))
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

// Stream and direct queue operations act on the same elements.
func TestStreamSharesQueue(t *testing.T) {
	q := New[byte]()
	s := NewStream(q)

	require.True(t, q.Push('a'))
	_, err := s.Write([]byte("bc"))
	require.NoError(t, err)

	value, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, byte('a'), value)

	buf := make([]byte, 2)
	n, err := s.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("bc"), buf)

	require.Same(t, q, s.Queue())
}

func TestStreamFlush(t *testing.T) {
	s := NewStream(New[byte]())
	require.NoError(t, s.Flush())
}

func TestStreamWithIOCopy(t *testing.T) {
	src := NewStream(FromSlice([]byte("stream me")))
	dst := NewStream(New[byte]())

	// The stream never returns io.EOF, so an unbounded io.Copy would
	// spin on the drained queue; bound the copy to the available length.
	n, err := io.CopyN(dst, src, int64(src.Queue().Len()))
	require.NoError(t, err)
	require.Equal(t, int64(9), n)
	require.Equal(t, []byte("stream me"), dst.Queue().All())
	require.True(t, src.Queue().IsEmpty())
}
