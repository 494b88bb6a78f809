package queue

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks queue performance metrics. Counters count elements,
// not operations, so a PushN of five records five pushes.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushes   int64
	pops     int64
	discards int64
	rejects  int64
	shrinks  int64

	// Protected by mutex
	mu            sync.RWMutex
	startTime     time.Time
	currentLength int64
	maxLength     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Push records n elements appended.
func (s *Statistics) Push(n int64) {
	atomic.AddInt64(&s.pushes, n)
}

// Pop records n elements removed and returned.
func (s *Statistics) Pop(n int64) {
	atomic.AddInt64(&s.pops, n)
}

// Discard records n elements removed without being returned.
func (s *Statistics) Discard(n int64) {
	atomic.AddInt64(&s.discards, n)
}

// Reject records n elements clipped away by the length limit.
func (s *Statistics) Reject(n int64) {
	atomic.AddInt64(&s.rejects, n)
}

// Shrink records a backing storage reallocation that released capacity.
func (s *Statistics) Shrink() {
	atomic.AddInt64(&s.shrinks, 1)
}

// UpdateLength updates the current queue length.
func (s *Statistics) UpdateLength(length int64) {
	s.mu.Lock()
	s.currentLength = length
	if length > s.maxLength {
		s.maxLength = length
	}
	s.mu.Unlock()
}

// Pushes returns the total number of elements appended.
func (s *Statistics) Pushes() int64 {
	return atomic.LoadInt64(&s.pushes)
}

// Pops returns the total number of elements removed and returned.
func (s *Statistics) Pops() int64 {
	return atomic.LoadInt64(&s.pops)
}

// Discards returns the total number of elements discarded.
func (s *Statistics) Discards() int64 {
	return atomic.LoadInt64(&s.discards)
}

// Rejects returns the total number of elements rejected by the limit.
func (s *Statistics) Rejects() int64 {
	return atomic.LoadInt64(&s.rejects)
}

// Shrinks returns the total number of shrink reallocations.
func (s *Statistics) Shrinks() int64 {
	return atomic.LoadInt64(&s.shrinks)
}

// CurrentLength returns the current number of live elements.
func (s *Statistics) CurrentLength() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentLength
}

// MaxLength returns the maximum number of elements the queue has held.
func (s *Statistics) MaxLength() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxLength
}

// PushThroughput returns the average number of elements appended per second.
func (s *Statistics) PushThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Pushes()) / elapsed.Seconds()
}

// PopThroughput returns the average number of elements consumed per second.
func (s *Statistics) PopThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Pops()+s.Discards()) / elapsed.Seconds()
}

// RejectRate returns the fraction of offered elements that the limit
// rejected (0.0 to 1.0).
func (s *Statistics) RejectRate() float64 {
	pushes := s.Pushes()
	rejects := s.Rejects()

	offered := pushes + rejects
	if offered == 0 {
		return 0.0
	}

	return float64(rejects) / float64(offered)
}

// Utilization returns the current length relative to the given limit
// (0.0 to 1.0).
func (s *Statistics) Utilization(limit int64) float64 {
	if limit == 0 {
		return 0.0
	}

	return float64(s.CurrentLength()) / float64(limit)
}

// Uptime returns how long the queue has been collecting statistics.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushes, 0)
	atomic.StoreInt64(&s.pops, 0)
	atomic.StoreInt64(&s.discards, 0)
	atomic.StoreInt64(&s.rejects, 0)
	atomic.StoreInt64(&s.shrinks, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentLength = 0
	s.maxLength = 0
	s.mu.Unlock()
}

// StatsSummary returns a snapshot of all statistics.
type StatsSummary struct {
	Pushes         int64         `json:"pushes"`
	Pops           int64         `json:"pops"`
	Discards       int64         `json:"discards"`
	Rejects        int64         `json:"rejects"`
	Shrinks        int64         `json:"shrinks"`
	CurrentLength  int64         `json:"current_length"`
	MaxLength      int64         `json:"max_length"`
	PushThroughput float64       `json:"push_throughput"`
	PopThroughput  float64       `json:"pop_throughput"`
	RejectRate     float64       `json:"reject_rate"`
	Uptime         time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Pushes:         s.Pushes(),
		Pops:           s.Pops(),
		Discards:       s.Discards(),
		Rejects:        s.Rejects(),
		Shrinks:        s.Shrinks(),
		CurrentLength:  s.CurrentLength(),
		MaxLength:      s.MaxLength(),
		PushThroughput: s.PushThroughput(),
		PopThroughput:  s.PopThroughput(),
		RejectRate:     s.RejectRate(),
		Uptime:         s.Uptime(),
	}
}
