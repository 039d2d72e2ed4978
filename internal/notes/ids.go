package notes

import (
	"sync"
	"time"
)

// IDSource issues note identifiers. Implementations must never repeat a
// value within one session.
type IDSource interface {
	Next() int64
}

// ClockIDs derives identifiers from the wall clock in milliseconds and bumps
// past the last issued value when the clock has not moved forward.
type ClockIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

func (c *ClockIDs) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// SequenceIDs counts up from 1.
type SequenceIDs struct {
	mu   sync.Mutex
	next int64
}

func NewSequenceIDs() *SequenceIDs {
	return &SequenceIDs{next: 1}
}

func (s *SequenceIDs) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}
