// Package revision hands out strictly increasing row versions.
package revision

import (
	"time"

	"go.uber.org/atomic"
)

// Clock issues versions derived from wall time that never repeat or go backwards,
// even when the wall clock does.
type Clock struct {
	last *atomic.Uint64
	now  func() time.Time
}

// NewClock constructs a Clock backed by time.Now.
func NewClock() *Clock {
	return &Clock{last: atomic.NewUint64(0), now: time.Now}
}

// Next returns max(now in nanoseconds, previous + 1).
func (c *Clock) Next() uint64 {
	for {
		prev := c.last.Load()
		next := uint64(c.now().UnixNano())
		if next <= prev {
			next = prev + 1
		}
		if c.last.CompareAndSwap(prev, next) {
			return next
		}
	}
}
