package parsing

import (
	"sync/atomic"
	"time"
)

// stampSource hands out strictly increasing millisecond stamps, even when the
// wall clock has not advanced between calls.
type stampSource struct {
	now  func() time.Time
	last atomic.Int64
}

func newStampSource(now func() time.Time) *stampSource {
	if now == nil {
		now = time.Now
	}
	return &stampSource{now: now}
}

// next returns a unique stamp and the wall-clock time it was taken at
func (s *stampSource) next() (int64, time.Time) {
	t := s.now()
	for {
		prev := s.last.Load()
		ms := t.UnixMilli()
		if ms <= prev {
			ms = prev + 1
		}
		if s.last.CompareAndSwap(prev, ms) {
			return ms, t
		}
	}
}
