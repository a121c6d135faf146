// Package ticker schedules the clock's display refresh on fixed interval
// boundaries of absolute time.
package ticker

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the refresh period, roughly 60 Hz.
const DefaultInterval = 16 * time.Millisecond

// minDelay keeps the timer from being armed with a zero or negative
// duration when the next boundary is effectively now.
const minDelay = time.Millisecond

// NextTick returns the earliest instant strictly after now that falls on a
// multiple of interval. Boundaries are absolute, not relative to process
// start, so long-run drift stays bounded by one interval.
func NextTick(now time.Time, interval time.Duration) time.Time {
	ns := now.UnixNano()
	in := int64(interval)
	next := (ns/in + 1) * in
	return time.Unix(0, next).In(now.Location())
}

// NextTickDelay returns the timer delay until the next boundary, floored
// at one millisecond.
func NextTickDelay(now time.Time, interval time.Duration) time.Duration {
	d := NextTick(now, interval).Sub(now)
	if d < minDelay {
		d = minDelay
	}
	return d
}

// Scheduler runs a self-rescheduling tick loop against an injectable clock.
type Scheduler struct {
	clock    clockwork.Clock
	interval time.Duration
}

func NewScheduler(clock clockwork.Clock, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{clock: clock, interval: interval}
}

// Run invokes tick at every interval boundary until ctx is cancelled.
// Each iteration re-reads the clock and realigns, so a late or early
// wakeup never accumulates into the following ticks.
func (s *Scheduler) Run(ctx context.Context, tick func(now time.Time)) {
	for {
		delay := NextTickDelay(s.clock.Now(), s.interval)
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(delay):
			tick(s.clock.Now())
		}
	}
}
