package ticker

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestNextTickAlignment(t *testing.T) {
	assert := assert.New(t)

	interval := DefaultInterval
	nows := []int64{
		0,
		1,
		int64(time.Millisecond),
		int64(interval) - 1,
		int64(interval),
		int64(interval) + 1,
		123_456_789,
		int64(37 * time.Second),
		1_756_300_000_123_456_789, // arbitrary wall timestamp
	}

	for _, ns := range nows {
		now := time.Unix(0, ns)
		next := NextTick(now, interval)

		assert.Zero(next.UnixNano()%int64(interval), "boundary multiple for now=%d", ns)
		assert.True(next.After(now), "next > now for now=%d", ns)
		assert.LessOrEqual(next.Sub(now), interval, "within one interval for now=%d", ns)
	}
}

func TestNextTickOnExactBoundary(t *testing.T) {
	assert := assert.New(t)

	// Sitting exactly on a boundary schedules the following one, never now.
	now := time.Unix(0, int64(10*DefaultInterval))
	next := NextTick(now, DefaultInterval)
	assert.Equal(DefaultInterval, next.Sub(now))
}

func TestNextTickDelayFloor(t *testing.T) {
	assert := assert.New(t)

	// One nanosecond before a boundary the raw gap is sub-millisecond;
	// the armed delay is floored to 1ms.
	now := time.Unix(0, int64(DefaultInterval)-1)
	assert.Equal(time.Millisecond, NextTickDelay(now, DefaultInterval))

	// Far from a boundary the delay is the raw gap.
	now = time.Unix(0, int64(DefaultInterval)+int64(2*time.Millisecond))
	assert.Equal(DefaultInterval-2*time.Millisecond, NextTickDelay(now, DefaultInterval))
}

func TestSchedulerTicksAndRealigns(t *testing.T) {
	assert := assert.New(t)

	clock := clockwork.NewFakeClockAt(time.Unix(0, 0))
	s := NewScheduler(clock, DefaultInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := make(chan time.Time, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx, func(now time.Time) { ticks <- now })
	}()

	// First boundary: fake clock starts at 0, so the delay is one full interval.
	clock.BlockUntil(1)
	clock.Advance(DefaultInterval)
	first := <-ticks
	assert.Zero(first.UnixNano() % int64(DefaultInterval))

	// Second boundary follows from the first.
	clock.BlockUntil(1)
	clock.Advance(DefaultInterval)
	second := <-ticks
	assert.Zero(second.UnixNano() % int64(DefaultInterval))
	assert.Equal(DefaultInterval, second.Sub(first))

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on cancellation")
	}
}

func TestSchedulerDefaultsInterval(t *testing.T) {
	assert := assert.New(t)

	s := NewScheduler(clockwork.NewRealClock(), 0)
	assert.Equal(DefaultInterval, s.interval)
}
