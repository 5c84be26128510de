package job

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJobImmediately(t *testing.T) {
	var runs atomic.Int32

	scheduler := NewScheduler()
	scheduler.Add(Job{
		Name:     "counter",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	require.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	scheduler.Shutdown()
}

func TestScheduler_RepeatsOnInterval(t *testing.T) {
	var runs atomic.Int32

	scheduler := NewScheduler()
	scheduler.Add(Job{
		Name:     "ticker",
		Interval: 20 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	require.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, time.Second, 10*time.Millisecond)

	cancel()
	scheduler.Shutdown()
}

func TestScheduler_IgnoresDisabledJobs(t *testing.T) {
	var runs atomic.Int32

	scheduler := NewScheduler()
	scheduler.Add(Job{
		Name:     "disabled",
		Interval: 0,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)
	cancel()
	scheduler.Shutdown()

	assert.Zero(t, runs.Load())
}

func TestScheduler_StopsOnCancel(t *testing.T) {
	var runs atomic.Int32

	scheduler := NewScheduler()
	scheduler.Add(Job{
		Name:     "stopper",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
	scheduler.Shutdown()

	after := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after shutdown")
}
