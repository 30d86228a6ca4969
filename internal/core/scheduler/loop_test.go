package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()
	loop := NewLoop(0)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-loop.Done()
	})
	return loop, cancel
}

func TestLoopDoRunsOnLoop(t *testing.T) {
	loop, _ := startLoop(t)

	ran := false
	require.NoError(t, loop.Do(context.Background(), func() { ran = true }))
	assert.True(t, ran)
}

func TestLoopAfterFuncRunsOnLoop(t *testing.T) {
	loop, _ := startLoop(t)

	fired := make(chan struct{})
	require.NoError(t, loop.Do(context.Background(), func() {
		loop.AfterFunc(5*time.Millisecond, func() { close(fired) })
	}))

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestLoopStopDiscardsQueuedCallback(t *testing.T) {
	loop, _ := startLoop(t)

	var fired atomic.Bool
	var stopped bool
	require.NoError(t, loop.Do(context.Background(), func() {
		timer := loop.AfterFunc(time.Millisecond, func() { fired.Store(true) })
		// The timer queues its callback while the loop is busy here.
		time.Sleep(20 * time.Millisecond)
		stopped = timer.Stop()
	}))
	require.NoError(t, loop.Do(context.Background(), func() {}))

	assert.True(t, stopped)
	assert.False(t, fired.Load())
}

func TestLoopRejectsWorkAfterStop(t *testing.T) {
	loop := NewLoop(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, loop.Post(func() {}), ErrLoopStopped)
	assert.ErrorIs(t, loop.Do(context.Background(), func() {}), ErrLoopStopped)
}
