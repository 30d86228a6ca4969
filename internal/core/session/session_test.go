package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsetimer/internal/core/model"
	"pulsetimer/internal/core/selector"
)

type countingPulser struct {
	count atomic.Int32
}

func (pulser *countingPulser) Pulse() {
	pulser.count.Add(1)
}

func startSession(t *testing.T) (*Session, context.CancelFunc, <-chan error) {
	t.Helper()
	session := New(model.RuntimeConfig{FrameInterval: 10 * time.Millisecond}, &countingPulser{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- session.Run(ctx)
	}()
	t.Cleanup(cancel)
	return session, cancel, result
}

func TestSessionSelectToggles(t *testing.T) {
	session, _, _ := startSession(t)
	ctx := context.Background()

	state, err := session.SelectWait(ctx, model.Period15s)
	require.NoError(t, err)
	assert.Equal(t, model.Armed(model.Period15s), state)
	assert.Equal(t, model.Armed(model.Period15s), session.State())

	state, err = session.SelectWait(ctx, model.Period30s)
	require.NoError(t, err)
	assert.Equal(t, model.Armed(model.Period30s), state)
	assert.Equal(t, 0.0, session.Progress(model.Period15s))

	state, err = session.SelectWait(ctx, model.Period30s)
	require.NoError(t, err)
	assert.Equal(t, model.Idle(), state)
}

func TestSessionProgressAdvances(t *testing.T) {
	session, _, _ := startSession(t)
	events := session.Subscribe(256)

	require.NoError(t, session.Select(model.Period10s))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type == selector.EventProgress && event.Option == model.Period10s && event.Progress > 0 {
				assert.Greater(t, session.Progress(model.Period10s), 0.0)
				return
			}
		case <-deadline:
			t.Fatal("no progress observed")
		}
	}
}

func TestSessionRunDisarmsOnShutdown(t *testing.T) {
	session, cancel, result := startSession(t)
	events := session.Subscribe(1024)

	_, err := session.SelectWait(context.Background(), model.Period10s)
	require.NoError(t, err)

	cancel()
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop")
	}

	assert.False(t, session.State().IsArmed())
	assert.Equal(t, 0.0, session.Progress(model.Period10s))
	for range events {
	}
	assert.Error(t, session.Select(model.Period15s))
	assert.Error(t, session.Disarm())
}
