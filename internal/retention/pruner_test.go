package retention

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingPruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
	calls   chan struct{}
}

func (p *recordingPruner) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	p.mu.Lock()
	p.cutoffs = append(p.cutoffs, cutoff)
	p.mu.Unlock()
	if p.calls != nil {
		select {
		case p.calls <- struct{}{}:
		default:
		}
	}
	if p.err != nil {
		return 0, p.err
	}
	return 3, nil
}

func TestRunOnceUsesRetentionWindow(t *testing.T) {
	target := &recordingPruner{}
	svc := NewService(target, 30*24*time.Hour, "0 0 3 * * *", nil)
	now := time.Date(2026, 10, 15, 3, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	removed, err := svc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	require.Len(t, target.cutoffs, 1)
	assert.Equal(t, now.AddDate(0, 0, -30), target.cutoffs[0])
}

func TestRunOnceWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&recordingPruner{err: boom}, time.Hour, "@hourly", nil)
	_, err := svc.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestStartRunsScheduledJobAndStopsWithContext(t *testing.T) {
	target := &recordingPruner{calls: make(chan struct{}, 1)}
	svc := NewService(target, time.Hour, "@every 1s", nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.Start(ctx))
	assert.Error(t, svc.Start(ctx), "second start must fail")

	select {
	case <-target.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled prune did not run")
	}

	cancel()
	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		return svc.cron == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestStartRejectsBadInput(t *testing.T) {
	assert.Error(t, NewService(nil, time.Hour, "@hourly", nil).Start(context.Background()))
	assert.Error(t, NewService(&recordingPruner{}, 0, "@hourly", nil).Start(context.Background()))
	assert.Error(t, NewService(&recordingPruner{}, time.Hour, "not a schedule", nil).Start(context.Background()))
}
