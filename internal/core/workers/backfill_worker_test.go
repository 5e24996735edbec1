package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

type recordingRunner struct {
	mu   sync.Mutex
	jobs []BackfillJob
	done chan struct{}
}

func newRecordingRunner(expected int) *recordingRunner {
	return &recordingRunner{done: make(chan struct{}, expected)}
}

func (r *recordingRunner) Backfill(ctx context.Context, userID string, asOf time.Time) ([]*domain.HabitDay, error) {
	r.mu.Lock()
	r.jobs = append(r.jobs, BackfillJob{UserID: userID, AsOf: asOf})
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil, nil
}

func (r *recordingRunner) recorded() []BackfillJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]BackfillJob(nil), r.jobs...)
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the worker")
	}
}

func TestBackfillWorker(t *testing.T) {
	t.Run("Processes enqueued jobs in order", func(t *testing.T) {
		runner := newRecordingRunner(2)
		worker := NewBackfillWorker(runner)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		worker.Start(ctx)

		asOf := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		worker.Enqueue("u1", asOf)
		worker.Enqueue("u2", asOf)

		waitFor(t, runner.done)
		waitFor(t, runner.done)

		jobs := runner.recorded()
		require.Len(t, jobs, 2)
		assert.Equal(t, "u1", jobs[0].UserID)
		assert.Equal(t, "u2", jobs[1].UserID)
		assert.Equal(t, asOf, jobs[0].AsOf)
	})

	t.Run("Stops draining after context cancellation", func(t *testing.T) {
		runner := newRecordingRunner(1)
		worker := NewBackfillWorker(runner)

		ctx, cancel := context.WithCancel(context.Background())
		worker.Start(ctx)

		worker.Enqueue("u1", time.Now().UTC())
		waitFor(t, runner.done)

		cancel()
		// give the goroutine a moment to observe the cancellation
		time.Sleep(50 * time.Millisecond)

		worker.Enqueue("u2", time.Now().UTC())
		select {
		case <-runner.done:
			t.Fatal("job processed after shutdown")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
