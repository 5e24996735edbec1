package workers

import (
	"context"
	"log"
	"time"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// BackfillRunner is the slice of the backfill service the worker needs.
type BackfillRunner interface {
	Backfill(ctx context.Context, userID string, asOf time.Time) ([]*domain.HabitDay, error)
}

type BackfillJob struct {
	UserID string
	AsOf   time.Time
}

// BackfillWorker serializes full-history ledger rebuilds behind a buffered
// queue. Incremental writes stay synchronous in the request path; the
// worker only converges persisted downstream rows afterwards, so dropping
// a job under load loses nothing that the next rebuild won't recompute.
type BackfillWorker struct {
	runner BackfillRunner
	jobs   chan BackfillJob
}

func NewBackfillWorker(runner BackfillRunner) *BackfillWorker {
	return &BackfillWorker{
		runner: runner,
		jobs:   make(chan BackfillJob, 100),
	}
}

func (w *BackfillWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Backfill worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Backfill worker shutting down...")
				return
			}
		}
	}()
}

func (w *BackfillWorker) Enqueue(userID string, asOf time.Time) {
	select {
	case w.jobs <- BackfillJob{UserID: userID, AsOf: asOf}:
	default:
		log.Printf("Backfill worker queue full! Dropping job for user %s", userID)
	}
}

func (w *BackfillWorker) processJob(ctx context.Context, job BackfillJob) {
	rows, err := w.runner.Backfill(ctx, job.UserID, job.AsOf)
	if err != nil {
		log.Printf("Worker error rebuilding ledger for %s: %v", job.UserID, err)
		return
	}
	log.Printf("Ledger rebuilt for %s: %d days", job.UserID, len(rows))
}
