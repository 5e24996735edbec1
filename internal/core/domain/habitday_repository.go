package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrHabitDayNotFound = errors.New("habit day not found")
)

// HabitDayRepository stores engine-computed ledger rows. It is an
// overwrite-by-date table, not an event log: Upsert replaces whatever row
// exists for the same (user, day). Two writers racing on the same day are
// last-write-wins; serialization, if needed, belongs to the caller.
type HabitDayRepository interface {
	// Upsert stores a fully computed row, overwriting by (user, day).
	Upsert(ctx context.Context, day *HabitDay) error

	// GetByDay retrieves one row, or ErrHabitDayNotFound.
	GetByDay(ctx context.Context, userID string, day time.Time) (*HabitDay, error)

	// ListByUser returns every row for the user in ascending day order.
	ListByUser(ctx context.Context, userID string) ([]*HabitDay, error)

	// DeleteByUser clears all rows for the user. Used by the backfill
	// repair path before rewriting history from scratch.
	DeleteByUser(ctx context.Context, userID string) error
}
