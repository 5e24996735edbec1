package domain

import (
	"context"
	"time"
)

// Read contracts toward the storage collaborator. The logs are append-only
// and owned elsewhere; the engine only ever lists snapshots. asOf bounds
// the snapshot to rows on or before that calendar day so that every
// computation is deterministic for a given (user, asOf) pair.

type FoodLogRepository interface {
	// ListByUser returns all food rows up to and including asOf, in no
	// particular order.
	ListByUser(ctx context.Context, userID string, asOf time.Time) ([]FoodRow, error)
}

type ActivityLogRepository interface {
	ListByUser(ctx context.Context, userID string, asOf time.Time) ([]ActivityRow, error)
}

type WeightLogRepository interface {
	ListByUser(ctx context.Context, userID string, asOf time.Time) ([]WeightRow, error)
}

type SettingsRepository interface {
	// GetByUserID returns ErrSettingsNotFound when the user has no
	// configuration row yet.
	GetByUserID(ctx context.Context, userID string) (*Settings, error)
}
