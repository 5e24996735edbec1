package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// The log tables are append-only and owned by the logging collaborator;
// the engine only reads snapshots bounded by asOf.

type PostgresFoodLogRepository struct {
	db *sqlx.DB
}

func NewPostgresFoodLogRepository(db *sqlx.DB) *PostgresFoodLogRepository {
	return &PostgresFoodLogRepository{db: db}
}

func (r *PostgresFoodLogRepository) ListByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.FoodRow, error) {
	rows := []domain.FoodRow{}

	query := `
		SELECT id, user_id, day, kcal
		FROM food_log
		WHERE user_id = $1
		  AND day <= $2
		ORDER BY day ASC`

	if err := r.db.SelectContext(ctx, &rows, query, userID, domain.Midnight(asOf)); err != nil {
		return nil, err
	}
	return rows, nil
}
