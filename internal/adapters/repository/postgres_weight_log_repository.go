package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

type PostgresWeightLogRepository struct {
	db *sqlx.DB
}

func NewPostgresWeightLogRepository(db *sqlx.DB) *PostgresWeightLogRepository {
	return &PostgresWeightLogRepository{db: db}
}

func (r *PostgresWeightLogRepository) ListByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.WeightRow, error) {
	rows := []domain.WeightRow{}

	query := `
		SELECT id, user_id, day, weight_kg, body_fat_pct, muscle_pct
		FROM weight_log
		WHERE user_id = $1
		  AND day <= $2
		ORDER BY day ASC`

	if err := r.db.SelectContext(ctx, &rows, query, userID, domain.Midnight(asOf)); err != nil {
		return nil, err
	}
	return rows, nil
}
