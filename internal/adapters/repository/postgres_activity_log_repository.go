package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

type PostgresActivityLogRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityLogRepository(db *sqlx.DB) *PostgresActivityLogRepository {
	return &PostgresActivityLogRepository{db: db}
}

func (r *PostgresActivityLogRepository) ListByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.ActivityRow, error) {
	rows := []domain.ActivityRow{}

	query := `
		SELECT id, user_id, day, kcal
		FROM activity_log
		WHERE user_id = $1
		  AND day <= $2
		ORDER BY day ASC`

	if err := r.db.SelectContext(ctx, &rows, query, userID, domain.Midnight(asOf)); err != nil {
		return nil, err
	}
	return rows, nil
}
