package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

type PostgresSettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresSettingsRepository(db *sqlx.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) GetByUserID(ctx context.Context, userID string) (*domain.Settings, error) {
	var settings domain.Settings

	query := `SELECT user_id, tdee_kcal, goal_weight_kg FROM user_settings WHERE user_id = $1`

	err := r.db.GetContext(ctx, &settings, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}
