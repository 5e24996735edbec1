package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// habitDayRecord is the scan target for habit_days rows; achievements is a
// Postgres text[] and needs pq's array wrapper.
type habitDayRecord struct {
	UserID       string         `db:"user_id"`
	Day          time.Time      `db:"day"`
	FoodLogged   bool           `db:"food_logged"`
	WeightLogged bool           `db:"weight_logged"`
	Completed    bool           `db:"completed"`
	Streak       int            `db:"streak"`
	Achievements pq.StringArray `db:"achievements"`
}

func (rec habitDayRecord) toDomain() *domain.HabitDay {
	return &domain.HabitDay{
		UserID:       rec.UserID,
		Day:          domain.Midnight(rec.Day),
		FoodLogged:   rec.FoodLogged,
		WeightLogged: rec.WeightLogged,
		Completed:    rec.Completed,
		Streak:       rec.Streak,
		Achievements: []string(rec.Achievements),
	}
}

type PostgresHabitDayRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitDayRepository(db *sqlx.DB) *PostgresHabitDayRepository {
	return &PostgresHabitDayRepository{db: db}
}

func (r *PostgresHabitDayRepository) Upsert(ctx context.Context, day *domain.HabitDay) error {
	query := `
		INSERT INTO habit_days (
			user_id, day, food_logged, weight_logged, completed, streak, achievements
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, day) DO UPDATE SET
			food_logged   = EXCLUDED.food_logged,
			weight_logged = EXCLUDED.weight_logged,
			completed     = EXCLUDED.completed,
			streak        = EXCLUDED.streak,
			achievements  = EXCLUDED.achievements`

	_, err := r.db.ExecContext(ctx, query,
		day.UserID,
		domain.Midnight(day.Day),
		day.FoodLogged,
		day.WeightLogged,
		day.Completed,
		day.Streak,
		pq.Array(day.Achievements),
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return errors.New("referenced user does not exist")
		}
		return err
	}
	return nil
}

func (r *PostgresHabitDayRepository) GetByDay(ctx context.Context, userID string, day time.Time) (*domain.HabitDay, error) {
	var rec habitDayRecord

	query := `
		SELECT user_id, day, food_logged, weight_logged, completed, streak, achievements
		FROM habit_days
		WHERE user_id = $1 AND day = $2`

	err := r.db.GetContext(ctx, &rec, query, userID, domain.Midnight(day))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitDayNotFound
		}
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *PostgresHabitDayRepository) ListByUser(ctx context.Context, userID string) ([]*domain.HabitDay, error) {
	records := []habitDayRecord{}

	query := `
		SELECT user_id, day, food_logged, weight_logged, completed, streak, achievements
		FROM habit_days
		WHERE user_id = $1
		ORDER BY day ASC`

	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, err
	}

	days := make([]*domain.HabitDay, 0, len(records))
	for _, rec := range records {
		days = append(days, rec.toDomain())
	}
	return days, nil
}

func (r *PostgresHabitDayRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM habit_days WHERE user_id = $1`, userID)
	return err
}
