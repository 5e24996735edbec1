package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// In-memory implementations of the storage contracts, used by tests and
// local development. The Add* helpers stand in for the external logging
// collaborator that owns the append-only logs in production.

type InMemoryFoodLog struct {
	rows []domain.FoodRow

	mu sync.RWMutex
}

func NewInMemoryFoodLog() *InMemoryFoodLog {
	return &InMemoryFoodLog{}
}

func (r *InMemoryFoodLog) Add(userID string, day time.Time, kcal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, domain.FoodRow{
		ID:     uuid.NewString(),
		UserID: userID,
		Day:    domain.Midnight(day),
		Kcal:   kcal,
	})
}

func (r *InMemoryFoodLog) ListByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.FoodRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := domain.Midnight(asOf)
	var rows []domain.FoodRow
	for _, row := range r.rows {
		if row.UserID == userID && !row.Day.After(cutoff) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type InMemoryActivityLog struct {
	rows []domain.ActivityRow

	mu sync.RWMutex
}

func NewInMemoryActivityLog() *InMemoryActivityLog {
	return &InMemoryActivityLog{}
}

func (r *InMemoryActivityLog) Add(userID string, day time.Time, kcal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, domain.ActivityRow{
		ID:     uuid.NewString(),
		UserID: userID,
		Day:    domain.Midnight(day),
		Kcal:   kcal,
	})
}

func (r *InMemoryActivityLog) ListByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.ActivityRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := domain.Midnight(asOf)
	var rows []domain.ActivityRow
	for _, row := range r.rows {
		if row.UserID == userID && !row.Day.After(cutoff) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type InMemoryWeightLog struct {
	rows []domain.WeightRow

	mu sync.RWMutex
}

func NewInMemoryWeightLog() *InMemoryWeightLog {
	return &InMemoryWeightLog{}
}

func (r *InMemoryWeightLog) Add(userID string, day time.Time, weightKg float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, domain.WeightRow{
		ID:       uuid.NewString(),
		UserID:   userID,
		Day:      domain.Midnight(day),
		WeightKg: weightKg,
	})
}

func (r *InMemoryWeightLog) ListByUser(ctx context.Context, userID string, asOf time.Time) ([]domain.WeightRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := domain.Midnight(asOf)
	var rows []domain.WeightRow
	for _, row := range r.rows {
		if row.UserID == userID && !row.Day.After(cutoff) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type InMemorySettings struct {
	store map[string]*domain.Settings

	mu sync.RWMutex
}

func NewInMemorySettings() *InMemorySettings {
	return &InMemorySettings{
		store: make(map[string]*domain.Settings),
	}
}

func (r *InMemorySettings) Set(settings *domain.Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[settings.UserID] = settings
}

func (r *InMemorySettings) GetByUserID(ctx context.Context, userID string) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}
	return settings, nil
}

type InMemoryHabitDayRepository struct {
	store map[string]map[string]*domain.HabitDay

	mu sync.RWMutex
}

func NewInMemoryHabitDayRepository() *InMemoryHabitDayRepository {
	return &InMemoryHabitDayRepository{
		store: make(map[string]map[string]*domain.HabitDay),
	}
}

func (r *InMemoryHabitDayRepository) Upsert(ctx context.Context, day *domain.HabitDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[day.UserID]; !ok {
		r.store[day.UserID] = make(map[string]*domain.HabitDay)
	}

	copied := *day
	copied.Achievements = append([]string(nil), day.Achievements...)
	r.store[day.UserID][domain.DayKey(day.Day)] = &copied
	return nil
}

func (r *InMemoryHabitDayRepository) GetByDay(ctx context.Context, userID string, day time.Time) (*domain.HabitDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.store[userID][domain.DayKey(day)]
	if !ok {
		return nil, domain.ErrHabitDayNotFound
	}
	return row, nil
}

func (r *InMemoryHabitDayRepository) ListByUser(ctx context.Context, userID string) ([]*domain.HabitDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var days []*domain.HabitDay
	for _, row := range r.store[userID] {
		days = append(days, row)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})

	return days, nil
}

func (r *InMemoryHabitDayRepository) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, userID)
	return nil
}
