package services

import (
	"context"
	"fmt"
	"time"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// BackfillService rebuilds the entire habit ledger and achievement set
// from the raw food and weight logs. It replays the aggregated history in
// ascending day order through the same per-day transition the incremental
// path uses, so Backfill(logs) equals folding RecordDay over every
// historical day. Running it twice on the same snapshot produces
// identical rows.
type BackfillService struct {
	foodRepo   domain.FoodLogRepository
	weightRepo domain.WeightLogRepository
	dayRepo    domain.HabitDayRepository
}

func NewBackfillService(foodRepo domain.FoodLogRepository, weightRepo domain.WeightLogRepository, dayRepo domain.HabitDayRepository) *BackfillService {
	return &BackfillService{
		foodRepo:   foodRepo,
		weightRepo: weightRepo,
		dayRepo:    dayRepo,
	}
}

// Backfill recomputes and persists every ledger row up to asOf, replacing
// whatever state the store holds. The activity log does not participate:
// only food and weight entries qualify a day for the habit ledger.
func (s *BackfillService) Backfill(ctx context.Context, userID string, asOf time.Time) ([]*domain.HabitDay, error) {
	asOf = domain.Midnight(asOf)

	food, err := s.foodRepo.ListByUser(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("backfill: loading food log: %w", err)
	}
	weight, err := s.weightRepo.ListByUser(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("backfill: loading weight log: %w", err)
	}

	rows := ReplayLedger(userID, BuildDailyTotals(food, nil, weight))

	if err := s.dayRepo.DeleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("backfill: clearing ledger: %w", err)
	}
	for _, row := range rows {
		if err := s.dayRepo.Upsert(ctx, row); err != nil {
			return nil, fmt.Errorf("backfill: storing day %s: %w", domain.DayKey(row.Day), err)
		}
	}

	return rows, nil
}

// ReplayLedger folds the per-day transition over aggregated history and
// returns the full row sequence. Pure; exposed so callers can preview a
// reconstruction without touching storage.
func ReplayLedger(userID string, totals []domain.DailyTotals) []*domain.HabitDay {
	st := newLedgerState()
	rows := make([]*domain.HabitDay, 0, len(totals))

	for _, t := range totals {
		if !t.HasFood && !t.HasWeight {
			continue
		}
		rows = append(rows, st.advanceDay(userID, t.Day, t.HasFood, t.HasWeight, nil))
	}

	return rows
}
