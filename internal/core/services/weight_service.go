package services

import (
	"context"
	"fmt"
	"time"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// WeightService assembles the projected-vs-actual weight view from the
// three logs and the user's configuration. All reads happen once, up
// front; the pipeline itself is pure.
type WeightService struct {
	foodRepo     domain.FoodLogRepository
	activityRepo domain.ActivityLogRepository
	weightRepo   domain.WeightLogRepository
	settingsRepo domain.SettingsRepository
}

func NewWeightService(
	foodRepo domain.FoodLogRepository,
	activityRepo domain.ActivityLogRepository,
	weightRepo domain.WeightLogRepository,
	settingsRepo domain.SettingsRepository,
) *WeightService {
	return &WeightService{
		foodRepo:     foodRepo,
		activityRepo: activityRepo,
		weightRepo:   weightRepo,
		settingsRepo: settingsRepo,
	}
}

// ComputeWeightView builds the four aligned series and the goal estimate
// as of a given day. Errors surface synchronously: an insufficient
// snapshot (no anchor reading, fewer than two points) is the caller's
// "not enough data yet" case, not something to retry.
func (s *WeightService) ComputeWeightView(ctx context.Context, userID string, asOf time.Time) (*domain.WeightView, error) {
	asOf = domain.Midnight(asOf)

	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("weight view: loading settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	food, err := s.foodRepo.ListByUser(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("weight view: loading food log: %w", err)
	}
	activity, err := s.activityRepo.ListByUser(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("weight view: loading activity log: %w", err)
	}
	weight, err := s.weightRepo.ListByUser(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("weight view: loading weight log: %w", err)
	}

	totals := BuildDailyTotals(food, activity, weight)

	actual, theoretical, err := ProjectEnergyBalance(totals, settings.TDEEKcal)
	if err != nil {
		return nil, err
	}

	trend, slope, err := FitTrend(actual)
	if err != nil {
		return nil, err
	}

	view := &domain.WeightView{
		Actual:        actual,
		Theoretical:   theoretical,
		Smoothed:      SmoothCentered(actual, smoothRadius),
		Trend:         trend,
		SlopeKgPerDay: slope,
	}

	if settings.GoalWeightKg != nil {
		current := actual[len(actual)-1].Kg
		view.GoalEtaDays = GoalETA(current, *settings.GoalWeightKg, slope)
	}

	return view, nil
}
