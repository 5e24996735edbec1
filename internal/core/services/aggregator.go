package services

import (
	"sort"
	"time"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// BuildDailyTotals collapses unordered raw rows into one DailyTotals per
// calendar day, covering the union of all days across the three logs.
// Kcal values are summed per day; non-finite values count as 0. At most
// one weight reading per day is supported: a later row for the same day
// overwrites the earlier one, no averaging. Pure transform, never fails.
func BuildDailyTotals(food []domain.FoodRow, activity []domain.ActivityRow, weight []domain.WeightRow) []domain.DailyTotals {
	byDay := make(map[string]*domain.DailyTotals)

	ensure := func(day time.Time) *domain.DailyTotals {
		key := domain.DayKey(day)
		t, ok := byDay[key]
		if !ok {
			t = &domain.DailyTotals{Day: domain.Midnight(day)}
			byDay[key] = t
		}
		return t
	}

	for _, r := range food {
		t := ensure(r.Day)
		t.ConsumedKcal += domain.SanitizeKcal(r.Kcal)
		t.HasFood = true
	}

	for _, r := range activity {
		t := ensure(r.Day)
		t.ActivityKcal += domain.SanitizeKcal(r.Kcal)
		t.HasActivity = true
	}

	for _, r := range weight {
		if !domain.ValidReading(r.WeightKg) {
			continue
		}
		t := ensure(r.Day)
		kg := r.WeightKg
		t.WeightKg = &kg
		t.BodyFatPct = r.BodyFatPct
		t.MusclePct = r.MusclePct
		t.HasWeight = true
	}

	totals := make([]domain.DailyTotals, 0, len(byDay))
	for _, t := range byDay {
		totals = append(totals, *t)
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Day.Before(totals[j].Day)
	})

	return totals
}
