package services

import (
	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// ProjectEnergyBalance walks the aggregated days in chronological order
// and derives two aligned series over the days that carry a food or
// activity entry:
//
//   - theoretical: the weight implied purely by logged energy balance,
//     anchored to the most recent actual reading. Each day accumulates
//     deficit = (tdee + activityKcal) - consumedKcal; the anchor valid at
//     the start of the day converts the accumulated deficit to kg at
//     domain.KcalPerKg. When a day carries a real reading the anchor
//     re-bases to it after that day's theoretical value is computed, and
//     the deficit accumulation restarts from there.
//   - actual: last-observation-carried-forward over real readings.
//
// Returns domain.ErrMissingAnchor when no usable reading exists at all;
// a projection without any baseline would be meaningless.
func ProjectEnergyBalance(totals []domain.DailyTotals, tdeeKcal float64) (actual, theoretical []domain.WeightPoint, err error) {
	days := make([]domain.DailyTotals, 0, len(totals))
	for _, t := range totals {
		if t.HasFood || t.HasActivity {
			days = append(days, t)
		}
	}

	anchor, ok := firstReading(days)
	if !ok {
		return nil, nil, domain.ErrMissingAnchor
	}

	actual = make([]domain.WeightPoint, 0, len(days))
	theoretical = make([]domain.WeightPoint, 0, len(days))

	carried := anchor
	cumulativeDeficit := 0.0

	for _, d := range days {
		deficit := (tdeeKcal + d.ActivityKcal) - d.ConsumedKcal
		cumulativeDeficit += deficit

		theoretical = append(theoretical, domain.WeightPoint{
			Day: d.Day,
			Kg:  anchor - cumulativeDeficit/domain.KcalPerKg,
		})

		// Re-base after computing the day: the theoretical value above
		// uses the anchor valid at the start of the day.
		if d.WeightKg != nil {
			anchor = *d.WeightKg
			carried = *d.WeightKg
			cumulativeDeficit = 0
		}

		actual = append(actual, domain.WeightPoint{Day: d.Day, Kg: carried})
	}

	return actual, theoretical, nil
}

// firstReading returns the earliest actual weight reading in the day set.
// Days before it anchor on it as well, so the actual series has a defined
// value from the first day on.
func firstReading(days []domain.DailyTotals) (float64, bool) {
	for _, d := range days {
		if d.WeightKg != nil {
			return *d.WeightKg, true
		}
	}
	return 0, false
}
