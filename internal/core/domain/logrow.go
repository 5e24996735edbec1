package domain

import (
	"math"
	"time"
)

// Raw log rows as delivered by the storage collaborator. The engine reads
// them once per computation and treats the slice as an immutable snapshot;
// it never mutates or re-reads a log mid-run.

type FoodRow struct {
	ID     string    `json:"id" db:"id"`
	UserID string    `json:"user_id" db:"user_id"`
	Day    time.Time `json:"day" db:"day"`
	Kcal   float64   `json:"kcal" db:"kcal"`
}

type ActivityRow struct {
	ID     string    `json:"id" db:"id"`
	UserID string    `json:"user_id" db:"user_id"`
	Day    time.Time `json:"day" db:"day"`
	Kcal   float64   `json:"kcal" db:"kcal"`
}

type WeightRow struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Day        time.Time `json:"day" db:"day"`
	WeightKg   float64   `json:"weight_kg" db:"weight_kg"`
	BodyFatPct *float64  `json:"body_fat_pct,omitempty" db:"body_fat_pct"`
	MusclePct  *float64  `json:"muscle_pct,omitempty" db:"muscle_pct"`
}

// DailyTotals collapses every raw row of one calendar day. Derived, never
// stored. The Has* flags record which logs touched the day: the weight view
// runs over food/activity days, the habit ledger over food/weight days.
type DailyTotals struct {
	Day          time.Time `json:"day"`
	ConsumedKcal float64   `json:"consumed_kcal"`
	ActivityKcal float64   `json:"activity_kcal"`
	WeightKg     *float64  `json:"weight_kg,omitempty"`
	BodyFatPct   *float64  `json:"body_fat_pct,omitempty"`
	MusclePct    *float64  `json:"muscle_pct,omitempty"`
	HasFood      bool      `json:"has_food"`
	HasActivity  bool      `json:"has_activity"`
	HasWeight    bool      `json:"has_weight"`
}

// SanitizeKcal coerces non-finite kcal values to 0 so that one malformed
// row never poisons a whole aggregation.
func SanitizeKcal(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ValidReading reports whether a weight measurement is usable. Unusable
// readings are dropped at the aggregation boundary, not deeper in the
// pipeline.
func ValidReading(kg float64) bool {
	return !math.IsNaN(kg) && !math.IsInf(kg, 0) && kg > 0
}
