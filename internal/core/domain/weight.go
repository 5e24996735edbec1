package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingAnchor    = errors.New("no weight reading recorded, projection has no anchor")
	ErrInsufficientData = errors.New("not enough data points to fit a trend")
	ErrInvalidTDEE      = errors.New("tdee must be a positive number of kcal")
	ErrSettingsNotFound = errors.New("user settings not found")
)

// KcalPerKg is the fixed energy content assumed per kg of body mass.
// It is deliberately not configurable per user; only TDEE is.
const KcalPerKg = 7700.0

type WeightPoint struct {
	Day time.Time `json:"day"`
	Kg  float64   `json:"kg"`
}

// Settings is the scalar configuration the engine reads from the storage
// collaborator.
type Settings struct {
	UserID       string   `json:"user_id" db:"user_id"`
	TDEEKcal     float64  `json:"tdee_kcal" db:"tdee_kcal"`
	GoalWeightKg *float64 `json:"goal_weight_kg,omitempty" db:"goal_weight_kg"`
}

func (s *Settings) Validate() error {
	if s.TDEEKcal <= 0 {
		return ErrInvalidTDEE
	}
	return nil
}

// WeightView is the derived read-only weight report. All four series share
// the same day index: the sorted set of days with any food or activity
// entry.
type WeightView struct {
	Actual        []WeightPoint `json:"actual"`
	Theoretical   []WeightPoint `json:"theoretical"`
	Smoothed      []WeightPoint `json:"smoothed"`
	Trend         []WeightPoint `json:"trend"`
	SlopeKgPerDay float64       `json:"slope_kg_per_day"`
	GoalEtaDays   *int          `json:"goal_eta_days,omitempty"`
}
