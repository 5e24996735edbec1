package domain

import "time"

// WeekDay is one cell of the trailing 7-day completion strip.
type WeekDay struct {
	Day       time.Time `json:"day"`
	Completed bool      `json:"completed"`
}

// HabitStats is the derived habit report for one user as of a given day.
type HabitStats struct {
	CurrentStreak      int                   `json:"current_streak"`
	LongestStreak      int                   `json:"longest_streak"`
	TotalCompletedDays int                   `json:"total_completed_days"`
	TotalFoodDays      int                   `json:"total_food_days"`
	TotalWeightDays    int                   `json:"total_weight_days"`
	Achievements       []UnlockedAchievement `json:"achievements"`
	WeekData           []WeekDay             `json:"week_data"`
}
