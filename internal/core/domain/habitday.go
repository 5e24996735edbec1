package domain

import "time"

// HabitDay is one fully computed ledger row. The engine owns the
// computation; the storage collaborator only stores rows, overwriting by
// (user, day). Achievements holds the ids first unlocked on this day, so
// the first-unlock date of any achievement is the day of the row carrying
// its id.
type HabitDay struct {
	UserID       string    `json:"user_id" db:"user_id"`
	Day          time.Time `json:"day" db:"day"`
	FoodLogged   bool      `json:"food_logged" db:"food_logged"`
	WeightLogged bool      `json:"weight_logged" db:"weight_logged"`
	Completed    bool      `json:"completed" db:"completed"`
	Streak       int       `json:"streak" db:"streak"`
	Achievements []string  `json:"achievements" db:"-"`
}

// NextStreak applies the streak recurrence: a completed day extends the
// streak only when the previous calendar day exists and is completed;
// any gap (missing or uncompleted day) restarts at 1. Uncompleted days
// carry 0.
func NextStreak(prev *HabitDay, day time.Time, completed bool) int {
	if !completed {
		return 0
	}
	if prev != nil && prev.Completed && IsNextDay(prev.Day, day) {
		return prev.Streak + 1
	}
	return 1
}

// NewHabitDay builds the row for one day from its log flags and the
// previous calendar day's row (nil when absent).
func NewHabitDay(userID string, day time.Time, foodLogged, weightLogged bool, prev *HabitDay) *HabitDay {
	completed := foodLogged || weightLogged
	return &HabitDay{
		UserID:       userID,
		Day:          Midnight(day),
		FoodLogged:   foodLogged,
		WeightLogged: weightLogged,
		Completed:    completed,
		Streak:       NextStreak(prev, day, completed),
	}
}
