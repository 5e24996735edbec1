package domain

import "time"

// Counters is the cumulative ledger state an achievement predicate sees,
// valid as of a single day. PerfectDay refers to that specific day only.
type Counters struct {
	CompletedDays int
	FoodDays      int
	WeightDays    int
	Streak        int
	PerfectDay    bool
}

// AchievementDef is one static rule. Unlocks are monotonic: once a
// predicate holds on a day, the achievement stays unlocked with that day
// as its achieved date, regardless of what later counters look like.
type AchievementDef struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Predicate   func(Counters) bool `json:"-"`
}

// UnlockedAchievement annotates an unlocked id with its first-unlock day.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Icon       string    `json:"icon"`
	AchievedOn time.Time `json:"achieved_on"`
}

// achievementTable is the fixed rule table. Order is the evaluation order
// and is part of the contract: changing it changes which row a multi-rule
// day attributes its unlocks to.
var achievementTable = []AchievementDef{
	{
		ID:          "first_step",
		Title:       "First Step",
		Description: "Log something for the first time",
		Icon:        "🌱",
		Predicate:   func(c Counters) bool { return c.CompletedDays >= 1 },
	},
	{
		ID:          "three_in_a_row",
		Title:       "Three in a Row",
		Description: "Keep a 3-day streak",
		Icon:        "🔥",
		Predicate:   func(c Counters) bool { return c.Streak >= 3 },
	},
	{
		ID:          "week_warrior",
		Title:       "Week Warrior",
		Description: "Keep a 7-day streak",
		Icon:        "⚔️",
		Predicate:   func(c Counters) bool { return c.Streak >= 7 },
	},
	{
		ID:          "fortnight_focus",
		Title:       "Fortnight Focus",
		Description: "Keep a 14-day streak",
		Icon:        "🎯",
		Predicate:   func(c Counters) bool { return c.Streak >= 14 },
	},
	{
		ID:          "monthly_master",
		Title:       "Monthly Master",
		Description: "Keep a 30-day streak",
		Icon:        "🏆",
		Predicate:   func(c Counters) bool { return c.Streak >= 30 },
	},
	{
		ID:          "food_explorer",
		Title:       "Food Explorer",
		Description: "Log food on 10 different days",
		Icon:        "🍎",
		Predicate:   func(c Counters) bool { return c.FoodDays >= 10 },
	},
	{
		ID:          "food_devotee",
		Title:       "Food Devotee",
		Description: "Log food on 50 different days",
		Icon:        "🥗",
		Predicate:   func(c Counters) bool { return c.FoodDays >= 50 },
	},
	{
		ID:          "scale_friend",
		Title:       "Friend of the Scale",
		Description: "Log your weight on 10 different days",
		Icon:        "⚖️",
		Predicate:   func(c Counters) bool { return c.WeightDays >= 10 },
	},
	{
		ID:          "perfect_day",
		Title:       "Perfect Day",
		Description: "Log both food and weight on the same day",
		Icon:        "✨",
		Predicate:   func(c Counters) bool { return c.PerfectDay },
	},
	{
		ID:          "century_club",
		Title:       "Century Club",
		Description: "Complete 100 days in total",
		Icon:        "💯",
		Predicate:   func(c Counters) bool { return c.CompletedDays >= 100 },
	},
}

// Achievements returns the rule table in evaluation order.
func Achievements() []AchievementDef {
	return achievementTable
}

// AchievementByID looks up a rule definition.
func AchievementByID(id string) (AchievementDef, bool) {
	for _, def := range achievementTable {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDef{}, false
}
