package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

func TestAchievementTable(t *testing.T) {
	t.Run("Success: Ids are unique and every rule has a predicate", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, def := range domain.Achievements() {
			assert.False(t, seen[def.ID], "duplicate id %s", def.ID)
			seen[def.ID] = true
			assert.NotEmpty(t, def.Title)
			assert.NotNil(t, def.Predicate)
		}
	})

	t.Run("Success: Lookup by id", func(t *testing.T) {
		def, ok := domain.AchievementByID("food_explorer")
		require.True(t, ok)
		assert.Equal(t, "Food Explorer", def.Title)

		_, ok = domain.AchievementByID("does_not_exist")
		assert.False(t, ok)
	})
}

func TestAchievementPredicates(t *testing.T) {
	pred := func(t *testing.T, id string) func(domain.Counters) bool {
		t.Helper()
		def, ok := domain.AchievementByID(id)
		require.True(t, ok)
		return def.Predicate
	}

	t.Run("Success: food_explorer unlocks at 10 food days", func(t *testing.T) {
		p := pred(t, "food_explorer")
		assert.False(t, p(domain.Counters{FoodDays: 9}))
		assert.True(t, p(domain.Counters{FoodDays: 10}))
	})

	t.Run("Success: week_warrior tracks the streak, not totals", func(t *testing.T) {
		p := pred(t, "week_warrior")
		assert.False(t, p(domain.Counters{CompletedDays: 100, Streak: 6}))
		assert.True(t, p(domain.Counters{CompletedDays: 7, Streak: 7}))
	})

	t.Run("Success: perfect_day looks only at that specific day", func(t *testing.T) {
		p := pred(t, "perfect_day")
		assert.False(t, p(domain.Counters{FoodDays: 50, WeightDays: 50}))
		assert.True(t, p(domain.Counters{PerfectDay: true}))
	})

	t.Run("Success: century_club unlocks at 100 completed days", func(t *testing.T) {
		p := pred(t, "century_club")
		assert.False(t, p(domain.Counters{CompletedDays: 99}))
		assert.True(t, p(domain.Counters{CompletedDays: 100}))
	})
}
