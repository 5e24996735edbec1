package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextStreak(t *testing.T) {
	jan1 := day(2024, time.January, 1)
	jan2 := day(2024, time.January, 2)
	jan4 := day(2024, time.January, 4)

	t.Run("Success: First completed day starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, domain.NextStreak(nil, jan1, true))
	})

	t.Run("Success: Consecutive completed day extends", func(t *testing.T) {
		prev := &domain.HabitDay{Day: jan1, Completed: true, Streak: 1}
		assert.Equal(t, 2, domain.NextStreak(prev, jan2, true))
	})

	t.Run("Success: Gap of a missing day resets to 1", func(t *testing.T) {
		prev := &domain.HabitDay{Day: jan2, Completed: true, Streak: 2}
		assert.Equal(t, 1, domain.NextStreak(prev, jan4, true))
	})

	t.Run("Success: Uncompleted previous day resets to 1", func(t *testing.T) {
		prev := &domain.HabitDay{Day: jan1, Completed: false, Streak: 0}
		assert.Equal(t, 1, domain.NextStreak(prev, jan2, true))
	})

	t.Run("Edge Case: Uncompleted day always carries 0", func(t *testing.T) {
		prev := &domain.HabitDay{Day: jan1, Completed: true, Streak: 5}
		assert.Equal(t, 0, domain.NextStreak(prev, jan2, false))
	})
}

func TestNewHabitDay(t *testing.T) {
	t.Run("Success: Completed derives from either log", func(t *testing.T) {
		row := domain.NewHabitDay("u1", day(2024, time.March, 10), true, false, nil)

		assert.True(t, row.Completed)
		assert.True(t, row.FoodLogged)
		assert.False(t, row.WeightLogged)
		assert.Equal(t, 1, row.Streak)
		assert.Equal(t, "u1", row.UserID)
	})

	t.Run("Success: Normalizes the day to midnight UTC", func(t *testing.T) {
		noisy := time.Date(2024, time.March, 10, 15, 42, 7, 0, time.UTC)
		row := domain.NewHabitDay("u1", noisy, false, true, nil)

		assert.Equal(t, day(2024, time.March, 10), row.Day)
	})

	t.Run("Edge Case: No logs means not completed, streak 0", func(t *testing.T) {
		row := domain.NewHabitDay("u1", day(2024, time.March, 10), false, false, nil)

		assert.False(t, row.Completed)
		assert.Equal(t, 0, row.Streak)
	})
}

func TestDayHelpers(t *testing.T) {
	t.Run("Success: IsNextDay across month boundary", func(t *testing.T) {
		assert.True(t, domain.IsNextDay(day(2024, time.January, 31), day(2024, time.February, 1)))
		assert.False(t, domain.IsNextDay(day(2024, time.January, 31), day(2024, time.February, 2)))
	})

	t.Run("Success: DayKey is the ISO calendar date", func(t *testing.T) {
		assert.Equal(t, "2024-02-29", domain.DayKey(day(2024, time.February, 29)))
	})

	t.Run("Fail: ParseDay rejects locale formats", func(t *testing.T) {
		_, err := domain.ParseDay("29.02.2024")
		assert.Error(t, err)
	})
}
