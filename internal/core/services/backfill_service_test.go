package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteoruffino/progress-engine/internal/adapters/repository"
	"github.com/matteoruffino/progress-engine/internal/core/domain"
	"github.com/matteoruffino/progress-engine/internal/core/services"
)

func TestBackfillService_Backfill(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Rebuilds the ledger from raw logs", func(t *testing.T) {
		food := repository.NewInMemoryFoodLog()
		weight := repository.NewInMemoryWeightLog()
		dayRepo := repository.NewInMemoryHabitDayRepository()
		svc := services.NewBackfillService(food, weight, dayRepo)

		food.Add("u1", day(2024, time.March, 1), 1800)
		food.Add("u1", day(2024, time.March, 2), 2000)
		weight.Add("u1", day(2024, time.March, 2), 80)
		food.Add("u1", day(2024, time.March, 4), 1900)

		rows, err := svc.Backfill(ctx, "u1", day(2024, time.March, 10))

		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, []int{1, 2, 1}, []int{rows[0].Streak, rows[1].Streak, rows[2].Streak})
		assert.Contains(t, rows[0].Achievements, "first_step")
		assert.Contains(t, rows[1].Achievements, "perfect_day")

		stored, err := dayRepo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, stored, 3)
	})

	t.Run("Success: Running twice yields identical rows", func(t *testing.T) {
		food := repository.NewInMemoryFoodLog()
		weight := repository.NewInMemoryWeightLog()
		dayRepo := repository.NewInMemoryHabitDayRepository()
		svc := services.NewBackfillService(food, weight, dayRepo)

		for i := 0; i < 10; i++ {
			food.Add("u1", day(2024, time.March, 1+i), 1800)
		}
		weight.Add("u1", day(2024, time.March, 5), 80)

		first, err := svc.Backfill(ctx, "u1", day(2024, time.March, 31))
		require.NoError(t, err)
		second, err := svc.Backfill(ctx, "u1", day(2024, time.March, 31))
		require.NoError(t, err)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, *first[i], *second[i], "row %s", domain.DayKey(first[i].Day))
		}
	})

	t.Run("Success: Replaces stale state instead of merging it", func(t *testing.T) {
		food := repository.NewInMemoryFoodLog()
		weight := repository.NewInMemoryWeightLog()
		dayRepo := repository.NewInMemoryHabitDayRepository()
		svc := services.NewBackfillService(food, weight, dayRepo)

		require.NoError(t, dayRepo.Upsert(ctx, domain.NewHabitDay("u1", day(2024, time.February, 1), true, true, nil)))

		food.Add("u1", day(2024, time.March, 1), 1800)

		_, err := svc.Backfill(ctx, "u1", day(2024, time.March, 31))
		require.NoError(t, err)

		_, err = dayRepo.GetByDay(ctx, "u1", day(2024, time.February, 1))
		assert.ErrorIs(t, err, domain.ErrHabitDayNotFound)
	})

	t.Run("Success: Rows past asOf stay out of the rebuild", func(t *testing.T) {
		food := repository.NewInMemoryFoodLog()
		weight := repository.NewInMemoryWeightLog()
		svc := services.NewBackfillService(food, weight, repository.NewInMemoryHabitDayRepository())

		food.Add("u1", day(2024, time.March, 1), 1800)
		food.Add("u1", day(2024, time.April, 1), 1800)

		rows, err := svc.Backfill(ctx, "u1", day(2024, time.March, 15))

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, day(2024, time.March, 1), rows[0].Day)
	})

	t.Run("Edge Case: No logs at all produces an empty ledger", func(t *testing.T) {
		svc := services.NewBackfillService(
			repository.NewInMemoryFoodLog(),
			repository.NewInMemoryWeightLog(),
			repository.NewInMemoryHabitDayRepository(),
		)

		rows, err := svc.Backfill(ctx, "u1", day(2024, time.March, 31))

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

// A full-history replay and an incremental day-by-day recording must agree
// row for row; the habit report cannot depend on which path produced it.
func TestBackfillMatchesIncrementalRecording(t *testing.T) {
	ctx := context.Background()

	inputs := []struct {
		d            time.Time
		food, weight bool
	}{
		{day(2024, time.March, 1), true, false},
		{day(2024, time.March, 2), true, true},
		{day(2024, time.March, 3), true, false},
		{day(2024, time.March, 5), false, true},
		{day(2024, time.March, 6), true, false},
		{day(2024, time.March, 7), true, true},
		{day(2024, time.March, 8), true, false},
	}

	food := repository.NewInMemoryFoodLog()
	weight := repository.NewInMemoryWeightLog()
	for _, in := range inputs {
		if in.food {
			food.Add("u1", in.d, 1800)
		}
		if in.weight {
			weight.Add("u1", in.d, 80)
		}
	}

	backfillSvc := services.NewBackfillService(food, weight, repository.NewInMemoryHabitDayRepository())
	replayed, err := backfillSvc.Backfill(ctx, "u1", day(2024, time.March, 31))
	require.NoError(t, err)

	incrementalRepo := repository.NewInMemoryHabitDayRepository()
	ledgerSvc := services.NewLedgerService(incrementalRepo)
	for _, in := range inputs {
		_, err := ledgerSvc.RecordDay(ctx, "u1", in.d, in.food, in.weight)
		require.NoError(t, err)
	}
	recorded, err := incrementalRepo.ListByUser(ctx, "u1")
	require.NoError(t, err)

	require.Equal(t, len(replayed), len(recorded))
	for i := range replayed {
		assert.Equal(t, *replayed[i], *recorded[i], "row %s", domain.DayKey(replayed[i].Day))
	}
}
