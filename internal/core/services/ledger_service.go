package services

import (
	"context"
	"fmt"
	"time"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

// LedgerService maintains the habit ledger: one computed row per calendar
// day present in either the food or the weight log, with streaks and
// achievement unlocks. The incremental RecordDay path and the backfill
// replay share the same per-day transition (advanceDay), which is what
// makes a full reconstruction indistinguishable from having recorded each
// day as it happened.
type LedgerService struct {
	dayRepo domain.HabitDayRepository
}

func NewLedgerService(dayRepo domain.HabitDayRepository) *LedgerService {
	return &LedgerService{dayRepo: dayRepo}
}

// ledgerState is the cumulative state carried from day to day: the
// previous row, counters before the current day, and every achievement id
// unlocked so far.
type ledgerState struct {
	prev     *domain.HabitDay
	counters domain.Counters
	unlocked map[string]bool
}

func newLedgerState() *ledgerState {
	return &ledgerState{unlocked: make(map[string]bool)}
}

// observe folds an already-computed row into the state without
// re-deriving it. Used to rebuild state from persisted history.
func (st *ledgerState) observe(row *domain.HabitDay) {
	if row.Completed {
		st.counters.CompletedDays++
	}
	if row.FoodLogged {
		st.counters.FoodDays++
	}
	if row.WeightLogged {
		st.counters.WeightDays++
	}
	for _, id := range row.Achievements {
		st.unlocked[id] = true
	}
	st.prev = row
}

// advanceDay computes the full ledger row for one day and advances the
// state past it. carried holds achievement ids already attributed to this
// day by an earlier computation; unlocks are monotonic, so an overwrite
// never takes them away.
func (st *ledgerState) advanceDay(userID string, day time.Time, foodLogged, weightLogged bool, carried []string) *domain.HabitDay {
	row := domain.NewHabitDay(userID, day, foodLogged, weightLogged, st.prev)

	if row.Completed {
		st.counters.CompletedDays++
	}
	if row.FoodLogged {
		st.counters.FoodDays++
	}
	if row.WeightLogged {
		st.counters.WeightDays++
	}

	asOfDay := st.counters
	asOfDay.Streak = row.Streak
	asOfDay.PerfectDay = row.FoodLogged && row.WeightLogged

	for _, id := range carried {
		st.unlocked[id] = true
		row.Achievements = append(row.Achievements, id)
	}

	for _, def := range domain.Achievements() {
		if st.unlocked[def.ID] {
			continue
		}
		if def.Predicate(asOfDay) {
			st.unlocked[def.ID] = true
			row.Achievements = append(row.Achievements, def.ID)
		}
	}

	st.prev = row
	return row
}

// RecordDay upserts the ledger row for one calendar day, overwriting any
// existing row for that date. The streak derives from the previous
// calendar day's stored row; achievement predicates see the cumulative
// counters as of the recorded day.
func (s *LedgerService) RecordDay(ctx context.Context, userID string, day time.Time, foodLogged, weightLogged bool) (*domain.HabitDay, error) {
	day = domain.Midnight(day)

	history, err := s.dayRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger: loading history: %w", err)
	}

	st := newLedgerState()
	var carried []string
	var prev *domain.HabitDay

	for _, row := range history {
		if row.Day.Equal(day) {
			// Overwritten row: its counters are replaced, its unlocks are
			// permanent.
			carried = row.Achievements
			for _, id := range row.Achievements {
				st.unlocked[id] = true
			}
			continue
		}
		if row.Day.Before(day) {
			st.observe(row)
			if prev == nil || row.Day.After(prev.Day) {
				prev = row
			}
		} else {
			// Rows after the recorded day keep their unlocks alive but do
			// not feed the counters as of this day.
			for _, id := range row.Achievements {
				st.unlocked[id] = true
			}
		}
	}

	st.prev = prev
	row := st.advanceDay(userID, day, foodLogged, weightLogged, carried)

	if err := s.dayRepo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("ledger: storing day %s: %w", domain.DayKey(day), err)
	}

	return row, nil
}

// GetStats derives the habit report as of a given day. The current streak
// is the streak of the asOf row when that day is completed, 0 otherwise;
// the longest streak is the maximum over all rows up to asOf.
func (s *LedgerService) GetStats(ctx context.Context, userID string, asOf time.Time) (*domain.HabitStats, error) {
	asOf = domain.Midnight(asOf)

	history, err := s.dayRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger: loading history: %w", err)
	}

	stats := &domain.HabitStats{
		Achievements: []domain.UnlockedAchievement{},
	}

	byKey := make(map[string]*domain.HabitDay, len(history))
	for _, row := range history {
		if row.Day.After(asOf) {
			continue
		}
		byKey[domain.DayKey(row.Day)] = row

		if row.Completed {
			stats.TotalCompletedDays++
		}
		if row.FoodLogged {
			stats.TotalFoodDays++
		}
		if row.WeightLogged {
			stats.TotalWeightDays++
		}
		if row.Streak > stats.LongestStreak {
			stats.LongestStreak = row.Streak
		}

		for _, id := range row.Achievements {
			def, ok := domain.AchievementByID(id)
			if !ok {
				continue
			}
			stats.Achievements = append(stats.Achievements, domain.UnlockedAchievement{
				ID:         def.ID,
				Title:      def.Title,
				Icon:       def.Icon,
				AchievedOn: row.Day,
			})
		}
	}

	if today, ok := byKey[domain.DayKey(asOf)]; ok && today.Completed {
		stats.CurrentStreak = today.Streak
	}

	stats.WeekData = make([]domain.WeekDay, 0, 7)
	for i := 6; i >= 0; i-- {
		d := asOf.AddDate(0, 0, -i)
		cell := domain.WeekDay{Day: d}
		if row, ok := byKey[domain.DayKey(d)]; ok {
			cell.Completed = row.Completed
		}
		stats.WeekData = append(stats.WeekData, cell)
	}

	return stats, nil
}
