package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matteoruffino/progress-engine/internal/core/domain"
)

var _ domain.HabitDayRepository = (*CachedHabitDayRepository)(nil)

// CachedHabitDayRepository is a read-through cache over the full ledger
// listing, which every stats computation and incremental record hits.
// Writes invalidate; reads fall back to the inner repository on any cache
// trouble.
type CachedHabitDayRepository struct {
	next  domain.HabitDayRepository
	cache *redis.Client
}

func NewCachedHabitDayRepository(next domain.HabitDayRepository, cache *redis.Client) *CachedHabitDayRepository {
	return &CachedHabitDayRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedHabitDayRepository) cacheKey(userID string) string {
	return fmt.Sprintf("habitdays:%s", userID)
}

func (r *CachedHabitDayRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userID, err)
	}
}

func (r *CachedHabitDayRepository) ListByUser(ctx context.Context, userID string) ([]*domain.HabitDay, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var days []*domain.HabitDay
		if err := json.Unmarshal([]byte(val), &days); err == nil {
			return days, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	days, err := r.next.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(days); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return days, nil
}

func (r *CachedHabitDayRepository) GetByDay(ctx context.Context, userID string, day time.Time) (*domain.HabitDay, error) {
	return r.next.GetByDay(ctx, userID, day)
}

func (r *CachedHabitDayRepository) Upsert(ctx context.Context, day *domain.HabitDay) error {
	if err := r.next.Upsert(ctx, day); err != nil {
		return err
	}
	r.invalidate(ctx, day.UserID)
	return nil
}

func (r *CachedHabitDayRepository) DeleteByUser(ctx context.Context, userID string) error {
	if err := r.next.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}
