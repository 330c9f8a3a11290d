package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/planfit/backend/internal/domain"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

// CatalogService serves catalog reads, caching them in front of storage.
// Catalog data changes rarely, so a generous TTL is safe.
type CatalogService struct {
	foods     domain.FoodCatalog
	exercises domain.ExerciseCatalog
	cache     domain.CacheRepository
	cacheTTL  time.Duration
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(
	foods domain.FoodCatalog,
	exercises domain.ExerciseCatalog,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	return &CatalogService{
		foods:     foods,
		exercises: exercises,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// Foods returns catalog foods for the filter, from cache when possible
func (s *CatalogService) Foods(ctx context.Context, filter domain.FoodFilter) ([]domain.FoodItem, error) {
	key := foodCacheKey(filter)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		if foods, ok := cached.([]domain.FoodItem); ok {
			return foods, nil
		}
	}

	foods, err := s.foods.ListFoods(ctx, filter)
	if err != nil {
		return nil, err
	}

	// A failed cache write only costs the next read a storage trip
	_ = s.cache.Set(ctx, key, foods, s.cacheTTL)
	return foods, nil
}

// Exercises returns catalog exercises for the filter, from cache when possible
func (s *CatalogService) Exercises(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	key := exerciseCacheKey(filter)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		if exercises, ok := cached.([]domain.Exercise); ok {
			return exercises, nil
		}
	}

	exercises, err := s.exercises.ListExercises(ctx, filter)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, key, exercises, s.cacheTTL)
	return exercises, nil
}

// foodCacheKey derives a stable cache key from the filter.
// Format: "foods:{sorted categories}:{common flag}"
func foodCacheKey(filter domain.FoodFilter) string {
	cats := make([]string, len(filter.Categories))
	for i, c := range filter.Categories {
		cats[i] = string(c)
	}
	sort.Strings(cats)
	return fmt.Sprintf("foods:%s:%t", strings.Join(cats, ","), filter.LocallyCommon)
}

// exerciseCacheKey derives a stable cache key from the filter.
// Format: "exercises:{category}:{muscle}:{difficulty}:{sorted equipment}"
func exerciseCacheKey(filter domain.ExerciseFilter) string {
	equipment := append([]string(nil), filter.Equipment...)
	sort.Strings(equipment)
	return fmt.Sprintf("exercises:%s:%s:%s:%s",
		filter.Category, filter.MuscleGroup, filter.Difficulty, strings.Join(equipment, ","))
}
