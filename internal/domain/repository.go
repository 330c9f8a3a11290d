package domain

import (
	"context"
	"time"
)

// FoodFilter narrows a food catalog query. Zero values mean "no filter".
type FoodFilter struct {
	Categories    []FoodCategory
	LocallyCommon bool
}

// ExerciseFilter narrows an exercise catalog query. Zero values mean "no filter".
type ExerciseFilter struct {
	Category    ExerciseCategory
	MuscleGroup string
	Equipment   []string
	Difficulty  Difficulty
}

// FoodCatalog provides read access to the food reference data
type FoodCatalog interface {
	ListFoods(ctx context.Context, filter FoodFilter) ([]FoodItem, error)
}

// ExerciseCatalog provides read access to the exercise reference data
type ExerciseCatalog interface {
	ListExercises(ctx context.Context, filter ExerciseFilter) ([]Exercise, error)
}

// ProfileRepository persists user profiles
type ProfileRepository interface {
	Get(ctx context.Context, id string) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
