package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planfit/backend/internal/domain"
)

// newTestDB opens a migrated SQLite database in a temp directory
func newTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "planfit_test.db")
	require.NoError(t, RunMigrations(dbPath, "../../../migrations"))

	db, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFoods(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cost := 25.0
	foods := []domain.FoodItem{
		{ID: "f1", Name: "Steamed Rice", LocalName: "Kanin", Category: domain.CategoryGrains,
			ServingSize: "1 cup", Calories: 205, ProteinG: 4.3, CarbsG: 44.5, FatsG: 0.4,
			LocallyCommon: true, EstimatedCost: &cost},
		{ID: "f2", Name: "Chicken Adobo", Category: domain.CategoryProtein,
			ServingSize: "1 cup", Calories: 320, ProteinG: 28, CarbsG: 6, FatsG: 20,
			LocallyCommon: true, Tags: []string{"luzon", "visayas"}},
		{ID: "f3", Name: "Greek Yogurt", Category: domain.CategoryDairy,
			ServingSize: "1 cup", Calories: 130, ProteinG: 12, CarbsG: 9, FatsG: 4},
	}
	for _, f := range foods {
		require.NoError(t, db.InsertFood(ctx, f))
	}

	t.Run("lists all foods in insertion order", func(t *testing.T) {
		got, err := db.ListFoods(ctx, domain.FoodFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "f1", got[0].ID)
		assert.Equal(t, "Kanin", got[0].LocalName)
		require.NotNil(t, got[0].EstimatedCost)
		assert.Equal(t, 25.0, *got[0].EstimatedCost)
		assert.Equal(t, []string{"luzon", "visayas"}, got[1].Tags)
		assert.Nil(t, got[2].EstimatedCost)
	})

	t.Run("filters by category", func(t *testing.T) {
		got, err := db.ListFoods(ctx, domain.FoodFilter{
			Categories: []domain.FoodCategory{domain.CategoryGrains, domain.CategoryDairy},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "f1", got[0].ID)
		assert.Equal(t, "f3", got[1].ID)
	})

	t.Run("filters by locally common flag", func(t *testing.T) {
		got, err := db.ListFoods(ctx, domain.FoodFilter{LocallyCommon: true})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, f := range got {
			assert.True(t, f.LocallyCommon)
		}
	})
}

func TestExercises(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	exercises := []domain.Exercise{
		{ID: "e1", Name: "Barbell Squat", Category: domain.CategoryStrength,
			MuscleGroups: []string{"quads", "glutes"}, Equipment: []string{"barbell"},
			Difficulty: domain.DifficultyIntermediate},
		{ID: "e2", Name: "Push-Up", Category: domain.CategoryStrength,
			MuscleGroups: []string{"chest", "triceps"}, Difficulty: domain.DifficultyBeginner},
		{ID: "e3", Name: "Jogging", Category: domain.CategoryCardio,
			MuscleGroups: []string{"legs"}, Difficulty: domain.DifficultyBeginner},
	}
	for _, e := range exercises {
		require.NoError(t, db.InsertExercise(ctx, e))
	}

	t.Run("lists all exercises", func(t *testing.T) {
		got, err := db.ListExercises(ctx, domain.ExerciseFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("filters by category", func(t *testing.T) {
		got, err := db.ListExercises(ctx, domain.ExerciseFilter{Category: domain.CategoryCardio})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "e3", got[0].ID)
	})

	t.Run("filters by muscle group", func(t *testing.T) {
		got, err := db.ListExercises(ctx, domain.ExerciseFilter{MuscleGroup: "chest"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "e2", got[0].ID)
	})

	t.Run("equipment filter keeps bodyweight and matching exercises", func(t *testing.T) {
		got, err := db.ListExercises(ctx, domain.ExerciseFilter{Equipment: []string{"dumbbell"}})
		require.NoError(t, err)
		// Squat needs a barbell, which is not available; the bodyweight
		// push-up and jogging pass
		require.Len(t, got, 2)
		assert.Equal(t, "e2", got[0].ID)
		assert.Equal(t, "e3", got[1].ID)
	})
}

func TestProfiles(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	t.Run("missing profile returns ErrProfileNotFound", func(t *testing.T) {
		_, err := db.Get(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("saves and reloads a profile", func(t *testing.T) {
		p := &domain.Profile{
			ID: "u1",
			UserMetrics: domain.UserMetrics{
				Age: 25, Sex: domain.SexMale, WeightKg: 70, HeightCm: 175,
				ActivityLevel: domain.ActivityModeratelyActive, Goal: domain.GoalBulking,
			},
			WeeklyFrequency: 4,
			Equipment:       []string{"dumbbell", "barbell"},
		}
		require.NoError(t, db.Save(ctx, p))

		got, err := db.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, p.Age, got.Age)
		assert.Equal(t, p.Goal, got.Goal)
		assert.Equal(t, p.Equipment, got.Equipment)
		assert.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("save overwrites an existing profile", func(t *testing.T) {
		p := &domain.Profile{
			ID: "u1",
			UserMetrics: domain.UserMetrics{
				Age: 26, Sex: domain.SexMale, WeightKg: 73.5, HeightCm: 175,
				ActivityLevel: domain.ActivityVeryActive, Goal: domain.GoalMaintain,
			},
			WeeklyFrequency: 5,
		}
		require.NoError(t, db.Save(ctx, p))

		got, err := db.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 26, got.Age)
		assert.Equal(t, domain.GoalMaintain, got.Goal)
		assert.Equal(t, 5, got.WeeklyFrequency)
	})
}
