package usecase

import (
	"errors"
	"testing"

	"github.com/planfit/backend/internal/domain"
)

// exerciseCatalog returns a pool covering every muscle group used by the
// split templates, with a mix of compound and isolation movements.
func exerciseCatalog() []domain.Exercise {
	return []domain.Exercise{
		{ID: "e1", Name: "Barbell Bench Press", Category: domain.CategoryStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}},
		{ID: "e2", Name: "Push-Up", Category: domain.CategoryStrength, MuscleGroups: []string{"chest", "triceps"}},
		{ID: "e3", Name: "Dumbbell Fly", Category: domain.CategoryStrength, MuscleGroups: []string{"chest"}},
		{ID: "e4", Name: "Pull-Up", Category: domain.CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
		{ID: "e5", Name: "Barbell Row", Category: domain.CategoryStrength, MuscleGroups: []string{"back", "biceps"}},
		{ID: "e6", Name: "Bicep Curl", Category: domain.CategoryStrength, MuscleGroups: []string{"biceps"}},
		{ID: "e7", Name: "Overhead Press", Category: domain.CategoryStrength, MuscleGroups: []string{"shoulders", "triceps"}},
		{ID: "e8", Name: "Lateral Raise", Category: domain.CategoryStrength, MuscleGroups: []string{"shoulders"}},
		{ID: "e9", Name: "Tricep Extension", Category: domain.CategoryStrength, MuscleGroups: []string{"triceps"}},
		{ID: "e10", Name: "Barbell Squat", Category: domain.CategoryStrength, MuscleGroups: []string{"quads", "glutes", "hamstrings", "legs"}},
		{ID: "e11", Name: "Romanian Deadlift", Category: domain.CategoryStrength, MuscleGroups: []string{"hamstrings", "glutes"}},
		{ID: "e12", Name: "Leg Extension", Category: domain.CategoryStrength, MuscleGroups: []string{"quads"}},
		{ID: "e13", Name: "Calf Raise", Category: domain.CategoryStrength, MuscleGroups: []string{"calves"}},
		{ID: "e14", Name: "Lunge", Category: domain.CategoryStrength, MuscleGroups: []string{"quads", "glutes", "legs"}},
		{ID: "e15", Name: "Plank", Category: domain.CategoryStrength, MuscleGroups: []string{"core"}},
		{ID: "e16", Name: "Jogging", Category: domain.CategoryCardio, MuscleGroups: []string{"legs"}},
		{ID: "e17", Name: "Hamstring Stretch", Category: domain.CategoryFlexibility, MuscleGroups: []string{"hamstrings"}},
	}
}

func TestGenerateWorkoutPlan(t *testing.T) {
	svc := NewWorkoutPlanService()

	t.Run("frequency 4 yields an upper/lower split with 4 days", func(t *testing.T) {
		plan, err := svc.GenerateWorkoutPlan(4, exerciseCatalog(), domain.GoalMaintain)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plan.Days) != 4 {
			t.Errorf("len(Days) = %d, want 4", len(plan.Days))
		}
		if plan.Split != domain.SplitUpperLower {
			t.Errorf("Split = %s, want %s", plan.Split, domain.SplitUpperLower)
		}
		if plan.Name != "Upper/Lower Split" {
			t.Errorf("Name = %q, want %q", plan.Name, "Upper/Lower Split")
		}
		wantFocus := []string{"Upper Body", "Lower Body", "Upper Body", "Lower Body"}
		for i, day := range plan.Days {
			if day.Focus != wantFocus[i] {
				t.Errorf("Days[%d].Focus = %q, want %q", i, day.Focus, wantFocus[i])
			}
		}
	})

	t.Run("frequency 6 yields push/pull/legs cycled over 6 days", func(t *testing.T) {
		plan, err := svc.GenerateWorkoutPlan(6, exerciseCatalog(), domain.GoalBulking)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plan.Days) != 6 {
			t.Errorf("len(Days) = %d, want 6", len(plan.Days))
		}
		if plan.Split != domain.SplitPushPullLegs {
			t.Errorf("Split = %s, want %s", plan.Split, domain.SplitPushPullLegs)
		}
		wantFocus := []string{"Push", "Pull", "Legs", "Push", "Pull", "Legs"}
		for i, day := range plan.Days {
			if day.Focus != wantFocus[i] {
				t.Errorf("Days[%d].Focus = %q, want %q", i, day.Focus, wantFocus[i])
			}
		}
	})

	t.Run("frequency above 6 is clamped", func(t *testing.T) {
		plan, err := svc.GenerateWorkoutPlan(7, exerciseCatalog(), domain.GoalMaintain)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plan.Days) != 6 {
			t.Errorf("len(Days) = %d, want 6 (clamped)", len(plan.Days))
		}
	})

	t.Run("low frequency repeats full-body days", func(t *testing.T) {
		plan, err := svc.GenerateWorkoutPlan(2, exerciseCatalog(), domain.GoalMaintain)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Split != domain.SplitFullBody {
			t.Errorf("Split = %s, want %s", plan.Split, domain.SplitFullBody)
		}
		if len(plan.Days) != 2 {
			t.Fatalf("len(Days) = %d, want 2", len(plan.Days))
		}
		for i, day := range plan.Days {
			if day.Focus != "Full Body" {
				t.Errorf("Days[%d].Focus = %q, want Full Body", i, day.Focus)
			}
		}
		if plan.Days[0].DayOfWeek != "Monday" || plan.Days[1].DayOfWeek != "Tuesday" {
			t.Errorf("days assigned to %s/%s, want Monday/Tuesday",
				plan.Days[0].DayOfWeek, plan.Days[1].DayOfWeek)
		}
	})

	t.Run("rejects frequency below 1", func(t *testing.T) {
		_, err := svc.GenerateWorkoutPlan(0, exerciseCatalog(), domain.GoalMaintain)
		if !errors.Is(err, domain.ErrInvalidFrequency) {
			t.Errorf("error = %v, want ErrInvalidFrequency", err)
		}
	})

	t.Run("rejects unknown goal", func(t *testing.T) {
		_, err := svc.GenerateWorkoutPlan(3, exerciseCatalog(), domain.Goal("tone"))
		if !errors.Is(err, domain.ErrUnknownGoal) {
			t.Errorf("error = %v, want ErrUnknownGoal", err)
		}
	})

	t.Run("cutting trims per-day and per-group volume", func(t *testing.T) {
		plan, err := svc.GenerateWorkoutPlan(4, exerciseCatalog(), domain.GoalCutting)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, day := range plan.Days {
			if len(day.Exercises) > dayExerciseCapCutting {
				t.Errorf("%s: %d exercises, want at most %d", day.Focus, len(day.Exercises), dayExerciseCapCutting)
			}
		}
	})

	t.Run("empty catalog yields empty days without error", func(t *testing.T) {
		plan, err := svc.GenerateWorkoutPlan(4, nil, domain.GoalMaintain)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, day := range plan.Days {
			if len(day.Exercises) != 0 {
				t.Errorf("%s: %d exercises, want 0", day.Focus, len(day.Exercises))
			}
		}
	})
}

func TestBuildDaySelection(t *testing.T) {
	svc := NewWorkoutPlanService()

	t.Run("compound movements come before isolation for a muscle group", func(t *testing.T) {
		day := svc.buildDay("Monday", pushDay, exerciseCatalog(), domain.GoalBulking)
		if len(day.Exercises) == 0 {
			t.Fatal("expected a populated day")
		}
		// Chest is the first push muscle; the bench press (3 muscle
		// groups) must be picked ahead of the isolation fly
		if day.Exercises[0].Exercise.ID != "e1" {
			t.Errorf("first exercise = %s, want e1 (compound)", day.Exercises[0].Exercise.ID)
		}
	})

	t.Run("no exercise is selected twice in one day", func(t *testing.T) {
		day := svc.buildDay("Monday", pushDay, exerciseCatalog(), domain.GoalBulking)
		seen := make(map[string]bool)
		for _, we := range day.Exercises {
			if seen[we.Exercise.ID] {
				t.Errorf("exercise %s selected twice", we.Exercise.ID)
			}
			seen[we.Exercise.ID] = true
		}
	})

	t.Run("missing muscle group contributes nothing", func(t *testing.T) {
		catalog := []domain.Exercise{
			{ID: "only", Name: "Bicep Curl", Category: domain.CategoryStrength, MuscleGroups: []string{"biceps"}},
		}
		day := svc.buildDay("Monday", pushDay, catalog, domain.GoalMaintain)
		if len(day.Exercises) != 0 {
			t.Errorf("got %d exercises, want 0 (no push muscles in catalog)", len(day.Exercises))
		}
	})
}

func TestPrescribe(t *testing.T) {
	compound := domain.Exercise{ID: "c", Category: domain.CategoryStrength, MuscleGroups: []string{"chest", "triceps"}}
	isolation := domain.Exercise{ID: "i", Category: domain.CategoryStrength, MuscleGroups: []string{"biceps"}}

	t.Run("strength bulking compound", func(t *testing.T) {
		we := prescribe(compound, domain.GoalBulking)
		if we.Sets != 4 || we.Reps != "6-8" || we.RestSeconds != 180 {
			t.Errorf("got %d x %q rest %d, want 4 x 6-8 rest 180", we.Sets, we.Reps, we.RestSeconds)
		}
	})

	t.Run("strength bulking isolation", func(t *testing.T) {
		we := prescribe(isolation, domain.GoalBulking)
		if we.Sets != 3 || we.Reps != "8-12" || we.RestSeconds != 180 {
			t.Errorf("got %d x %q rest %d, want 3 x 8-12 rest 180", we.Sets, we.Reps, we.RestSeconds)
		}
	})

	t.Run("strength cutting", func(t *testing.T) {
		we := prescribe(compound, domain.GoalCutting)
		if we.Sets != 3 || we.Reps != "12-15" || we.RestSeconds != 90 {
			t.Errorf("got %d x %q rest %d, want 3 x 12-15 rest 90", we.Sets, we.Reps, we.RestSeconds)
		}
	})

	t.Run("cardio prescription is goal independent", func(t *testing.T) {
		cardio := domain.Exercise{ID: "j", Category: domain.CategoryCardio, MuscleGroups: []string{"legs"}}
		for _, goal := range []domain.Goal{domain.GoalBulking, domain.GoalCutting, domain.GoalMaintain} {
			we := prescribe(cardio, goal)
			if we.Sets != 1 || we.Reps != "20-30 minutes" || we.RestSeconds != 60 {
				t.Errorf("%s: got %d x %q rest %d, want 1 x 20-30 minutes rest 60", goal, we.Sets, we.Reps, we.RestSeconds)
			}
		}
	})

	t.Run("volume table covers every category and goal", func(t *testing.T) {
		categories := []domain.ExerciseCategory{domain.CategoryStrength, domain.CategoryCardio, domain.CategoryFlexibility}
		goals := []domain.Goal{domain.GoalBulking, domain.GoalCutting, domain.GoalMaintain}
		for _, cat := range categories {
			for _, goal := range goals {
				cell, ok := volumeTable[prescriptionKey{Category: cat, Goal: goal}]
				if !ok {
					t.Errorf("no table entry for %s/%s", cat, goal)
					continue
				}
				if cell.Compound.Sets == 0 || cell.Isolation.Sets == 0 {
					t.Errorf("%s/%s: incomplete prescription %+v", cat, goal, cell)
				}
			}
		}
	})
}

func TestEstimateDuration(t *testing.T) {
	t.Run("single compound bulking lift", func(t *testing.T) {
		exercises := []domain.WorkoutExercise{
			{Sets: 4, Reps: "6-8", RestSeconds: 180},
		}
		// 4 sets x 1.5 min + 180s x 3 rests / 60 + 10 warm-up = 25
		if got := estimateDuration(exercises); got != 25 {
			t.Errorf("duration = %d, want 25", got)
		}
	})

	t.Run("empty day has zero duration", func(t *testing.T) {
		if got := estimateDuration(nil); got != 0 {
			t.Errorf("duration = %d, want 0", got)
		}
	})
}
