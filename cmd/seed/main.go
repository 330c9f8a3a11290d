// Command seed loads the starter food and exercise catalogs into the
// database. Running it twice inserts duplicates; it is meant for a
// fresh database only.
package main

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/planfit/backend/config"
	"github.com/planfit/backend/internal/domain"
	"github.com/planfit/backend/internal/infrastructure/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := store.RunMigrations(cfg.Database.Path, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	foods := starterFoods()
	for _, f := range foods {
		f.ID = uuid.NewString()
		if err := db.InsertFood(ctx, f); err != nil {
			log.Fatalf("Failed to insert food %q: %v", f.Name, err)
		}
	}
	log.Printf("Seeded %d foods", len(foods))

	exercises := starterExercises()
	for _, e := range exercises {
		e.ID = uuid.NewString()
		if err := db.InsertExercise(ctx, e); err != nil {
			log.Fatalf("Failed to insert exercise %q: %v", e.Name, err)
		}
	}
	log.Printf("Seeded %d exercises", len(exercises))
}

func cost(pesos float64) *float64 {
	return &pesos
}

// starterFoods is a small Filipino-leaning catalog covering every food
// category the meal planner draws from.
func starterFoods() []domain.FoodItem {
	return []domain.FoodItem{
		{Name: "Chicken Adobo", LocalName: "Adobong Manok", Category: domain.CategoryProtein, ServingSize: "1 cup", Calories: 320, ProteinG: 28, CarbsG: 6, FatsG: 20, EstimatedCost: cost(65), LocallyCommon: true, Tags: []string{"ulam", "chicken"}},
		{Name: "Pork Sinigang", LocalName: "Sinigang na Baboy", Category: domain.CategoryProtein, ServingSize: "1 bowl", Calories: 280, ProteinG: 22, CarbsG: 10, FatsG: 16, EstimatedCost: cost(75), LocallyCommon: true, Tags: []string{"ulam", "soup", "pork"}},
		{Name: "Grilled Bangus", LocalName: "Inihaw na Bangus", Category: domain.CategoryProtein, ServingSize: "1 fillet", Calories: 200, ProteinG: 24, CarbsG: 0, FatsG: 11, EstimatedCost: cost(90), LocallyCommon: true, Tags: []string{"ulam", "fish"}},
		{Name: "Scrambled Egg", LocalName: "Tortang Itlog", Category: domain.CategoryProtein, ServingSize: "2 eggs", Calories: 180, ProteinG: 12, CarbsG: 2, FatsG: 14, EstimatedCost: cost(20), LocallyCommon: true, Tags: []string{"breakfast", "egg"}},
		{Name: "Tinolang Manok", Category: domain.CategoryProtein, ServingSize: "1 bowl", Calories: 220, ProteinG: 25, CarbsG: 8, FatsG: 10, EstimatedCost: cost(60), LocallyCommon: true, Tags: []string{"ulam", "soup", "chicken"}},
		{Name: "Steamed Rice", LocalName: "Kanin", Category: domain.CategoryGrains, ServingSize: "1 cup", Calories: 205, ProteinG: 4.3, CarbsG: 44.5, FatsG: 0.4, EstimatedCost: cost(10), LocallyCommon: true, Tags: []string{"staple"}},
		{Name: "Garlic Fried Rice", LocalName: "Sinangag", Category: domain.CategoryGrains, ServingSize: "1 cup", Calories: 250, ProteinG: 5, CarbsG: 45, FatsG: 6, EstimatedCost: cost(15), LocallyCommon: true, Tags: []string{"breakfast", "staple"}},
		{Name: "Pandesal", Category: domain.CategoryGrains, ServingSize: "2 pieces", Calories: 170, ProteinG: 5, CarbsG: 31, FatsG: 3, EstimatedCost: cost(10), LocallyCommon: true, Tags: []string{"breakfast", "bread"}},
		{Name: "Lugaw", Category: domain.CategoryGrains, ServingSize: "1 bowl", Calories: 150, ProteinG: 3, CarbsG: 32, FatsG: 1, EstimatedCost: cost(25), LocallyCommon: true, Tags: []string{"breakfast", "merienda"}},
		{Name: "Pancit Canton", Category: domain.CategoryGrains, ServingSize: "1 cup", Calories: 240, ProteinG: 9, CarbsG: 35, FatsG: 7, EstimatedCost: cost(40), LocallyCommon: true, Tags: []string{"merienda", "noodles"}},
		{Name: "Fresh Milk", Category: domain.CategoryDairy, ServingSize: "1 glass", Calories: 122, ProteinG: 8, CarbsG: 12, FatsG: 4.8, EstimatedCost: cost(30)},
		{Name: "Kesong Puti", Category: domain.CategoryDairy, ServingSize: "50 g", Calories: 90, ProteinG: 6, CarbsG: 2, FatsG: 6.5, EstimatedCost: cost(35), LocallyCommon: true, Tags: []string{"cheese"}},
		{Name: "Banana", LocalName: "Saging", Category: domain.CategoryFruit, ServingSize: "1 medium", Calories: 105, ProteinG: 1.3, CarbsG: 27, FatsG: 0.4, EstimatedCost: cost(8), LocallyCommon: true},
		{Name: "Mango", LocalName: "Mangga", Category: domain.CategoryFruit, ServingSize: "1 cup sliced", Calories: 99, ProteinG: 1.4, CarbsG: 25, FatsG: 0.6, EstimatedCost: cost(25), LocallyCommon: true},
		{Name: "Papaya", Category: domain.CategoryFruit, ServingSize: "1 cup", Calories: 55, ProteinG: 0.9, CarbsG: 14, FatsG: 0.2, EstimatedCost: cost(15), LocallyCommon: true},
		{Name: "Sauteed Kangkong", LocalName: "Ginisang Kangkong", Category: domain.CategoryVegetable, ServingSize: "1 cup", Calories: 60, ProteinG: 3, CarbsG: 7, FatsG: 2.5, EstimatedCost: cost(20), LocallyCommon: true, Tags: []string{"gulay"}},
		{Name: "Pinakbet", Category: domain.CategoryVegetable, ServingSize: "1 cup", Calories: 110, ProteinG: 4, CarbsG: 14, FatsG: 4, EstimatedCost: cost(35), LocallyCommon: true, Tags: []string{"gulay"}},
		{Name: "Monggo Guisado", LocalName: "Ginisang Munggo", Category: domain.CategoryVegetable, ServingSize: "1 cup", Calories: 190, ProteinG: 12, CarbsG: 28, FatsG: 3, EstimatedCost: cost(30), LocallyCommon: true, Tags: []string{"gulay", "legume"}},
		{Name: "Turon", Category: domain.CategorySnack, ServingSize: "1 piece", Calories: 150, ProteinG: 1, CarbsG: 26, FatsG: 5, EstimatedCost: cost(12), LocallyCommon: true, Tags: []string{"merienda"}},
		{Name: "Boiled Saba", LocalName: "Nilagang Saba", Category: domain.CategorySnack, ServingSize: "2 pieces", Calories: 140, ProteinG: 1.2, CarbsG: 36, FatsG: 0.3, EstimatedCost: cost(10), LocallyCommon: true, Tags: []string{"merienda"}},
		{Name: "Peanuts", LocalName: "Mani", Category: domain.CategorySnack, ServingSize: "30 g", Calories: 170, ProteinG: 7, CarbsG: 6, FatsG: 14, EstimatedCost: cost(15), LocallyCommon: true},
		{Name: "Taho", Category: domain.CategoryBeverage, ServingSize: "1 cup", Calories: 120, ProteinG: 6, CarbsG: 20, FatsG: 2, EstimatedCost: cost(20), LocallyCommon: true, Tags: []string{"merienda"}},
		{Name: "Buko Juice", Category: domain.CategoryBeverage, ServingSize: "1 glass", Calories: 45, ProteinG: 0.5, CarbsG: 11, FatsG: 0, EstimatedCost: cost(25), LocallyCommon: true},
		{Name: "Coconut Oil", Category: domain.CategoryFats, ServingSize: "1 tbsp", Calories: 120, ProteinG: 0, CarbsG: 0, FatsG: 13.5, EstimatedCost: cost(8), LocallyCommon: true},
		{Name: "Avocado", Category: domain.CategoryFats, ServingSize: "half", Calories: 160, ProteinG: 2, CarbsG: 8.5, FatsG: 14.7, EstimatedCost: cost(30), LocallyCommon: true},
	}
}

// starterExercises covers every muscle group the split templates target,
// with a mix of compound and isolation movements plus cardio and
// flexibility options.
func starterExercises() []domain.Exercise {
	return []domain.Exercise{
		{Name: "Barbell Bench Press", Category: domain.CategoryStrength, MuscleGroups: []string{"chest", "triceps", "shoulders"}, Equipment: []string{"barbell", "bench"}, Difficulty: domain.DifficultyIntermediate, Instructions: "Lower the bar to mid-chest and press back up without bouncing."},
		{Name: "Push-Up", Category: domain.CategoryStrength, MuscleGroups: []string{"chest", "triceps", "core"}, Difficulty: domain.DifficultyBeginner, Instructions: "Keep a straight line from head to heels."},
		{Name: "Dumbbell Fly", Category: domain.CategoryStrength, MuscleGroups: []string{"chest"}, Equipment: []string{"dumbbell", "bench"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Pull-Up", Category: domain.CategoryStrength, MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"pull-up bar"}, Difficulty: domain.DifficultyIntermediate, Tips: "Use a band for assistance if needed."},
		{Name: "Barbell Row", Category: domain.CategoryStrength, MuscleGroups: []string{"back", "biceps"}, Equipment: []string{"barbell"}, Difficulty: domain.DifficultyIntermediate},
		{Name: "Lat Pulldown", Category: domain.CategoryStrength, MuscleGroups: []string{"back"}, Equipment: []string{"cable machine"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Barbell Squat", Category: domain.CategoryStrength, MuscleGroups: []string{"quads", "glutes", "hamstrings"}, Equipment: []string{"barbell", "squat rack"}, Difficulty: domain.DifficultyIntermediate, Instructions: "Descend until thighs are at least parallel."},
		{Name: "Bodyweight Squat", Category: domain.CategoryStrength, MuscleGroups: []string{"quads", "glutes", "legs"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Romanian Deadlift", Category: domain.CategoryStrength, MuscleGroups: []string{"hamstrings", "glutes", "back"}, Equipment: []string{"barbell"}, Difficulty: domain.DifficultyIntermediate},
		{Name: "Walking Lunge", Category: domain.CategoryStrength, MuscleGroups: []string{"quads", "glutes", "legs"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Leg Curl", Category: domain.CategoryStrength, MuscleGroups: []string{"hamstrings"}, Equipment: []string{"machine"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Standing Calf Raise", Category: domain.CategoryStrength, MuscleGroups: []string{"calves"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Overhead Press", Category: domain.CategoryStrength, MuscleGroups: []string{"shoulders", "triceps"}, Equipment: []string{"barbell"}, Difficulty: domain.DifficultyIntermediate},
		{Name: "Lateral Raise", Category: domain.CategoryStrength, MuscleGroups: []string{"shoulders"}, Equipment: []string{"dumbbell"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Barbell Curl", Category: domain.CategoryStrength, MuscleGroups: []string{"biceps"}, Equipment: []string{"barbell"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Tricep Pushdown", Category: domain.CategoryStrength, MuscleGroups: []string{"triceps"}, Equipment: []string{"cable machine"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Plank", Category: domain.CategoryStrength, MuscleGroups: []string{"core"}, Difficulty: domain.DifficultyBeginner, Tips: "Brace as if about to take a punch."},
		{Name: "Hanging Leg Raise", Category: domain.CategoryStrength, MuscleGroups: []string{"core"}, Equipment: []string{"pull-up bar"}, Difficulty: domain.DifficultyIntermediate},
		{Name: "Jogging", Category: domain.CategoryCardio, MuscleGroups: []string{"legs"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Jump Rope", Category: domain.CategoryCardio, MuscleGroups: []string{"legs", "calves"}, Equipment: []string{"jump rope"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Hamstring Stretch", Category: domain.CategoryFlexibility, MuscleGroups: []string{"hamstrings"}, Difficulty: domain.DifficultyBeginner},
		{Name: "Hip Flexor Stretch", Category: domain.CategoryFlexibility, MuscleGroups: []string{"quads"}, Difficulty: domain.DifficultyBeginner},
	}
}
