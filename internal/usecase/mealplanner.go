package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planfit/backend/internal/domain"
)

// mealCalorieShare fixes each meal slot's share of the daily targets.
// Shares sum to 1.0 and are not configurable.
var mealCalorieShare = map[domain.MealType]float64{
	domain.MealBreakfast: 0.25,
	domain.MealLunch:     0.35,
	domain.MealMerienda:  0.15,
	domain.MealDinner:    0.25,
}

// mealCategories is the category allow-list per meal slot
var mealCategories = map[domain.MealType][]domain.FoodCategory{
	domain.MealBreakfast: {domain.CategoryGrains, domain.CategoryProtein, domain.CategoryDairy, domain.CategoryFruit},
	domain.MealLunch:     {domain.CategoryGrains, domain.CategoryProtein, domain.CategoryVegetable, domain.CategoryFruit},
	domain.MealMerienda:  {domain.CategorySnack, domain.CategoryFruit, domain.CategoryDairy, domain.CategoryBeverage},
	domain.MealDinner:    {domain.CategoryGrains, domain.CategoryProtein, domain.CategoryVegetable, domain.CategoryFats},
}

// commonDishes holds curated name fragments of everyday local dishes per
// meal slot. Matching is case-insensitive substring over name and local
// name; items that match are tried before the rest of the catalog.
var commonDishes = map[domain.MealType][]string{
	domain.MealBreakfast: {
		"tapsilog", "longsilog", "tocilog", "pandesal", "champorado",
		"taho", "garlic rice", "daing", "scrambled egg", "boiled egg", "oatmeal",
	},
	domain.MealLunch: {
		"adobo", "sinigang", "tinola", "kare-kare", "pinakbet",
		"bistek", "afritada", "giniling", "steamed rice", "monggo",
	},
	domain.MealMerienda: {
		"banana cue", "turon", "puto", "kutsinta", "pan de coco",
		"halo-halo", "lugaw", "empanada", "ensaymada",
	},
	domain.MealDinner: {
		"adobo", "sinigang", "nilaga", "paksiw", "tortang",
		"ginisang", "inihaw", "steamed rice", "grilled",
	},
}

// Meal composition constants
const (
	// minMealCandidates is the floor below which the prioritized subset is
	// abandoned in favor of the full filtered set.
	minMealCandidates = 10
	// maxFoodsPerMeal caps how many items a single meal may hold
	maxFoodsPerMeal = 5
	// calorieFillGuard stops macro-source picks once this share of the
	// meal's calorie target has been reached.
	calorieFillGuard = 0.8
	// fatShortfallGuard triggers a fat-source pick while fat grams are
	// below this share of the meal's fat sub-target.
	fatShortfallGuard = 0.7
	// calorieCeiling is the hard upper bound on a meal, as a share of its
	// calorie target.
	calorieCeiling = 1.10
)

// MealPlanService composes a day of four meals from a food catalog.
// Deterministic and stateless: ties are broken by catalog order, so the
// same targets and catalog always yield the same plan.
type MealPlanService struct{}

// NewMealPlanService creates a new meal plan service
func NewMealPlanService() *MealPlanService {
	return &MealPlanService{}
}

// GenerateMealPlan partitions the daily targets across the four meal slots
// (25/35/15/25 percent) and greedily fills each slot from the catalog.
// An empty catalog, or one with no foods for a slot, yields an empty meal
// with zero totals rather than an error.
func (s *MealPlanService) GenerateMealPlan(
	targets domain.TDEECalculation,
	catalog []domain.FoodItem,
	goal domain.Goal,
) *domain.MealPlan {
	plan := &domain.MealPlan{
		ID:    uuid.NewString(),
		Date:  time.Now().UTC().Truncate(24 * time.Hour),
		Goal:  goal,
		Meals: make([]domain.Meal, 0, len(domain.MealTypes)),
	}

	for _, mealType := range domain.MealTypes {
		meal := s.composeMeal(mealType, targets, catalog)
		plan.Meals = append(plan.Meals, meal)
		plan.Calories += meal.Calories
		plan.ProteinG += meal.ProteinG
		plan.CarbsG += meal.CarbsG
		plan.FatsG += meal.FatsG
	}

	return plan
}

// composeMeal greedily selects foods for one meal slot:
// best protein source, best carb source, a fat source if fat is running
// short, then a fill pass in candidate order. Totals are the exact sum of
// the chosen foods.
func (s *MealPlanService) composeMeal(
	mealType domain.MealType,
	targets domain.TDEECalculation,
	catalog []domain.FoodItem,
) domain.Meal {
	share := mealCalorieShare[mealType]
	calorieTarget := float64(targets.TargetCalories) * share
	fatTarget := float64(targets.Macros.Fats.Grams) * share

	candidates := candidateFoods(mealType, catalog)

	meal := domain.Meal{Type: mealType, Foods: []domain.MealFood{}}
	selected := make(map[string]bool)

	// Best protein source while the meal is still well under target
	if best, ok := bestByDensity(candidates, selected, proteinDensity); ok {
		if float64(meal.Calories) < calorieFillGuard*calorieTarget {
			addFood(&meal, best, selected)
		}
	}

	// Best carb source under the same guard
	if best, ok := bestByDensity(candidates, selected, carbDensity); ok {
		if float64(meal.Calories) < calorieFillGuard*calorieTarget {
			addFood(&meal, best, selected)
		}
	}

	// Top up fat only when the slot is short on it, and never past the ceiling
	if meal.FatsG < fatShortfallGuard*fatTarget {
		if best, ok := bestByDensity(candidates, selected, fatDensity); ok {
			if float64(meal.Calories+best.Calories) <= calorieCeiling*calorieTarget {
				addFood(&meal, best, selected)
			}
		}
	}

	// Fill pass: remaining candidates in order, respecting the calorie
	// ceiling and the per-meal item cap
	for _, food := range candidates {
		if len(meal.Foods) >= maxFoodsPerMeal {
			break
		}
		if selected[food.ID] {
			continue
		}
		if float64(meal.Calories+food.Calories) > calorieCeiling*calorieTarget {
			continue
		}
		addFood(&meal, food, selected)
	}

	return meal
}

// candidateFoods filters the catalog to the slot's category allow-list and
// prioritizes curated common dishes, then locally common items. When fewer
// than minMealCandidates items qualify, the full filtered set is used so a
// thin catalog still produces a meal.
func candidateFoods(mealType domain.MealType, catalog []domain.FoodItem) []domain.FoodItem {
	allowed := make(map[domain.FoodCategory]bool)
	for _, c := range mealCategories[mealType] {
		allowed[c] = true
	}

	filtered := make([]domain.FoodItem, 0, len(catalog))
	for _, food := range catalog {
		if allowed[food.Category] {
			filtered = append(filtered, food)
		}
	}

	prioritized := make([]domain.FoodItem, 0, len(filtered))
	seen := make(map[string]bool)
	for _, food := range filtered {
		if matchesCommonDish(mealType, food) {
			prioritized = append(prioritized, food)
			seen[food.ID] = true
		}
	}
	for _, food := range filtered {
		if food.LocallyCommon && !seen[food.ID] {
			prioritized = append(prioritized, food)
			seen[food.ID] = true
		}
	}

	if len(prioritized) < minMealCandidates {
		return filtered
	}
	return prioritized
}

// matchesCommonDish reports whether the food's name or local name contains
// one of the slot's curated dish fragments.
func matchesCommonDish(mealType domain.MealType, food domain.FoodItem) bool {
	name := strings.ToLower(food.Name)
	local := strings.ToLower(food.LocalName)
	for _, dish := range commonDishes[mealType] {
		if strings.Contains(name, dish) || (local != "" && strings.Contains(local, dish)) {
			return true
		}
	}
	return false
}

// bestByDensity returns the unselected candidate with the highest macro
// density. Strict comparison keeps the first of any tied items, so the
// result follows catalog order and stays reproducible.
func bestByDensity(
	candidates []domain.FoodItem,
	selected map[string]bool,
	density func(domain.FoodItem) float64,
) (domain.FoodItem, bool) {
	var best domain.FoodItem
	bestScore := -1.0
	found := false
	for _, food := range candidates {
		if selected[food.ID] || food.Calories <= 0 {
			continue
		}
		if score := density(food); score > bestScore {
			best = food
			bestScore = score
			found = true
		}
	}
	return best, found
}

func proteinDensity(f domain.FoodItem) float64 { return f.ProteinG / float64(f.Calories) }
func carbDensity(f domain.FoodItem) float64    { return f.CarbsG / float64(f.Calories) }
func fatDensity(f domain.FoodItem) float64     { return f.FatsG / float64(f.Calories) }

// addFood appends one serving of the food and updates the running sums
func addFood(meal *domain.Meal, food domain.FoodItem, selected map[string]bool) {
	meal.Foods = append(meal.Foods, domain.MealFood{
		Food:     food,
		Quantity: 1,
		Unit:     "serving",
	})
	meal.Calories += food.Calories
	meal.ProteinG += food.ProteinG
	meal.CarbsG += food.CarbsG
	meal.FatsG += food.FatsG
	selected[food.ID] = true
}
