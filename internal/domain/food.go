package domain

import "time"

// FoodCategory classifies catalog foods for meal composition
type FoodCategory string

const (
	CategoryGrains    FoodCategory = "grains"
	CategoryProtein   FoodCategory = "protein"
	CategoryDairy     FoodCategory = "dairy"
	CategoryFruit     FoodCategory = "fruit"
	CategoryVegetable FoodCategory = "vegetable"
	CategorySnack     FoodCategory = "snack"
	CategoryBeverage  FoodCategory = "beverage"
	CategoryFats      FoodCategory = "fats"
)

// MealType is one of the four fixed meal slots in a day
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealMerienda  MealType = "merienda"
	MealDinner    MealType = "dinner"
)

// MealTypes lists the four slots in day order
var MealTypes = []MealType{MealBreakfast, MealLunch, MealMerienda, MealDinner}

// FoodItem is a read-only catalog entry
type FoodItem struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	LocalName     string       `json:"localName,omitempty"`
	Category      FoodCategory `json:"category"`
	ServingSize   string       `json:"servingSize"`
	Calories      int          `json:"calories"`
	ProteinG      float64      `json:"proteinG"`
	CarbsG        float64      `json:"carbsG"`
	FatsG         float64      `json:"fatsG"`
	EstimatedCost *float64     `json:"estimatedCost,omitempty"`
	LocallyCommon bool         `json:"locallyCommon"`
	Tags          []string     `json:"tags,omitempty"`
}

// MealFood is a selected food with its quantity within a meal
type MealFood struct {
	Food     FoodItem `json:"food"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
}

// Meal is one composed meal slot. Calories and macro totals are always the
// exact arithmetic sum over Foods, never adjusted independently.
type Meal struct {
	Type     MealType   `json:"type"`
	Foods    []MealFood `json:"foods"`
	Calories int        `json:"calories"`
	ProteinG float64    `json:"proteinG"`
	CarbsG   float64    `json:"carbsG"`
	FatsG    float64    `json:"fatsG"`
}

// MealPlan is a full day of four meals with plan-level totals.
// Totals are recomputed from the meals, never cached separately.
type MealPlan struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Goal     Goal      `json:"goal"`
	Meals    []Meal    `json:"meals"`
	Calories int       `json:"calories"`
	ProteinG float64   `json:"proteinG"`
	CarbsG   float64   `json:"carbsG"`
	FatsG    float64   `json:"fatsG"`
}
