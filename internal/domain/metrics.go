package domain

// Sex is the biological sex used by the BMR formula
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel describes habitual daily activity. Exactly four levels are
// recognized; anything else is an input-contract violation.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
)

// Goal is the user's body-composition goal
type Goal string

const (
	GoalBulking  Goal = "bulking"
	GoalCutting  Goal = "cutting"
	GoalMaintain Goal = "maintain"
)

// WeightUnit is a supported weight unit for conversions
type WeightUnit string

const (
	WeightKg  WeightUnit = "kg"
	WeightLbs WeightUnit = "lbs"
)

// HeightUnit is a supported height unit for conversions.
// Feet are encoded as decimal feet, e.g. 5.75 = 5'9".
type HeightUnit string

const (
	HeightCm   HeightUnit = "cm"
	HeightFtIn HeightUnit = "ft_in"
)

// UserMetrics is the immutable profile input to the calculator
type UserMetrics struct {
	Age           int           `json:"age" binding:"required"`
	Sex           Sex           `json:"sex" binding:"required"`
	WeightKg      float64       `json:"weightKg" binding:"required"`
	HeightCm      float64       `json:"heightCm" binding:"required"`
	ActivityLevel ActivityLevel `json:"activityLevel" binding:"required"`
	Goal          Goal          `json:"goal" binding:"required"`
}

// MacroTarget is a single macronutrient prescription.
// Grams and Calories are each rounded independently.
type MacroTarget struct {
	Grams    int `json:"grams"`
	Calories int `json:"calories"`
}

// MacroSplit holds the three macronutrient targets for a day
type MacroSplit struct {
	Protein MacroTarget `json:"protein"`
	Carbs   MacroTarget `json:"carbs"`
	Fats    MacroTarget `json:"fats"`
}

// TDEECalculation is the complete calorie and macro prescription.
// Summed macro calories may drift from TargetCalories by a couple of kcal
// because each value is rounded independently; the drift is accepted.
type TDEECalculation struct {
	BMR            int        `json:"bmr"`
	TDEE           int        `json:"tdee"`
	TargetCalories int        `json:"targetCalories"`
	Macros         MacroSplit `json:"macros"`
}
