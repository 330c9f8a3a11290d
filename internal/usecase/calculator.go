package usecase

import (
	"fmt"
	"math"

	"github.com/planfit/backend/internal/domain"
)

// activityMultipliers maps each recognized activity level to its TDEE
// multiplier. Single source of truth, also used for input validation.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.2,
	domain.ActivityLightlyActive:    1.375,
	domain.ActivityModeratelyActive: 1.55,
	domain.ActivityVeryActive:       1.725,
}

// goalAdjustments maps each goal to its daily calorie adjustment: the
// midpoint of a +200..+500 surplus for bulking and a -500..-300 deficit
// for cutting.
var goalAdjustments = map[domain.Goal]int{
	domain.GoalBulking:  350,
	domain.GoalCutting:  -400,
	domain.GoalMaintain: 0,
}

// macroRatios holds the calorie fractions (protein/carbs/fats) per goal.
// Fractions per goal sum to 1.0.
type macroRatio struct {
	Protein float64
	Carbs   float64
	Fats    float64
}

var macroRatios = map[domain.Goal]macroRatio{
	domain.GoalBulking:  {Protein: 0.25, Carbs: 0.45, Fats: 0.30},
	domain.GoalCutting:  {Protein: 0.35, Carbs: 0.35, Fats: 0.30},
	domain.GoalMaintain: {Protein: 0.30, Carbs: 0.40, Fats: 0.30},
}

// Physiological energy densities, kcal per gram
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFats    = 9.0
)

// Unit conversion factors
const (
	lbsPerKg  = 2.20462
	kgPerLbs  = 0.453592
	cmPerFoot = 30.48 // 12 inches x 2.54 cm
)

// CalculatorService converts body metrics into calorie and macro
// prescriptions. Pure computation, no I/O; safe for concurrent use.
type CalculatorService struct{}

// NewCalculatorService creates a new calculator service
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor.
// The result is the raw formula output; rounding happens downstream.
// Input ranges are the caller's responsibility (no clamping here).
func (s *CalculatorService) CalculateBMR(age int, sex domain.Sex, weightKg, heightCm float64) (float64, error) {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)

	switch sex {
	case domain.SexMale:
		return base + 5, nil
	case domain.SexFemale:
		return base - 161, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownSex, sex)
	}
}

// CalculateTDEE scales BMR by the activity level multiplier
func (s *CalculatorService) CalculateTDEE(bmr float64, level domain.ActivityLevel) (float64, error) {
	mult, ok := activityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownActivityLevel, level)
	}
	return bmr * mult, nil
}

// AdjustCaloriesForGoal applies the goal's fixed calorie adjustment and
// rounds to the nearest integer.
func (s *CalculatorService) AdjustCaloriesForGoal(tdee float64, goal domain.Goal) (int, error) {
	adj, ok := goalAdjustments[goal]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownGoal, goal)
	}
	return int(math.Round(tdee)) + adj, nil
}

// CalculateMacros splits target calories into protein/carbs/fats by the
// goal's calorie fractions and converts each fraction to grams by energy
// density. All six values are rounded independently; the summed macro
// calories may therefore drift a kcal or two from targetCalories, and
// that drift is deliberately not reconciled.
func (s *CalculatorService) CalculateMacros(targetCalories int, goal domain.Goal) (domain.MacroSplit, error) {
	ratio, ok := macroRatios[goal]
	if !ok {
		return domain.MacroSplit{}, fmt.Errorf("%w: %q", domain.ErrUnknownGoal, goal)
	}

	target := float64(targetCalories)
	return domain.MacroSplit{
		Protein: macroTarget(target*ratio.Protein, kcalPerGramProtein),
		Carbs:   macroTarget(target*ratio.Carbs, kcalPerGramCarbs),
		Fats:    macroTarget(target*ratio.Fats, kcalPerGramFats),
	}, nil
}

// macroTarget rounds a calorie fraction and its gram equivalent independently
func macroTarget(calories, kcalPerGram float64) domain.MacroTarget {
	return domain.MacroTarget{
		Grams:    int(math.Round(calories / kcalPerGram)),
		Calories: int(math.Round(calories)),
	}
}

// CalculateCompleteTDEE runs the full pipeline: BMR -> TDEE -> goal
// adjustment -> macro split. Each downstream step consumes the ROUNDED
// output of the prior step, so rounding is visible in the results
// (e.g. bmr 1673.75 becomes 1674 before the activity multiplier).
func (s *CalculatorService) CalculateCompleteTDEE(m domain.UserMetrics) (*domain.TDEECalculation, error) {
	bmrF, err := s.CalculateBMR(m.Age, m.Sex, m.WeightKg, m.HeightCm)
	if err != nil {
		return nil, err
	}
	bmr := int(math.Round(bmrF))

	tdeeF, err := s.CalculateTDEE(float64(bmr), m.ActivityLevel)
	if err != nil {
		return nil, err
	}
	tdee := int(math.Round(tdeeF))

	targetCalories, err := s.AdjustCaloriesForGoal(float64(tdee), m.Goal)
	if err != nil {
		return nil, err
	}

	macros, err := s.CalculateMacros(targetCalories, m.Goal)
	if err != nil {
		return nil, err
	}

	return &domain.TDEECalculation{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: targetCalories,
		Macros:         macros,
	}, nil
}

// ConvertWeight converts between kg and lbs, returning the value unchanged
// when the units match.
func (s *CalculatorService) ConvertWeight(value float64, from, to domain.WeightUnit) (float64, error) {
	if err := validWeightUnit(from); err != nil {
		return 0, err
	}
	if err := validWeightUnit(to); err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	if from == domain.WeightKg {
		return value * lbsPerKg, nil
	}
	return value * kgPerLbs, nil
}

// ConvertHeight converts between cm and decimal feet (5.75 = 5'9"),
// returning the value unchanged when the units match.
func (s *CalculatorService) ConvertHeight(value float64, from, to domain.HeightUnit) (float64, error) {
	if err := validHeightUnit(from); err != nil {
		return 0, err
	}
	if err := validHeightUnit(to); err != nil {
		return 0, err
	}
	if from == to {
		return value, nil
	}
	if from == domain.HeightFtIn {
		return value * cmPerFoot, nil
	}
	return value / cmPerFoot, nil
}

func validWeightUnit(u domain.WeightUnit) error {
	if u != domain.WeightKg && u != domain.WeightLbs {
		return fmt.Errorf("%w: %q", domain.ErrUnknownUnit, u)
	}
	return nil
}

func validHeightUnit(u domain.HeightUnit) error {
	if u != domain.HeightCm && u != domain.HeightFtIn {
		return fmt.Errorf("%w: %q", domain.ErrUnknownUnit, u)
	}
	return nil
}
