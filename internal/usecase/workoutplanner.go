package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/planfit/backend/internal/domain"
)

// dayTemplate names a training day and the muscle groups it targets
type dayTemplate struct {
	Focus   string
	Muscles []string
}

// Day templates for the three supported splits
var (
	fullBodyDay = dayTemplate{Focus: "Full Body", Muscles: []string{"chest", "back", "legs", "shoulders", "core"}}
	upperDay    = dayTemplate{Focus: "Upper Body", Muscles: []string{"chest", "back", "shoulders", "biceps", "triceps"}}
	lowerDay    = dayTemplate{Focus: "Lower Body", Muscles: []string{"quads", "hamstrings", "glutes", "calves", "core"}}
	pushDay     = dayTemplate{Focus: "Push", Muscles: []string{"chest", "shoulders", "triceps"}}
	pullDay     = dayTemplate{Focus: "Pull", Muscles: []string{"back", "biceps", "core"}}
	legsDay     = dayTemplate{Focus: "Legs", Muscles: []string{"quads", "hamstrings", "glutes", "calves"}}
)

// weekdayNames assigns generated days to weekdays in order
var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// splitNames labels each split for the plan header
var splitNames = map[domain.SplitType]string{
	domain.SplitFullBody:     "Full Body Split",
	domain.SplitUpperLower:   "Upper/Lower Split",
	domain.SplitPushPullLegs: "Push/Pull/Legs Split",
}

// volumePrescription is a sets/reps/rest prescription for one exercise
type volumePrescription struct {
	Sets        int
	Reps        string
	RestSeconds int
}

// prescriptionKey indexes the volume table by exercise category and goal
type prescriptionKey struct {
	Category domain.ExerciseCategory
	Goal     domain.Goal
}

// categoryPrescription holds the compound and isolation variants for a
// table cell. Only strength differentiates the two; cardio and
// flexibility use the same prescription for both.
type categoryPrescription struct {
	Compound  volumePrescription
	Isolation volumePrescription
}

// volumeTable is exhaustive over {strength,cardio,flexibility} x
// {bulking,cutting,maintain}; no other combination is defined.
var volumeTable = map[prescriptionKey]categoryPrescription{
	{domain.CategoryStrength, domain.GoalBulking}: {
		Compound:  volumePrescription{Sets: 4, Reps: "6-8", RestSeconds: 180},
		Isolation: volumePrescription{Sets: 3, Reps: "8-12", RestSeconds: 180},
	},
	{domain.CategoryStrength, domain.GoalCutting}: {
		Compound:  volumePrescription{Sets: 3, Reps: "12-15", RestSeconds: 90},
		Isolation: volumePrescription{Sets: 3, Reps: "12-15", RestSeconds: 90},
	},
	{domain.CategoryStrength, domain.GoalMaintain}: {
		Compound:  volumePrescription{Sets: 3, Reps: "8-10", RestSeconds: 120},
		Isolation: volumePrescription{Sets: 3, Reps: "10-12", RestSeconds: 120},
	},
	{domain.CategoryCardio, domain.GoalBulking}: {
		Compound:  volumePrescription{Sets: 1, Reps: "20-30 minutes", RestSeconds: 60},
		Isolation: volumePrescription{Sets: 1, Reps: "20-30 minutes", RestSeconds: 60},
	},
	{domain.CategoryCardio, domain.GoalCutting}: {
		Compound:  volumePrescription{Sets: 1, Reps: "20-30 minutes", RestSeconds: 60},
		Isolation: volumePrescription{Sets: 1, Reps: "20-30 minutes", RestSeconds: 60},
	},
	{domain.CategoryCardio, domain.GoalMaintain}: {
		Compound:  volumePrescription{Sets: 1, Reps: "20-30 minutes", RestSeconds: 60},
		Isolation: volumePrescription{Sets: 1, Reps: "20-30 minutes", RestSeconds: 60},
	},
	{domain.CategoryFlexibility, domain.GoalBulking}: {
		Compound:  volumePrescription{Sets: 2, Reps: "30-60s", RestSeconds: 30},
		Isolation: volumePrescription{Sets: 2, Reps: "30-60s", RestSeconds: 30},
	},
	{domain.CategoryFlexibility, domain.GoalCutting}: {
		Compound:  volumePrescription{Sets: 2, Reps: "30-60s", RestSeconds: 30},
		Isolation: volumePrescription{Sets: 2, Reps: "30-60s", RestSeconds: 30},
	},
	{domain.CategoryFlexibility, domain.GoalMaintain}: {
		Compound:  volumePrescription{Sets: 2, Reps: "30-60s", RestSeconds: 30},
		Isolation: volumePrescription{Sets: 2, Reps: "30-60s", RestSeconds: 30},
	},
}

// Workout generation constants
const (
	maxWeeklyDays = 6
	// Per-muscle-group and per-day selection caps; cutting trims volume
	exercisesPerGroupDefault = 3
	exercisesPerGroupCutting = 2
	dayExerciseCapDefault    = 8
	dayExerciseCapCutting    = 6
	// Duration estimate: minutes of work per set plus fixed warm-up/cool-down
	minutesPerSet         = 1.5
	warmupCooldownMinutes = 10
	defaultPlanWeeks      = 8
)

// WorkoutPlanService builds a weekly training cycle from an exercise
// catalog. Deterministic and stateless; the catalog is expected to be
// pre-filtered by equipment and goal by the caller.
type WorkoutPlanService struct{}

// NewWorkoutPlanService creates a new workout plan service
func NewWorkoutPlanService() *WorkoutPlanService {
	return &WorkoutPlanService{}
}

// GenerateWorkoutPlan picks a split for the requested weekly frequency and
// populates each day. Frequency maps to a split by table lookup: up to 3
// days full-body, exactly 4 upper/lower, 5 or more push/pull/legs cycled
// and clamped at 6 days. A frequency below 1 is a contract violation.
func (s *WorkoutPlanService) GenerateWorkoutPlan(
	frequency int,
	catalog []domain.Exercise,
	goal domain.Goal,
) (*domain.WorkoutPlan, error) {
	if frequency < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidFrequency, frequency)
	}
	if _, ok := goalAdjustments[goal]; !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGoal, goal)
	}
	if frequency > maxWeeklyDays {
		frequency = maxWeeklyDays
	}

	split, templates := splitForFrequency(frequency)

	plan := &domain.WorkoutPlan{
		ID:            uuid.NewString(),
		Name:          splitNames[split],
		Goal:          goal,
		Split:         split,
		DurationWeeks: defaultPlanWeeks,
		Days:          make([]domain.WorkoutDay, 0, len(templates)),
	}

	for i, tpl := range templates {
		day := s.buildDay(weekdayNames[i], tpl, catalog, goal)
		plan.Days = append(plan.Days, day)
	}

	return plan, nil
}

// splitForFrequency is the split lookup. Frequency is assumed clamped to
// [1, maxWeeklyDays].
func splitForFrequency(frequency int) (domain.SplitType, []dayTemplate) {
	switch {
	case frequency <= 3:
		templates := make([]dayTemplate, frequency)
		for i := range templates {
			templates[i] = fullBodyDay
		}
		return domain.SplitFullBody, templates
	case frequency == 4:
		return domain.SplitUpperLower, []dayTemplate{upperDay, lowerDay, upperDay, lowerDay}
	default:
		cycle := []dayTemplate{pushDay, pullDay, legsDay}
		templates := make([]dayTemplate, frequency)
		for i := range templates {
			templates[i] = cycle[i%len(cycle)]
		}
		return domain.SplitPushPullLegs, templates
	}
}

// buildDay selects exercises for one day. For each target muscle group it
// takes the top matches (compound movements first) up to the per-group
// quota, skipping anything already picked for the day, and stops at the
// day cap. A muscle group with no matching exercises contributes nothing.
func (s *WorkoutPlanService) buildDay(
	dayOfWeek string,
	tpl dayTemplate,
	catalog []domain.Exercise,
	goal domain.Goal,
) domain.WorkoutDay {
	perGroup := exercisesPerGroupDefault
	dayCap := dayExerciseCapDefault
	if goal == domain.GoalCutting {
		perGroup = exercisesPerGroupCutting
		dayCap = dayExerciseCapCutting
	}

	day := domain.WorkoutDay{
		DayOfWeek: dayOfWeek,
		Focus:     tpl.Focus,
		Exercises: []domain.WorkoutExercise{},
	}
	selected := make(map[string]bool)

	for _, muscle := range tpl.Muscles {
		if len(day.Exercises) >= dayCap {
			break
		}
		matches := exercisesForMuscle(catalog, muscle)

		taken := 0
		for _, ex := range matches {
			if taken >= perGroup || len(day.Exercises) >= dayCap {
				break
			}
			if selected[ex.ID] {
				continue
			}
			day.Exercises = append(day.Exercises, prescribe(ex, goal))
			selected[ex.ID] = true
			taken++
		}
	}

	day.EstimatedMinutes = estimateDuration(day.Exercises)
	return day
}

// exercisesForMuscle filters by muscle group tag and stable-sorts compound
// movements ahead of isolation ones. The stable sort keeps catalog order
// within each class, so tie-breaks are reproducible.
func exercisesForMuscle(catalog []domain.Exercise, muscle string) []domain.Exercise {
	matches := make([]domain.Exercise, 0, len(catalog))
	for _, ex := range catalog {
		for _, mg := range ex.MuscleGroups {
			if mg == muscle {
				matches = append(matches, ex)
				break
			}
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].IsCompound() && !matches[j].IsCompound()
	})
	return matches
}

// prescribe attaches the volume prescription from the lookup table
func prescribe(ex domain.Exercise, goal domain.Goal) domain.WorkoutExercise {
	cell := volumeTable[prescriptionKey{Category: ex.Category, Goal: goal}]
	p := cell.Isolation
	if ex.IsCompound() {
		p = cell.Compound
	}
	return domain.WorkoutExercise{
		Exercise:    ex,
		Sets:        p.Sets,
		Reps:        p.Reps,
		RestSeconds: p.RestSeconds,
	}
}

// estimateDuration derives the day length from the prescriptions: working
// time per set, rest between sets, and a fixed warm-up/cool-down block.
func estimateDuration(exercises []domain.WorkoutExercise) int {
	minutes := 0.0
	for _, we := range exercises {
		minutes += float64(we.Sets) * minutesPerSet
		minutes += float64(we.RestSeconds) * float64(we.Sets-1) / 60
	}
	if len(exercises) == 0 {
		return 0
	}
	return int(math.Round(minutes + warmupCooldownMinutes))
}
