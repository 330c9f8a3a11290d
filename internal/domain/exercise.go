package domain

// ExerciseCategory classifies catalog exercises
type ExerciseCategory string

const (
	CategoryStrength    ExerciseCategory = "strength"
	CategoryCardio      ExerciseCategory = "cardio"
	CategoryFlexibility ExerciseCategory = "flexibility"
)

// Difficulty grades an exercise
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// SplitType is a weekly training split pattern
type SplitType string

const (
	SplitFullBody     SplitType = "full_body"
	SplitUpperLower   SplitType = "upper_lower"
	SplitPushPullLegs SplitType = "push_pull_legs"
)

// Exercise is a read-only catalog entry
type Exercise struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Category     ExerciseCategory `json:"category"`
	MuscleGroups []string         `json:"muscleGroups"`
	Equipment    []string         `json:"equipment,omitempty"`
	Difficulty   Difficulty       `json:"difficulty"`
	Instructions string           `json:"instructions,omitempty"`
	Tips         string           `json:"tips,omitempty"`
}

// IsCompound reports whether the exercise works more than one muscle group
func (e Exercise) IsCompound() bool {
	return len(e.MuscleGroups) > 1
}

// WorkoutExercise is an exercise with its volume prescription
type WorkoutExercise struct {
	Exercise    Exercise `json:"exercise"`
	Sets        int      `json:"sets"`
	Reps        string   `json:"reps"`
	RestSeconds int      `json:"restSeconds"`
	Notes       string   `json:"notes,omitempty"`
}

// WorkoutDay is one day of the weekly cycle
type WorkoutDay struct {
	DayOfWeek        string            `json:"dayOfWeek"`
	Focus            string            `json:"focus"`
	Exercises        []WorkoutExercise `json:"exercises"`
	EstimatedMinutes int               `json:"estimatedMinutes"`
}

// WorkoutPlan is one weekly training cycle.
// The number of days always equals the requested frequency after clamping
// to the supported split patterns.
type WorkoutPlan struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Goal          Goal         `json:"goal"`
	Split         SplitType    `json:"split"`
	DurationWeeks int          `json:"durationWeeks"`
	Days          []WorkoutDay `json:"days"`
}
