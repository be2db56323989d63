// Package planner generates personalized workout plans, difficulty scores,
// and date-seeded daily challenges from a user profile and a static exercise
// catalog.
package planner

// Level represents the user's self-reported fitness level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Condition names a health condition that excludes exercises from generated
// output.
type Condition string

// Conditions known to the built-in catalog. Profiles may carry other values;
// they exclude nothing unless the catalog names them.
const (
	ConditionKneePain       Condition = "knee_pain"
	ConditionBackPain       Condition = "back_pain"
	ConditionHeartCondition Condition = "heart_condition"
	ConditionShoulderInjury Condition = "shoulder_injury"
)

// Type is a workout type key, e.g. "cardio" or "strength".
type Type string

// Profile is a validated, normalized user profile. All textual fields are
// lowercase and the slices are deduplicated; construct one through
// ParseProfile so that no further normalization is needed downstream.
type Profile struct {
	Age              int         `json:"age"`
	HeightCm         float64     `json:"height"`
	WeightKg         float64     `json:"weight"`
	Gender           string      `json:"gender"`
	FitnessLevel     Level       `json:"fitness_level"`
	HealthConditions []Condition `json:"health_conditions"`
	Goal             string      `json:"goal"`
	PreferredDays    []string    `json:"preferred_days"`
}

// Exercise is a single catalog entry.
type Exercise struct {
	Name                string  `json:"name"`
	Type                Type    `json:"type"`
	MuscleGroup         string  `json:"muscle_group"`
	BaseIntensity       float64 `json:"base_intensity"`
	DescriptionMarkdown string  `json:"description_markdown,omitempty"`
}

// PlannedExercise is an exercise scheduled into a plan or challenge with its
// difficulty-adjusted dose. Strength work carries sets and reps, hiit work
// carries intervals, and everything else carries minutes.
type PlannedExercise struct {
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscle_group"`
	Intensity   float64 `json:"intensity"`
	Sets        int     `json:"sets,omitempty"`
	Reps        int     `json:"reps,omitempty"`
	Rest        string  `json:"rest,omitempty"`
	Intervals   int     `json:"intervals,omitempty"`
	Work        string  `json:"work_time,omitempty"`
	Minutes     int     `json:"minutes,omitempty"`
}

// DayWorkout is one preferred day's assignment within a week.
type DayWorkout struct {
	Day             string            `json:"day"`
	Type            Type              `json:"type"`
	DurationMinutes int               `json:"duration_minutes"`
	Exercises       []PlannedExercise `json:"exercises"`
	Equipment       []string          `json:"required_equipment"`
}

// Week is a single week of a plan. Days are ordered monday-first.
type Week struct {
	Number      int          `json:"number"`
	Progression Progression  `json:"progression"`
	Days        []DayWorkout `json:"days"`
}

// Plan is a generated multi-week workout plan. Plans are returned to the
// caller and never persisted.
type Plan struct {
	Goal               string  `json:"goal"`
	DifficultyModifier float64 `json:"difficulty_modifier"`
	Weeks              []Week  `json:"weeks"`
}

// Challenge is a single day's deterministic workout selection. Two calls with
// the same profile and date produce identical challenges.
type Challenge struct {
	Name            string            `json:"name"`
	Date            string            `json:"date"`
	Day             string            `json:"day_of_week"`
	Type            Type              `json:"type"`
	Level           Level             `json:"difficulty"`
	Score           float64           `json:"score"`
	DurationMinutes int               `json:"duration_minutes"`
	Exercises       []PlannedExercise `json:"exercises"`
	Equipment       []string          `json:"required_equipment"`
}
