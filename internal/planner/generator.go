package planner

import (
	"math"
	"slices"
)

// generatePlan builds a multi-week plan. Every week repeats the same day
// schedule, but doses grow week over week under the progression policy.
func generatePlan(catalog *Catalog, profile Profile, weeks int, schedule SchedulePolicy, progression ProgressionPolicy) (Plan, error) {
	if weeks <= 0 {
		return Plan{}, &InvalidArgumentError{Message: "weeks must be positive"}
	}
	if len(profile.PreferredDays) == 0 {
		return Plan{}, &InvalidArgumentError{Message: "profile has no preferred days"}
	}
	split, ok := catalog.Splits[profile.Goal]
	if !ok {
		return Plan{}, &UnknownGoalError{Goal: profile.Goal, Known: catalog.Goals()}
	}

	modifier := Score(profile)
	assignments := schedule.Assign(profile.PreferredDays, split)

	plan := Plan{
		Goal:               profile.Goal,
		DifficultyModifier: modifier,
		Weeks:              make([]Week, weeks),
	}
	for week := range weeks {
		prog := progression.ForWeek(week+1, modifier)
		days := make([]DayWorkout, len(assignments))
		for i, assignment := range assignments {
			days[i] = buildDayWorkout(catalog, profile, prog, assignment)
		}
		plan.Weeks[week] = Week{Number: week + 1, Progression: prog, Days: days}
	}
	return plan, nil
}

func buildDayWorkout(catalog *Catalog, profile Profile, prog Progression, assignment DayAssignment) DayWorkout {
	pool := filteredPool(catalog, profile.HealthConditions, assignment.Type)
	if len(pool) == 0 {
		pool = []Exercise{fallbackExercise(assignment.Type)}
	}

	count := int(math.Round(float64(exercisesPerDay(profile.FitnessLevel)) * prog.VolumeMultiplier))
	count = max(1, min(count, len(pool)))
	selected := pool[:count]
	duration := sessionMinutes(profile.FitnessLevel, assignment.Type)

	return DayWorkout{
		Day:             assignment.Day,
		Type:            assignment.Type,
		DurationMinutes: duration,
		Exercises:       formatExercises(selected, assignment.Type, prog, duration),
		Equipment:       equipmentFor(catalog, selected),
	}
}

// filteredPool returns the exercises of a workout type that survive the
// profile's health restrictions, in catalog order. Filtering is conservative:
// an exercise is dropped when the restriction names it, its workout type, or
// any of its equipment.
func filteredPool(catalog *Catalog, conditions []Condition, workoutType Type) []Exercise {
	var pool []Exercise
	for _, exercise := range catalog.WorkoutTypes[workoutType] {
		if excluded(catalog, conditions, exercise) {
			continue
		}
		pool = append(pool, exercise)
	}
	return pool
}

func excluded(catalog *Catalog, conditions []Condition, exercise Exercise) bool {
	for _, condition := range conditions {
		restriction, ok := catalog.Restrictions[condition]
		if !ok {
			continue
		}
		if _, bad := restriction.Exercises[exercise.Name]; bad {
			return true
		}
		if _, bad := restriction.WorkoutTypes[exercise.Type]; bad {
			return true
		}
		for _, item := range catalog.Equipment[exercise.Name] {
			if _, bad := restriction.Equipment[item]; bad {
				return true
			}
		}
	}
	return false
}

// fallbackExercise is substituted when health restrictions filter out an
// entire workout type's pool, so that every scheduled day still has work.
func fallbackExercise(workoutType Type) Exercise {
	if workoutType == "cardio" {
		return Exercise{Name: "Low-Impact Walking", Type: workoutType, MuscleGroup: "legs", BaseIntensity: 3.0}
	}
	return Exercise{Name: "Bodyweight Isometric Holds", Type: workoutType, MuscleGroup: "full body", BaseIntensity: 3.0}
}

func exercisesPerDay(level Level) int {
	switch level {
	case LevelBeginner:
		return 4
	case LevelAdvanced:
		return 6
	default:
		return 5
	}
}

// sessionMinutes is the session length by fitness level. Cardio and hiit
// sessions are shorter because their work is continuous.
func sessionMinutes(level Level, workoutType Type) int {
	minutes := 45
	switch level {
	case LevelBeginner:
		minutes = 30
	case LevelAdvanced:
		minutes = 60
	}
	if workoutType == "cardio" || workoutType == "hiit" {
		minutes = int(math.Round(float64(minutes) * 0.8))
	}
	return minutes
}

// formatExercises turns selected catalog exercises into planned doses.
// Strength work gets sets and reps, hiit gets intervals, and time-based work
// splits the session minutes evenly with the remainder going to the earliest
// exercises. Volume scales sets and intervals; intensity scales reps and the
// per-exercise intensity.
func formatExercises(selected []Exercise, workoutType Type, prog Progression, duration int) []PlannedExercise {
	planned := make([]PlannedExercise, len(selected))
	base := duration / len(selected)
	remainder := duration % len(selected)

	for i, exercise := range selected {
		p := PlannedExercise{
			Name:        exercise.Name,
			MuscleGroup: exercise.MuscleGroup,
			Intensity:   round1(exercise.BaseIntensity * prog.IntensityMultiplier),
		}
		switch workoutType {
		case "strength":
			p.Sets = int(math.Round(3 * prog.VolumeMultiplier))
			p.Reps = int(math.Round(10 * prog.IntensityMultiplier))
			p.Rest = "60-90 seconds"
		case "hiit":
			p.Intervals = int(math.Round(6 * prog.VolumeMultiplier))
			p.Work = "30 seconds"
			p.Rest = "30 seconds"
		default:
			minutes := base
			if i < remainder {
				minutes++
			}
			p.Minutes = minutes
		}
		planned[i] = p
	}
	return planned
}

func equipmentFor(catalog *Catalog, selected []Exercise) []string {
	seen := make(map[string]struct{})
	for _, exercise := range selected {
		for _, item := range catalog.Equipment[exercise.Name] {
			seen[item] = struct{}{}
		}
	}
	equipment := make([]string, 0, len(seen))
	for item := range seen {
		equipment = append(equipment, item)
	}
	slices.Sort(equipment)
	return equipment
}
