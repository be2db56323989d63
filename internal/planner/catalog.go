package planner

import (
	"fmt"
	"slices"
)

// Restriction lists what a health condition excludes from generated output.
type Restriction struct {
	Exercises    map[string]struct{}
	WorkoutTypes map[Type]struct{}
	Equipment    map[string]struct{}
}

// Catalog is the exercise knowledge base. It is loaded once at startup and
// never mutated afterwards, so it is safe for concurrent reads.
type Catalog struct {
	// WorkoutTypes maps a workout type to its exercises in catalog order.
	WorkoutTypes map[Type][]Exercise
	// Equipment maps an exercise name to the equipment it needs. Exercises
	// absent from the map need none.
	Equipment map[string][]string
	// Splits maps a goal to its ordered weekly split template.
	Splits map[string][]Type
	// Restrictions maps a health condition to what it excludes.
	Restrictions map[Condition]Restriction

	typeOrder []Type
}

// Types returns the workout types in catalog order.
func (c *Catalog) Types() []Type {
	return slices.Clone(c.typeOrder)
}

// Goals returns the known goals sorted alphabetically.
func (c *Catalog) Goals() []string {
	goals := make([]string, 0, len(c.Splits))
	for goal := range c.Splits {
		goals = append(goals, goal)
	}
	slices.Sort(goals)
	return goals
}

// AllEquipment returns every piece of equipment the catalog mentions, sorted
// and deduplicated.
func (c *Catalog) AllEquipment() []string {
	seen := make(map[string]struct{})
	for _, items := range c.Equipment {
		for _, item := range items {
			seen[item] = struct{}{}
		}
	}
	all := make([]string, 0, len(seen))
	for item := range seen {
		all = append(all, item)
	}
	slices.Sort(all)
	return all
}

// Exercises returns the exercises of a workout type in catalog order.
func (c *Catalog) Exercises(workoutType Type) ([]Exercise, error) {
	exercises, ok := c.WorkoutTypes[workoutType]
	if !ok {
		return nil, &UnknownWorkoutTypeError{Type: workoutType}
	}
	return exercises, nil
}

// ExerciseByName finds a single exercise by its exact name.
func (c *Catalog) ExerciseByName(name string) (Exercise, error) {
	for _, workoutType := range c.typeOrder {
		for _, exercise := range c.WorkoutTypes[workoutType] {
			if exercise.Name == name {
				return exercise, nil
			}
		}
	}
	return Exercise{}, fmt.Errorf("exercise %q: %w", name, ErrNotFound)
}

// Validate checks the catalog's referential integrity: split templates only
// reference known workout types, restriction targets resolve, and no workout
// type is empty.
func (c *Catalog) Validate() error {
	for _, workoutType := range c.typeOrder {
		if len(c.WorkoutTypes[workoutType]) == 0 {
			return fmt.Errorf("workout type %q has no exercises", workoutType)
		}
	}

	for goal, split := range c.Splits {
		if len(split) == 0 {
			return fmt.Errorf("goal %q has an empty split template", goal)
		}
		for _, workoutType := range split {
			if _, ok := c.WorkoutTypes[workoutType]; !ok {
				return fmt.Errorf("goal %q references unknown workout type %q", goal, workoutType)
			}
		}
	}

	equipment := make(map[string]struct{})
	for _, items := range c.Equipment {
		for _, item := range items {
			equipment[item] = struct{}{}
		}
	}
	for condition, restriction := range c.Restrictions {
		for name := range restriction.Exercises {
			if _, err := c.ExerciseByName(name); err != nil {
				return fmt.Errorf("condition %q references unknown exercise %q", condition, name)
			}
		}
		for workoutType := range restriction.WorkoutTypes {
			if _, ok := c.WorkoutTypes[workoutType]; !ok {
				return fmt.Errorf("condition %q references unknown workout type %q", condition, workoutType)
			}
		}
		for item := range restriction.Equipment {
			if _, ok := equipment[item]; !ok {
				return fmt.Errorf("condition %q references unknown equipment %q", condition, item)
			}
		}
	}

	return nil
}
