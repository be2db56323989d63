package planner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// loadCatalog reads the whole exercise knowledge base into memory. The
// returned catalog is validated and never touched again, so the database is
// only needed during startup.
func loadCatalog(ctx context.Context, db *sql.DB) (*Catalog, error) {
	catalog := &Catalog{
		WorkoutTypes: make(map[Type][]Exercise),
		Equipment:    make(map[string][]string),
		Splits:       make(map[string][]Type),
		Restrictions: make(map[Condition]Restriction),
	}

	if err := loadWorkoutTypes(ctx, db, catalog); err != nil {
		return nil, fmt.Errorf("load workout types: %w", err)
	}
	if err := loadExercises(ctx, db, catalog); err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}
	if err := loadEquipment(ctx, db, catalog); err != nil {
		return nil, fmt.Errorf("load equipment: %w", err)
	}
	if err := loadSplits(ctx, db, catalog); err != nil {
		return nil, fmt.Errorf("load goal splits: %w", err)
	}
	if err := loadRestrictions(ctx, db, catalog); err != nil {
		return nil, fmt.Errorf("load health restrictions: %w", err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return catalog, nil
}

func loadWorkoutTypes(ctx context.Context, db *sql.DB, catalog *Catalog) (err error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM workout_types ORDER BY sort_order")
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	for rows.Next() {
		var name Type
		if err = rows.Scan(&name); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		catalog.typeOrder = append(catalog.typeOrder, name)
		catalog.WorkoutTypes[name] = nil
	}
	return rows.Err()
}

func loadExercises(ctx context.Context, db *sql.DB, catalog *Catalog) (err error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, workout_type, muscle_group, base_intensity, description_markdown
		FROM exercises
		ORDER BY workout_type, sort_order`)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	for rows.Next() {
		var exercise Exercise
		if err = rows.Scan(&exercise.Name, &exercise.Type, &exercise.MuscleGroup,
			&exercise.BaseIntensity, &exercise.DescriptionMarkdown); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		catalog.WorkoutTypes[exercise.Type] = append(catalog.WorkoutTypes[exercise.Type], exercise)
	}
	return rows.Err()
}

func loadEquipment(ctx context.Context, db *sql.DB, catalog *Catalog) (err error) {
	rows, err := db.QueryContext(ctx, `
		SELECT exercise_name, equipment
		FROM exercise_equipment
		ORDER BY exercise_name, equipment`)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	for rows.Next() {
		var exerciseName, equipment string
		if err = rows.Scan(&exerciseName, &equipment); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		catalog.Equipment[exerciseName] = append(catalog.Equipment[exerciseName], equipment)
	}
	return rows.Err()
}

func loadSplits(ctx context.Context, db *sql.DB, catalog *Catalog) (err error) {
	rows, err := db.QueryContext(ctx, `
		SELECT goal, workout_type
		FROM goal_splits
		ORDER BY goal, position`)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	for rows.Next() {
		var goal string
		var workoutType Type
		if err = rows.Scan(&goal, &workoutType); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		catalog.Splits[goal] = append(catalog.Splits[goal], workoutType)
	}
	return rows.Err()
}

func loadRestrictions(ctx context.Context, db *sql.DB, catalog *Catalog) (err error) {
	rows, err := db.QueryContext(ctx, `
		SELECT condition, target_kind, target
		FROM health_restrictions
		ORDER BY condition, target_kind, target`)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	for rows.Next() {
		var condition Condition
		var kind, target string
		if err = rows.Scan(&condition, &kind, &target); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		restriction, ok := catalog.Restrictions[condition]
		if !ok {
			restriction = Restriction{
				Exercises:    make(map[string]struct{}),
				WorkoutTypes: make(map[Type]struct{}),
				Equipment:    make(map[string]struct{}),
			}
		}
		switch kind {
		case "exercise":
			restriction.Exercises[target] = struct{}{}
		case "workout_type":
			restriction.WorkoutTypes[Type(target)] = struct{}{}
		case "equipment":
			restriction.Equipment[target] = struct{}{}
		default:
			return fmt.Errorf("unknown restriction target kind %q", kind)
		}
		catalog.Restrictions[condition] = restriction
	}
	return rows.Err()
}
