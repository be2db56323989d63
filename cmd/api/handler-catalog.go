package main

import (
	"bytes"
	"net/http"

	"github.com/mvirtane/fitplan/internal/planner"
	"github.com/yuin/goldmark"
)

// exercisesGET lists catalog exercises grouped by workout type. The optional
// "type" query parameter narrows the listing to one workout type.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	filter := planner.Type(r.URL.Query().Get("type"))
	exercises, err := app.planner.Exercises(filter)
	if err != nil {
		app.plannerError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"exercises": exercises})
}

// workoutTypesGET lists the workout types in catalog order.
func (app *application) workoutTypesGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{"workout_types": app.planner.WorkoutTypes()})
}

// equipmentGET lists the exercise-to-equipment mapping.
func (app *application) equipmentGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{"equipment": app.planner.Equipment()})
}

// goalsGET lists the goals that have split templates.
func (app *application) goalsGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{"goals": app.planner.Goals()})
}

// exerciseInfoGET returns a single exercise with its description rendered
// from markdown to HTML.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exercise, err := app.planner.ExerciseInfo(r.PathValue("name"))
	if err != nil {
		app.plannerError(w, r, err)
		return
	}

	var description bytes.Buffer
	if exercise.DescriptionMarkdown != "" {
		if err = goldmark.Convert([]byte(exercise.DescriptionMarkdown), &description); err != nil {
			app.serverError(w, r, err)
			return
		}
	}

	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"exercise":         exercise,
		"description_html": description.String(),
	})
}
