package main

import "net/http"

// calculateDifficultyPOST computes the difficulty modifier for the profile in
// the request body.
func (app *application) calculateDifficultyPOST(w http.ResponseWriter, r *http.Request) {
	raw, ok := app.decodeBody(w, r)
	if !ok {
		return
	}
	profile, ok := app.profileFromBody(w, r, raw)
	if !ok {
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"difficulty_modifier": app.planner.Score(profile),
		"fitness_level":       profile.FitnessLevel,
		"goal":                profile.Goal,
	})
}
