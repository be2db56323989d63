package main

import "net/http"

const defaultPlanWeeks = 4

// generatePlanPOST generates a multi-week workout plan from the profile in
// the request body. The optional "weeks" field defaults to four.
func (app *application) generatePlanPOST(w http.ResponseWriter, r *http.Request) {
	raw, ok := app.decodeBody(w, r)
	if !ok {
		return
	}
	profile, ok := app.profileFromBody(w, r, raw)
	if !ok {
		return
	}

	weeks := defaultPlanWeeks
	if v, present := raw["weeks"]; present {
		n, isNumber := v.(float64)
		if !isNumber || n != float64(int(n)) {
			app.writeJSON(w, r, http.StatusBadRequest, errorEnvelope{
				Error:   true,
				Message: "weeks must be a whole number",
			})
			return
		}
		weeks = int(n)
	}

	plan, err := app.planner.GeneratePlan(profile, weeks)
	if err != nil {
		app.plannerError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"plan": plan})
}
