package main

import (
	"net/http"
	"time"
)

// dailyChallengePOST generates the deterministic challenge for the profile in
// the request body. The optional "date" field defaults to today.
func (app *application) dailyChallengePOST(w http.ResponseWriter, r *http.Request) {
	raw, ok := app.decodeBody(w, r)
	if !ok {
		return
	}
	profile, ok := app.profileFromBody(w, r, raw)
	if !ok {
		return
	}

	var date time.Time
	if v, present := raw["date"]; present {
		s, isString := v.(string)
		if !isString {
			app.writeJSON(w, r, http.StatusBadRequest, errorEnvelope{
				Error:   true,
				Message: "date must be a string",
			})
			return
		}
		var err error
		if date, err = app.planner.ParseDate(s); err != nil {
			app.plannerError(w, r, err)
			return
		}
	}

	challenge, err := app.planner.GenerateChallenge(profile, date)
	if err != nil {
		app.plannerError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"challenge": challenge})
}

// dailyChallengesBatchPOST generates one challenge per day between the
// required "start_date" and "end_date" fields, inclusive.
func (app *application) dailyChallengesBatchPOST(w http.ResponseWriter, r *http.Request) {
	raw, ok := app.decodeBody(w, r)
	if !ok {
		return
	}
	profile, ok := app.profileFromBody(w, r, raw)
	if !ok {
		return
	}

	start, ok := app.dateFromBody(w, r, raw, "start_date")
	if !ok {
		return
	}
	end, ok := app.dateFromBody(w, r, raw, "end_date")
	if !ok {
		return
	}

	challenges, err := app.planner.GenerateChallenges(profile, start, end)
	if err != nil {
		app.plannerError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"challenges": challenges,
		"count":      len(challenges),
	})
}

func (app *application) dateFromBody(
	w http.ResponseWriter, r *http.Request, raw map[string]any, field string,
) (time.Time, bool) {
	v, present := raw[field]
	if !present {
		app.writeJSON(w, r, http.StatusBadRequest, errorEnvelope{
			Error:   true,
			Message: field + " is required",
		})
		return time.Time{}, false
	}
	s, isString := v.(string)
	if !isString {
		app.writeJSON(w, r, http.StatusBadRequest, errorEnvelope{
			Error:   true,
			Message: field + " must be a string",
		})
		return time.Time{}, false
	}
	date, err := app.planner.ParseDate(s)
	if err != nil {
		app.plannerError(w, r, err)
		return time.Time{}, false
	}
	return date, true
}
