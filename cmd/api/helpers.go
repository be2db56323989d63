package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mvirtane/fitplan/internal/planner"
)

// errorEnvelope is the JSON shape of every error response.
type errorEnvelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", slog.Any("error", err))
	}
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorEnvelope{
		Error:   true,
		Message: "internal server error",
	})
}

// plannerError maps the planner's typed errors onto HTTP statuses: bad input
// is 400, unknown catalog entries are 404, everything else is a server error.
func (app *application) plannerError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *planner.ValidationError
		argumentErr   *planner.InvalidArgumentError
		dateErr       *planner.DateParseError
		goalErr       *planner.UnknownGoalError
		typeErr       *planner.UnknownWorkoutTypeError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &argumentErr), errors.As(err, &dateErr):
		app.writeJSON(w, r, http.StatusBadRequest, errorEnvelope{Error: true, Message: err.Error()})
	case errors.As(err, &goalErr), errors.As(err, &typeErr), errors.Is(err, planner.ErrNotFound):
		app.writeJSON(w, r, http.StatusNotFound, errorEnvelope{Error: true, Message: err.Error()})
	default:
		app.serverError(w, r, err)
	}
}

// decodeBody decodes a JSON request body into a raw map. A missing or
// malformed body reports 400 and returns false.
func (app *application) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		app.writeJSON(w, r, http.StatusBadRequest, errorEnvelope{
			Error:   true,
			Message: "request body must be a JSON object",
		})
		return nil, false
	}
	return raw, true
}

// profileFromBody parses the profile fields of a raw request body. Validation
// failures are reported to the client with every problem listed at once.
func (app *application) profileFromBody(w http.ResponseWriter, r *http.Request, raw map[string]any) (planner.Profile, bool) {
	profile, err := app.planner.ParseProfile(raw)
	if err != nil {
		app.plannerError(w, r, err)
		return planner.Profile{}, false
	}
	return profile, true
}
