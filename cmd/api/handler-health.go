package main

import (
	"net/http"
	"time"
)

// healthGET responds with a JSON object indicating that the server is healthy.
func (app *application) healthGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
