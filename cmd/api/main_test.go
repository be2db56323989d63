package main

import (
	"testing"

	"github.com/mvirtane/fitplan/internal/e2etest"
	"github.com/mvirtane/fitplan/internal/testhelpers"
)

// startTestServer boots run() with a dynamically allocated port and an
// in-memory catalog database.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	env := map[string]string{
		"FITPLAN_ADDR":       "localhost:0",
		"FITPLAN_SQLITE_URL": ":memory:",
	}
	lookupEnv := func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), lookupEnv, run)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	return server
}

// testProfileBody returns a valid request body. Extra fields are merged on
// top so tests can override or extend it.
func testProfileBody(extra map[string]any) map[string]any {
	body := map[string]any{
		"age":            30,
		"height":         180,
		"weight":         75,
		"gender":         "male",
		"fitness_level":  "intermediate",
		"goal":           "strength",
		"preferred_days": []string{"monday", "wednesday", "friday"},
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}
