package main

import (
	"net/http"
	"strings"
	"testing"
)

type planResponse struct {
	Plan struct {
		Goal               string  `json:"goal"`
		DifficultyModifier float64 `json:"difficulty_modifier"`
		Weeks              []struct {
			Number int `json:"number"`
			Days   []struct {
				Day             string `json:"day"`
				Type            string `json:"type"`
				DurationMinutes int    `json:"duration_minutes"`
				Exercises       []struct {
					Name string `json:"name"`
					Sets int    `json:"sets"`
					Reps int    `json:"reps"`
				} `json:"exercises"`
			} `json:"days"`
		} `json:"weeks"`
	} `json:"plan"`
}

func TestGeneratePlanPOST(t *testing.T) {
	t.Parallel()
	server := startTestServer(t)

	var body planResponse
	status, err := server.Client().PostJSON(t.Context(), "/api/generate-plan",
		testProfileBody(map[string]any{"weeks": 2}), &body)
	if err != nil {
		t.Fatalf("post generate-plan: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}

	plan := body.Plan
	if plan.Goal != "strength" {
		t.Errorf("goal = %q, want strength", plan.Goal)
	}
	if plan.DifficultyModifier != 1.21 {
		t.Errorf("difficulty modifier = %v, want 1.21", plan.DifficultyModifier)
	}
	if len(plan.Weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(plan.Weeks))
	}
	for _, week := range plan.Weeks {
		if len(week.Days) != 3 {
			t.Fatalf("week %d days = %d, want 3", week.Number, len(week.Days))
		}
		if week.Days[0].Day != "monday" || week.Days[0].Type != "strength" {
			t.Errorf("first day = %s/%s, want monday/strength", week.Days[0].Day, week.Days[0].Type)
		}
		for _, day := range week.Days {
			if len(day.Exercises) == 0 {
				t.Errorf("%s has no exercises", day.Day)
			}
		}
	}
}

func TestGeneratePlanPOSTDefaultsToFourWeeks(t *testing.T) {
	t.Parallel()
	server := startTestServer(t)

	var body planResponse
	status, err := server.Client().PostJSON(t.Context(), "/api/generate-plan", testProfileBody(nil), &body)
	if err != nil {
		t.Fatalf("post generate-plan: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if len(body.Plan.Weeks) != 4 {
		t.Errorf("weeks = %d, want 4", len(body.Plan.Weeks))
	}
}

func TestGeneratePlanPOSTValidation(t *testing.T) {
	t.Parallel()
	server := startTestServer(t)

	t.Run("missing fields listed at once", func(t *testing.T) {
		var body errorEnvelope
		status, err := server.Client().PostJSON(t.Context(), "/api/generate-plan",
			map[string]any{"gender": "male"}, &body)
		if err != nil {
			t.Fatalf("post generate-plan: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", status, http.StatusBadRequest)
		}
		for _, field := range []string{"age", "height", "weight", "fitness_level", "goal", "preferred_days"} {
			if !strings.Contains(body.Message, field) {
				t.Errorf("message %q does not mention %q", body.Message, field)
			}
		}
	})

	t.Run("non-positive weeks", func(t *testing.T) {
		var body errorEnvelope
		status, err := server.Client().PostJSON(t.Context(), "/api/generate-plan",
			testProfileBody(map[string]any{"weeks": 0}), &body)
		if err != nil {
			t.Fatalf("post generate-plan: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", status, http.StatusBadRequest)
		}
	})

	t.Run("unknown goal", func(t *testing.T) {
		var body errorEnvelope
		status, err := server.Client().PostJSON(t.Context(), "/api/generate-plan",
			testProfileBody(map[string]any{"goal": "marathon"}), &body)
		if err != nil {
			t.Fatalf("post generate-plan: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", status, http.StatusNotFound)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		var body errorEnvelope
		status, err := server.Client().PostJSON(t.Context(), "/api/generate-plan", "not an object", &body)
		if err != nil {
			t.Fatalf("post generate-plan: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", status, http.StatusBadRequest)
		}
	})
}

func TestCalculateDifficultyPOST(t *testing.T) {
	t.Parallel()
	server := startTestServer(t)

	var body struct {
		DifficultyModifier float64 `json:"difficulty_modifier"`
		FitnessLevel       string  `json:"fitness_level"`
		Goal               string  `json:"goal"`
	}
	status, err := server.Client().PostJSON(t.Context(), "/api/calculate-difficulty", testProfileBody(nil), &body)
	if err != nil {
		t.Fatalf("post calculate-difficulty: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if body.DifficultyModifier != 1.21 {
		t.Errorf("difficulty modifier = %v, want 1.21", body.DifficultyModifier)
	}
	if body.FitnessLevel != "intermediate" || body.Goal != "strength" {
		t.Errorf("echoed profile = %s/%s", body.FitnessLevel, body.Goal)
	}
}
