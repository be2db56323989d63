package planner

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateChallengeDeterminism(t *testing.T) {
	catalog := testCatalog()
	profile := testProfile()
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	first, err := generateChallenge(catalog, profile, date, LinearProgression{})
	if err != nil {
		t.Fatalf("generateChallenge: %v", err)
	}
	for range 5 {
		again, err := generateChallenge(catalog, profile, date, LinearProgression{})
		if err != nil {
			t.Fatalf("generateChallenge: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("challenge not deterministic (-first +again):\n%s", diff)
		}
	}
}

func TestGenerateChallengeIgnoresUnrelatedProfileFields(t *testing.T) {
	catalog := testCatalog()
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	base := testProfile()
	other := testProfile()
	other.WeightKg = 90
	other.HeightCm = 170
	other.Gender = "female"

	got, err := generateChallenge(catalog, base, date, LinearProgression{})
	if err != nil {
		t.Fatalf("generateChallenge: %v", err)
	}
	want, err := generateChallenge(catalog, other, date, LinearProgression{})
	if err != nil {
		t.Fatalf("generateChallenge: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("weight and gender changed the challenge (-want +got):\n%s", diff)
	}
}

func TestGenerateChallengeShape(t *testing.T) {
	catalog := testCatalog()
	profile := testProfile()
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	challenge, err := generateChallenge(catalog, profile, date, LinearProgression{})
	if err != nil {
		t.Fatalf("generateChallenge: %v", err)
	}

	if challenge.Date != "2025-03-10" {
		t.Errorf("date = %q, want 2025-03-10", challenge.Date)
	}
	if challenge.Day != "monday" {
		t.Errorf("day = %q, want monday", challenge.Day)
	}
	if !slices.Contains(catalog.Splits[profile.Goal], challenge.Type) {
		t.Errorf("type %q not in the goal's split template", challenge.Type)
	}
	if challenge.Level != LevelIntermediate {
		t.Errorf("level = %q, want intermediate", challenge.Level)
	}
	if len(challenge.Exercises) == 0 || len(challenge.Exercises) > 3 {
		t.Errorf("exercise count = %d, want 1..3 for intermediate", len(challenge.Exercises))
	}
	if challenge.Score <= 0 {
		t.Errorf("score = %v, want positive", challenge.Score)
	}
	seen := make(map[string]bool)
	for _, exercise := range challenge.Exercises {
		if seen[exercise.Name] {
			t.Errorf("exercise %q selected twice", exercise.Name)
		}
		seen[exercise.Name] = true
	}
}

func TestGenerateChallengeRespectsRestrictions(t *testing.T) {
	catalog := testCatalog()
	profile := testProfile()
	profile.HealthConditions = []Condition{ConditionKneePain, ConditionBackPain}

	for day := range 31 {
		date := time.Date(2025, time.March, 1+day, 0, 0, 0, 0, time.UTC)
		challenge, err := generateChallenge(catalog, profile, date, LinearProgression{})
		if err != nil {
			t.Fatalf("generateChallenge: %v", err)
		}
		for _, exercise := range challenge.Exercises {
			switch exercise.Name {
			case "Squats", "Lunges", "Jump Rope", "Squat Jumps", "Deadlifts":
				t.Errorf("restricted exercise %q in challenge for %s", exercise.Name, challenge.Date)
			}
		}
	}
}

func TestGenerateChallengesMatchesSingleDays(t *testing.T) {
	catalog := testCatalog()
	profile := testProfile()

	// The range crosses a month boundary on purpose.
	start := time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)

	batch, err := generateChallenges(catalog, profile, start, end, RangeTruncate, LinearProgression{})
	if err != nil {
		t.Fatalf("generateChallenges: %v", err)
	}
	if len(batch) != 6 {
		t.Fatalf("batch size = %d, want 6", len(batch))
	}

	for i, got := range batch {
		want, err := generateChallenge(catalog, profile, start.AddDate(0, 0, i), LinearProgression{})
		if err != nil {
			t.Fatalf("generateChallenge: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("batch entry %d differs from single-day result (-want +got):\n%s", i, diff)
		}
	}
}

func TestGenerateChallengesCapsRange(t *testing.T) {
	catalog := testCatalog()
	profile := testProfile()
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 100)

	t.Run("truncate", func(t *testing.T) {
		batch, err := generateChallenges(catalog, profile, start, end, RangeTruncate, LinearProgression{})
		if err != nil {
			t.Fatalf("generateChallenges: %v", err)
		}
		if len(batch) != maxBatchDays {
			t.Errorf("batch size = %d, want %d", len(batch), maxBatchDays)
		}
		if batch[0].Date != "2025-01-01" || batch[len(batch)-1].Date != "2025-01-31" {
			t.Errorf("truncated range = %s..%s, want 2025-01-01..2025-01-31",
				batch[0].Date, batch[len(batch)-1].Date)
		}
	})

	t.Run("reject", func(t *testing.T) {
		_, err := generateChallenges(catalog, profile, start, end, RangeReject, LinearProgression{})
		var argErr *InvalidArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("want *InvalidArgumentError, got %v", err)
		}
	})
}

func TestGenerateChallengesRejectsInvertedRange(t *testing.T) {
	start := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, err := generateChallenges(testCatalog(), testProfile(), start, end, RangeTruncate, LinearProgression{})
	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("want *InvalidArgumentError, got %v", err)
	}
}
