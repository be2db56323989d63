package planner

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogValidate(t *testing.T) {
	if err := testCatalog().Validate(); err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantMsg string
	}{
		{
			name: "split references unknown workout type",
			mutate: func(c *Catalog) {
				c.Splits["strength"] = []Type{"strength", "crossfit"}
			},
			wantMsg: "unknown workout type",
		},
		{
			name: "empty split template",
			mutate: func(c *Catalog) {
				c.Splits["strength"] = nil
			},
			wantMsg: "empty split template",
		},
		{
			name: "restriction references unknown exercise",
			mutate: func(c *Catalog) {
				c.Restrictions[ConditionKneePain].Exercises["Leg Day"] = struct{}{}
			},
			wantMsg: "unknown exercise",
		},
		{
			name: "restriction references unknown equipment",
			mutate: func(c *Catalog) {
				c.Restrictions[ConditionBackPain].Equipment["Smith Machine"] = struct{}{}
			},
			wantMsg: "unknown equipment",
		},
		{
			name: "workout type without exercises",
			mutate: func(c *Catalog) {
				c.WorkoutTypes["hiit"] = nil
			},
			wantMsg: "no exercises",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := testCatalog()
			tt.mutate(catalog)
			err := catalog.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	catalog := testCatalog()

	wantTypes := []Type{"cardio", "strength", "flexibility", "hiit"}
	if diff := cmp.Diff(wantTypes, catalog.Types()); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}

	wantGoals := []string{"strength", "weight_loss"}
	if diff := cmp.Diff(wantGoals, catalog.Goals()); diff != "" {
		t.Errorf("Goals() mismatch (-want +got):\n%s", diff)
	}

	wantEquipment := []string{"Barbell", "Stationary Bike", "Weight Plates", "Yoga Mat"}
	if diff := cmp.Diff(wantEquipment, catalog.AllEquipment()); diff != "" {
		t.Errorf("AllEquipment() mismatch (-want +got):\n%s", diff)
	}

	exercise, err := catalog.ExerciseByName("Deadlifts")
	if err != nil {
		t.Fatalf("ExerciseByName: %v", err)
	}
	if exercise.Type != "strength" || exercise.BaseIntensity != 8 {
		t.Errorf("unexpected exercise: %+v", exercise)
	}

	if _, err := catalog.ExerciseByName("Underwater Basket Weaving"); err == nil {
		t.Error("expected error for unknown exercise")
	}

	if _, err := catalog.Exercises("crossfit"); err == nil {
		t.Error("expected error for unknown workout type")
	}
}
