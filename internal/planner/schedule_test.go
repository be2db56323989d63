package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCycleSchedule(t *testing.T) {
	split := []Type{"cardio", "strength", "hiit"}

	tests := []struct {
		name string
		days []string
		want []DayAssignment
	}{
		{
			name: "fewer days truncate the template",
			days: []string{"monday", "thursday"},
			want: []DayAssignment{
				{Day: "monday", Type: "cardio"},
				{Day: "thursday", Type: "strength"},
			},
		},
		{
			name: "more days wrap the template",
			days: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			want: []DayAssignment{
				{Day: "monday", Type: "cardio"},
				{Day: "tuesday", Type: "strength"},
				{Day: "wednesday", Type: "hiit"},
				{Day: "thursday", Type: "cardio"},
				{Day: "friday", Type: "strength"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CycleSchedule{}.Assign(tt.days, split)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Assign() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
