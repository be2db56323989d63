package planner

// DayAssignment pairs a preferred day with the workout type scheduled on it.
type DayAssignment struct {
	Day  string
	Type Type
}

// SchedulePolicy reconciles a goal's split template with the user's preferred
// days. Implementations must be deterministic.
type SchedulePolicy interface {
	Assign(days []string, split []Type) []DayAssignment
}

// CycleSchedule is the default policy: the split template wraps around when
// the user trains more days than the template covers and is truncated when
// they train fewer.
type CycleSchedule struct{}

func (CycleSchedule) Assign(days []string, split []Type) []DayAssignment {
	assignments := make([]DayAssignment, len(days))
	for i, day := range days {
		assignments[i] = DayAssignment{Day: day, Type: split[i%len(split)]}
	}
	return assignments
}
