package planner

import (
	"fmt"
	"strings"

	"github.com/mvirtane/fitplan/internal/errors"
)

// ErrNotFound is returned when a catalog lookup finds nothing.
var ErrNotFound = errors.NewSentinel("not found")

// FieldError describes a single rejected profile field.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError reports everything wrong with a raw profile in one value so
// that the caller can fix all fields at once.
type ValidationError struct {
	Missing []string
	Invalid []FieldError
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	for _, f := range e.Invalid {
		parts = append(parts, fmt.Sprintf("invalid %s: %s", f.Field, f.Reason))
	}
	if len(parts) == 0 {
		return "invalid profile"
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

// UnknownGoalError is returned when a profile's goal has no split template in
// the catalog.
type UnknownGoalError struct {
	Goal  string
	Known []string
}

func (e *UnknownGoalError) Error() string {
	return fmt.Sprintf("unknown goal %q, known goals: %s", e.Goal, strings.Join(e.Known, ", "))
}

// UnknownWorkoutTypeError is returned when a workout type filter does not
// match the catalog.
type UnknownWorkoutTypeError struct {
	Type Type
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q", string(e.Type))
}

// InvalidArgumentError reports an argument that is out of range for an
// otherwise valid operation.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// DateParseError is returned when a date string does not match the expected
// ISO format.
type DateParseError struct {
	Input  string
	Format string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parse date %q: expected format %s", e.Input, e.Format)
}
