package planner

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/mvirtane/fitplan/internal/sqlite"
)

// Service is the facade over the planner. It owns the immutable catalog and
// exposes plan, difficulty, and challenge generation without any HTTP or
// persistence concerns leaking in either direction.
type Service struct {
	catalog     *Catalog
	logger      *slog.Logger
	schedule    SchedulePolicy
	progression ProgressionPolicy
	rangePolicy RangePolicy
}

// Option configures a Service.
type Option func(*Service)

// WithSchedulePolicy overrides how split templates map onto preferred days.
func WithSchedulePolicy(policy SchedulePolicy) Option {
	return func(s *Service) {
		s.schedule = policy
	}
}

// WithProgressionPolicy overrides how doses grow across plan weeks and
// challenge epochs.
func WithProgressionPolicy(policy ProgressionPolicy) Option {
	return func(s *Service) {
		s.progression = policy
	}
}

// WithRangePolicy overrides the batch challenge cap behavior.
func WithRangePolicy(policy RangePolicy) Option {
	return func(s *Service) {
		s.rangePolicy = policy
	}
}

// NewService loads the catalog from the database and validates it. The
// database is not used after NewService returns.
func NewService(ctx context.Context, db *sqlite.Database, logger *slog.Logger, opts ...Option) (*Service, error) {
	catalog, err := loadCatalog(ctx, db.ReadOnly)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	service := &Service{
		catalog:     catalog,
		logger:      logger,
		schedule:    CycleSchedule{},
		progression: LinearProgression{},
		rangePolicy: RangeTruncate,
	}
	for _, opt := range opts {
		opt(service)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "catalog loaded",
		slog.Int("workoutTypes", len(catalog.WorkoutTypes)),
		slog.Int("goals", len(catalog.Splits)))
	return service, nil
}

// ParseProfile validates and normalizes a decoded JSON object.
func (s *Service) ParseProfile(raw map[string]any) (Profile, error) {
	return ParseProfile(raw)
}

// WorkoutTypes returns the workout types in catalog order.
func (s *Service) WorkoutTypes() []Type {
	return s.catalog.Types()
}

// Exercises returns catalog exercises grouped by workout type. A non-empty
// filter narrows the result to that type or fails if the type is unknown.
func (s *Service) Exercises(filter Type) (map[Type][]Exercise, error) {
	if filter != "" {
		exercises, err := s.catalog.Exercises(filter)
		if err != nil {
			return nil, err
		}
		return map[Type][]Exercise{filter: slices.Clone(exercises)}, nil
	}
	all := make(map[Type][]Exercise, len(s.catalog.WorkoutTypes))
	for workoutType, exercises := range s.catalog.WorkoutTypes {
		all[workoutType] = slices.Clone(exercises)
	}
	return all, nil
}

// Equipment returns the exercise-to-equipment mapping. The result is a copy;
// callers cannot reach the catalog's own entries through it.
func (s *Service) Equipment() map[string][]string {
	equipment := make(map[string][]string, len(s.catalog.Equipment))
	for name, items := range s.catalog.Equipment {
		equipment[name] = slices.Clone(items)
	}
	return equipment
}

// Goals returns the known goals sorted alphabetically.
func (s *Service) Goals() []string {
	return s.catalog.Goals()
}

// ExerciseInfo finds a single exercise by name, including its markdown
// description.
func (s *Service) ExerciseInfo(name string) (Exercise, error) {
	return s.catalog.ExerciseByName(name)
}

// Score computes the difficulty modifier for a profile.
func (s *Service) Score(profile Profile) float64 {
	return Score(profile)
}

// GeneratePlan builds a multi-week plan for the profile.
func (s *Service) GeneratePlan(profile Profile, weeks int) (Plan, error) {
	return generatePlan(s.catalog, profile, weeks, s.schedule, s.progression)
}

// GenerateChallenge builds the deterministic challenge for a date. A zero
// date means today.
func (s *Service) GenerateChallenge(profile Profile, date time.Time) (Challenge, error) {
	if date.IsZero() {
		date = time.Now()
	}
	return generateChallenge(s.catalog, profile, date, s.progression)
}

// GenerateChallenges builds one challenge per day from start to end
// inclusive.
func (s *Service) GenerateChallenges(profile Profile, start, end time.Time) ([]Challenge, error) {
	return generateChallenges(s.catalog, profile, start, end, s.rangePolicy, s.progression)
}

// ParseDate parses an ISO "2006-01-02" date.
func (s *Service) ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, &DateParseError{Input: value, Format: dateFormat}
	}
	return date, nil
}
