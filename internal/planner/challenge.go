package planner

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// RangePolicy decides what happens when a batch challenge request exceeds the
// day cap.
type RangePolicy int

const (
	// RangeTruncate clamps the range to the cap and generates the first days.
	RangeTruncate RangePolicy = iota
	// RangeReject fails the whole request with an invalid-argument error.
	RangeReject
)

// maxBatchDays caps a single batch request. Longer horizons add no value
// because every day can be recomputed on demand.
const maxBatchDays = 31

// dateFormat is the ISO date layout used for challenge dates throughout.
const dateFormat = "2006-01-02"

// challengeEpoch anchors the progression week for challenges. Dates before the
// epoch clamp to week one.
var challengeEpoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// challengeWeek maps a date onto a progression week counted from the epoch.
func challengeWeek(date time.Time) int {
	days := int(midnightUTC(date).Sub(challengeEpoch).Hours() / 24)
	if days < 0 {
		return 1
	}
	return days/7 + 1
}

// generateChallenge builds the deterministic challenge for a single date. The
// random source is seeded from the profile's goal, fitness level, and the
// date, so two calls with the same inputs produce bit-identical challenges.
func generateChallenge(catalog *Catalog, profile Profile, date time.Time, progression ProgressionPolicy) (Challenge, error) {
	split, ok := catalog.Splits[profile.Goal]
	if !ok {
		return Challenge{}, &UnknownGoalError{Goal: profile.Goal, Known: catalog.Goals()}
	}

	seed := challengeSeed(profile, date)
	rng := rand.New(rand.NewPCG(seed, seed))

	workoutType := split[rng.IntN(len(split))]
	pool := filteredPool(catalog, profile.HealthConditions, workoutType)
	if len(pool) == 0 {
		pool = []Exercise{fallbackExercise(workoutType)}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	count := min(challengeExerciseCount(profile.FitnessLevel), len(pool))
	selected := pool[:count]

	modifier := Score(profile)
	prog := progression.ForWeek(challengeWeek(date), modifier)
	duration := sessionMinutes(profile.FitnessLevel, workoutType)

	var intensitySum float64
	for _, exercise := range selected {
		intensitySum += exercise.BaseIntensity
	}

	weekday := date.Weekday().String()
	return Challenge{
		Name:            fmt.Sprintf("%s %s challenge", weekday, workoutType),
		Date:            date.Format(dateFormat),
		Day:             strings.ToLower(weekday),
		Type:            workoutType,
		Level:           profile.FitnessLevel,
		Score:           round1(modifier * intensitySum),
		DurationMinutes: duration,
		Exercises:       formatExercises(selected, workoutType, prog, duration),
		Equipment:       equipmentFor(catalog, selected),
	}, nil
}

// challengeSeed hashes the inputs that make a challenge unique. Profile
// fields that do not change the selection (weight, gender) are left out so
// that unrelated edits keep the challenge stable.
func challengeSeed(profile Profile, date time.Time) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s", profile.Goal, profile.FitnessLevel, date.Format(dateFormat))
	return h.Sum64()
}

func challengeExerciseCount(level Level) int {
	switch level {
	case LevelBeginner:
		return 2
	case LevelAdvanced:
		return 4
	default:
		return 3
	}
}

// generateChallenges builds one challenge per day from start to end inclusive.
// Days are computed concurrently; ordering and determinism are unaffected
// because each entry is a pure function of its date.
func generateChallenges(catalog *Catalog, profile Profile, start, end time.Time, rangePolicy RangePolicy, progression ProgressionPolicy) ([]Challenge, error) {
	start = midnightUTC(start)
	end = midnightUTC(end)
	if start.After(end) {
		return nil, &InvalidArgumentError{Message: "start date is after end date"}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxBatchDays {
		if rangePolicy == RangeReject {
			return nil, &InvalidArgumentError{
				Message: fmt.Sprintf("date range covers %d days, maximum is %d", days, maxBatchDays),
			}
		}
		days = maxBatchDays
	}

	challenges := make([]Challenge, days)
	var g errgroup.Group
	g.SetLimit(8)
	for i := range challenges {
		g.Go(func() error {
			challenge, err := generateChallenge(catalog, profile, start.AddDate(0, 0, i), progression)
			if err != nil {
				return err
			}
			challenges[i] = challenge
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return challenges, nil
}

// midnightUTC drops the time-of-day and location so that day arithmetic is
// exact regardless of daylight saving transitions.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
