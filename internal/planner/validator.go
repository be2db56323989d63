package planner

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// weekOrder lists weekday names monday-first. Preferred days are always
// reported in this order.
var weekOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// dayRotation is the canonical rotation used when preferred_days arrives as a
// count instead of a list: n days selects the first n entries.
var dayRotation = []string{"monday", "wednesday", "friday", "tuesday", "thursday", "saturday", "sunday"}

var levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseProfile validates and normalizes a decoded JSON object into a Profile.
// All normalization happens here: downstream code never lowercases, aliases,
// or deduplicates profile fields again.
//
// Every problem with the input is collected into a single *ValidationError so
// that the caller sees all missing and invalid fields at once.
func ParseProfile(raw map[string]any) (Profile, error) {
	verr := &ValidationError{}
	invalid := func(field, reason string) {
		verr.Invalid = append(verr.Invalid, FieldError{Field: field, Reason: reason})
	}

	var profile Profile

	for _, field := range []string{"age", "height", "weight", "gender", "fitness_level", "goal", "preferred_days"} {
		if _, ok := raw[field]; !ok {
			verr.Missing = append(verr.Missing, field)
		}
	}

	if v, ok := raw["age"]; ok {
		age, convOK := toFloat(v)
		switch {
		case !convOK:
			invalid("age", "must be a number")
		case age <= 0 || age != float64(int(age)):
			invalid("age", "must be a positive whole number")
		default:
			profile.Age = int(age)
		}
	}
	if v, ok := raw["height"]; ok {
		height, convOK := toFloat(v)
		switch {
		case !convOK:
			invalid("height", "must be a number")
		case height <= 0:
			invalid("height", "must be positive")
		default:
			profile.HeightCm = height
		}
	}
	if v, ok := raw["weight"]; ok {
		weight, convOK := toFloat(v)
		switch {
		case !convOK:
			invalid("weight", "must be a number")
		case weight <= 0:
			invalid("weight", "must be positive")
		default:
			profile.WeightKg = weight
		}
	}

	if v, ok := raw["gender"]; ok {
		gender, convOK := v.(string)
		if !convOK || strings.TrimSpace(gender) == "" {
			invalid("gender", "must be a non-empty string")
		} else {
			profile.Gender = strings.ToLower(strings.TrimSpace(gender))
		}
	}

	if v, ok := raw["fitness_level"]; ok {
		s, convOK := v.(string)
		level := Level(normalizeKey(s))
		switch {
		case !convOK:
			invalid("fitness_level", "must be a string")
		case !slices.Contains(levels, level):
			invalid("fitness_level", "must be one of beginner, intermediate, advanced")
		default:
			profile.FitnessLevel = level
		}
	}

	if v, ok := raw["goal"]; ok {
		s, convOK := v.(string)
		if !convOK || normalizeKey(s) == "" {
			invalid("goal", "must be a non-empty string")
		} else {
			profile.Goal = normalizeKey(s)
		}
	}

	if v, ok := raw["preferred_days"]; ok {
		days, reason := parsePreferredDays(v)
		if reason != "" {
			invalid("preferred_days", reason)
		} else {
			profile.PreferredDays = days
		}
	}

	if v, ok := raw["health_conditions"]; ok {
		conditions, reason := parseHealthConditions(v)
		if reason != "" {
			invalid("health_conditions", reason)
		} else {
			profile.HealthConditions = conditions
		}
	}

	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return Profile{}, verr
	}
	return profile, nil
}

// parsePreferredDays accepts a list of weekday names or a day count between 1
// and 7. A count selects the first n entries of the canonical rotation. The
// result is deduplicated and ordered monday-first; the empty string return
// value signals success.
func parsePreferredDays(v any) ([]string, string) {
	switch value := v.(type) {
	case []string:
		entries := make([]any, len(value))
		for i, s := range value {
			entries[i] = s
		}
		return parsePreferredDays(entries)
	case []any:
		seen := make(map[string]struct{})
		for _, entry := range value {
			s, ok := entry.(string)
			if !ok {
				return nil, "entries must be weekday names"
			}
			day := normalizeKey(s)
			if !slices.Contains(weekOrder, day) {
				return nil, fmt.Sprintf("unknown weekday %q", s)
			}
			seen[day] = struct{}{}
		}
		days := orderDays(seen)
		if len(days) == 0 {
			return nil, "must name at least one day"
		}
		return days, ""
	default:
		// Only lists and numeric day counts are accepted. A bare weekday
		// string is rejected rather than treated as a one-day list.
		if _, isString := v.(string); isString {
			return nil, "must be a list of weekday names or a day count"
		}
		count, ok := toFloat(v)
		if !ok {
			return nil, "must be a list of weekday names or a day count"
		}
		if count != float64(int(count)) || count < 1 || count > 7 {
			return nil, "day count must be a whole number between 1 and 7"
		}
		seen := make(map[string]struct{})
		for _, day := range dayRotation[:int(count)] {
			seen[day] = struct{}{}
		}
		return orderDays(seen), ""
	}
}

func orderDays(seen map[string]struct{}) []string {
	var days []string
	for _, day := range weekOrder {
		if _, ok := seen[day]; ok {
			days = append(days, day)
		}
	}
	return days
}

// parseHealthConditions normalizes free-form condition names with the common
// aliases, e.g. "bad knees" and "knee problems" both map to knee_pain.
func parseHealthConditions(v any) ([]Condition, string) {
	if strs, ok := v.([]string); ok {
		entries := make([]any, len(strs))
		for i, s := range strs {
			entries[i] = s
		}
		return parseHealthConditions(entries)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, "must be a list of condition names"
	}
	seen := make(map[Condition]struct{})
	for _, entry := range list {
		s, entryOK := entry.(string)
		if !entryOK {
			return nil, "entries must be condition names"
		}
		condition := normalizeCondition(s)
		if condition == "" {
			continue
		}
		seen[condition] = struct{}{}
	}
	conditions := make([]Condition, 0, len(seen))
	for condition := range seen {
		conditions = append(conditions, condition)
	}
	slices.Sort(conditions)
	return conditions, ""
}

func normalizeCondition(s string) Condition {
	normalized := normalizeKey(s)
	switch {
	case strings.Contains(normalized, "knee"):
		return ConditionKneePain
	case strings.Contains(normalized, "back"):
		return ConditionBackPain
	case strings.Contains(normalized, "heart") || strings.Contains(normalized, "cardiac"):
		return ConditionHeartCondition
	case strings.Contains(normalized, "shoulder"):
		return ConditionShoulderInjury
	default:
		// Unknown conditions are kept verbatim. They exclude nothing unless
		// the catalog names them.
		return Condition(normalized)
	}
}

// normalizeKey lowercases and snake_cases a free-form key.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
