package planner

import "math"

// Score computes the difficulty modifier for a profile. The modifier scales
// exercise doses and intensities everywhere else in the package.
//
// It is a pure function: base by fitness level, reduced for any health
// condition and for age, then biased by goal. The result is strictly
// increasing in fitness level for otherwise identical profiles.
func Score(profile Profile) float64 {
	modifier := 1.1
	switch profile.FitnessLevel {
	case LevelBeginner:
		modifier = 0.8
	case LevelIntermediate:
		modifier = 1.1
	case LevelAdvanced:
		modifier = 1.4
	}

	if len(profile.HealthConditions) > 0 {
		modifier *= 0.9
	}

	switch {
	case profile.Age >= 60:
		modifier *= 0.85
	case profile.Age >= 45:
		modifier *= 0.95
	}

	switch profile.Goal {
	case "strength", "muscle_gain":
		modifier *= 1.1
	case "endurance":
		modifier *= 0.95
	case "flexibility":
		modifier *= 0.9
	}

	return round3(math.Max(modifier, 0.1))
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
