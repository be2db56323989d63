package planner

// Progression scales one week's exercise doses. Week one always equals the
// plain difficulty modifier; later weeks load volume faster than intensity.
type Progression struct {
	VolumeMultiplier    float64 `json:"volume_multiplier"`
	IntensityMultiplier float64 `json:"intensity_multiplier"`
	ComplexityLevel     int     `json:"complexity_level"`
}

// ProgressionPolicy decides how exercise doses grow from week to week.
// Implementations must be deterministic.
type ProgressionPolicy interface {
	ForWeek(week int, modifier float64) Progression
}

// LinearProgression is the default policy: volume grows 10% and intensity 5%
// per week, both scaled by the difficulty modifier, with complexity stepping
// up every other week to a cap of 3.
type LinearProgression struct{}

func (LinearProgression) ForWeek(week int, modifier float64) Progression {
	if week < 1 {
		week = 1
	}
	return Progression{
		VolumeMultiplier:    round3((1 + 0.1*float64(week-1)) * modifier),
		IntensityMultiplier: round3((1 + 0.05*float64(week-1)) * modifier),
		ComplexityLevel:     min(3, 1+(week-1)/2),
	}
}
