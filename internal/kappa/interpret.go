package kappa

import "math"

// Level is a qualitative agreement band per Landis & Koch (1977).
type Level int

const (
	NoData Level = iota
	Poor
	Slight
	Fair
	Moderate
	Substantial
	AlmostPerfect
)

var levelNames = map[Level]string{
	NoData:        "No data",
	Poor:          "Poor agreement",
	Slight:        "Slight agreement",
	Fair:          "Fair agreement",
	Moderate:      "Moderate agreement",
	Substantial:   "Substantial agreement",
	AlmostPerfect: "Almost perfect agreement",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Interpret maps a kappa value onto its agreement band. The bands are
// contiguous and non-overlapping, evaluated highest first, so every
// finite value lands in exactly one. NaN is checked explicitly up front
// rather than relying on its comparison semantics falling through.
func Interpret(kappa float64) Level {
	switch {
	case math.IsNaN(kappa):
		return NoData
	case kappa >= 0.81:
		return AlmostPerfect
	case kappa >= 0.61:
		return Substantial
	case kappa >= 0.41:
		return Moderate
	case kappa >= 0.21:
		return Fair
	case kappa >= 0.01:
		return Slight
	default:
		return Poor
	}
}
