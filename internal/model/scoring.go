package model

import "math"

// Tier thresholds on the 0-100 score.
const (
	HighTierScore   = 80
	MediumTierScore = 55
)

// ViralTier maps a score to its viral potential tier.
func ViralTier(score int) ViralPotential {
	switch {
	case score >= HighTierScore:
		return ViralHigh
	case score >= MediumTierScore:
		return ViralMedium
	default:
		return ViralLow
	}
}

// ClampScore rounds v and bounds it to [lo, hi].
func ClampScore(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return lo
	}
	r := int(math.Round(v))
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}
