package scoring

import "fmt"

// Tier is a five-band profile label derived from a score.
type Tier string

const (
	TierP1 Tier = "P1"
	TierP2 Tier = "P2"
	TierP3 Tier = "P3"
	TierP4 Tier = "P4"
	TierP5 Tier = "P5"
)

// Band boundaries. A score equal to a boundary belongs to the band that starts there.
const (
	boundP2 = 1.5
	boundP3 = 2.0
	boundP4 = 3.0
	boundP5 = 4.0
)

// Bands are the fixed edges of the five tiers on the 0-5 chart axis.
var Bands = [6]float64{0, boundP2, boundP3, boundP4, boundP5, 5}

// Tiers lists all tiers in band order.
var Tiers = [5]Tier{TierP1, TierP2, TierP3, TierP4, TierP5}

// MapScoreToProfile returns the tier whose half-open band contains score.
// 1.5 → P2, 2.0 → P3, 3.0 → P4, 4.0 → P5.
func MapScoreToProfile(score float64) Tier {
	switch {
	case score < boundP2:
		return TierP1
	case score < boundP3:
		return TierP2
	case score < boundP4:
		return TierP3
	case score < boundP5:
		return TierP4
	default:
		return TierP5
	}
}

// BandOf returns the [lo, hi) chart range for a tier.
func BandOf(t Tier) (lo, hi float64, err error) {
	for i, tt := range Tiers {
		if tt == t {
			return Bands[i], Bands[i+1], nil
		}
	}
	return 0, 0, fmt.Errorf("unknown tier %q", t)
}
