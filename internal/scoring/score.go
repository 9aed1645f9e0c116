// Package scoring converts service exposure factors and categorical ratings
// into exposure and aggregate risk scores, and maps scores to profile tiers.
//
// Every function here is pure. Inputs are assumed to be in range; range
// checks belong to the collectors in the model and stepper packages.
package scoring

import "math"

// Exposure sub-factor weights.
const (
	reachabilityWeight = 0.5
	availabilityWeight = 0.17
	privilegeWeight    = 0.17
	interactionWeight  = 0.16
)

// Weights are the coefficients of the weighted aggregate.
type Weights struct {
	Exposure       float64 `json:"exposure" yaml:"exposure"`
	Criticality    float64 `json:"criticality" yaml:"criticality"`
	Classification float64 `json:"classification" yaml:"classification"`
}

// DefaultWeights are the weights every call site in this tool uses.
var DefaultWeights = Weights{Exposure: 0.4, Criticality: 0.3, Classification: 0.3}

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Exposure combines reachability r ∈ [0,2] with availability o, privilege p
// and interaction i (each ∈ [0,1]).
func Exposure(r, o, p, i float64) float64 {
	return Round2(reachabilityWeight*r + availabilityWeight*o + privilegeWeight*p + interactionWeight*i)
}

// WeightedScore is a linear combination of exposure e, criticality c and
// classification d. The weights need not sum to one.
func WeightedScore(e, c, d, we, wc, wd float64) float64 {
	return Round2(we*e + wc*c + wd*d)
}

// MaxDominant returns the largest of e, c and d.
func MaxDominant(e, c, d float64) float64 {
	return Round2(math.Max(e, math.Max(c, d)))
}

// CVSSInspired averages the mean of c and d with e.
func CVSSInspired(e, c, d float64) float64 {
	return Round2(((c+d)/2 + e) / 2)
}
