package scoring

// Model names used as keys in Profiles and the comparison chart.
const (
	ModelWeighted     = "Weighted"
	ModelMaxDominant  = "Max-Dominant"
	ModelCVSSInspired = "CVSS-Inspired"
)

// Models lists aggregate model names in display order.
var Models = []string{ModelWeighted, ModelMaxDominant, ModelCVSSInspired}

// Factors are the numeric inputs of one computation. Criticality and
// Classification are the 1-5 ratings, used on their own scale.
type Factors struct {
	Reachability            float64
	OperationalAvailability float64
	PrivilegeThreshold      float64
	InteractionDependency   float64
	Criticality             int
	Classification          int
}

// ScoreSet holds the exposure value and the three aggregates, each rounded
// to two decimals.
type ScoreSet struct {
	Exposure     float64
	Weighted     float64
	MaxDominant  float64
	CVSSInspired float64
}

// Result is the payload handed to a display layer.
type Result struct {
	Exposure     float64         `json:"Exposure"`
	Weighted     float64         `json:"Weighted"`
	MaxDominant  float64         `json:"MaxDominant"`
	CVSSInspired float64         `json:"CVSSInspired"`
	Profiles     map[string]Tier `json:"Profiles"`
}

// Scores computes the exposure value and all three aggregates with w.
func Scores(f Factors, w Weights) ScoreSet {
	e := Exposure(f.Reachability, f.OperationalAvailability, f.PrivilegeThreshold, f.InteractionDependency)
	c, d := float64(f.Criticality), float64(f.Classification)
	return ScoreSet{
		Exposure:     e,
		Weighted:     WeightedScore(e, c, d, w.Exposure, w.Criticality, w.Classification),
		MaxDominant:  MaxDominant(e, c, d),
		CVSSInspired: CVSSInspired(e, c, d),
	}
}

// Compute runs the full pipeline with DefaultWeights.
func Compute(f Factors) Result {
	return NewResult(Scores(f, DefaultWeights))
}

// NewResult maps each aggregate in s to its tier.
func NewResult(s ScoreSet) Result {
	return Result{
		Exposure:     s.Exposure,
		Weighted:     s.Weighted,
		MaxDominant:  s.MaxDominant,
		CVSSInspired: s.CVSSInspired,
		Profiles: map[string]Tier{
			ModelWeighted:     MapScoreToProfile(s.Weighted),
			ModelMaxDominant:  MapScoreToProfile(s.MaxDominant),
			ModelCVSSInspired: MapScoreToProfile(s.CVSSInspired),
		},
	}
}

// ScoreFor returns the aggregate named by model, or false if unknown.
func (r Result) ScoreFor(model string) (float64, bool) {
	switch model {
	case ModelWeighted:
		return r.Weighted, true
	case ModelMaxDominant:
		return r.MaxDominant, true
	case ModelCVSSInspired:
		return r.CVSSInspired, true
	default:
		return 0, false
	}
}
