package scoring

// PositionChart places one score against the fixed tier bands.
type PositionChart struct {
	Score float64    `json:"score"`
	Tier  Tier       `json:"tier"`
	Bands [6]float64 `json:"bands"`
}

// ComparisonBar is one bar of the comparison chart.
type ComparisonBar struct {
	Model string  `json:"model"`
	Score float64 `json:"score"`
	Tier  Tier    `json:"tier"`
}

// ComparisonChart compares the aggregate models side by side.
type ComparisonChart struct {
	Bars  []ComparisonBar `json:"bars"`
	Bands [6]float64      `json:"bands"`
}

// Charts is the chart data derived from one result.
type Charts struct {
	Position   PositionChart   `json:"position"`
	Comparison ComparisonChart `json:"comparison"`
}

// NewPositionChart builds the band indicator for score.
func NewPositionChart(score float64) PositionChart {
	return PositionChart{Score: score, Tier: MapScoreToProfile(score), Bands: Bands}
}

// NewComparisonChart builds one bar per model in Models order.
func NewComparisonChart(r Result) ComparisonChart {
	bars := make([]ComparisonBar, 0, len(Models))
	for _, m := range Models {
		v, _ := r.ScoreFor(m)
		bars = append(bars, ComparisonBar{Model: m, Score: v, Tier: r.Profiles[m]})
	}
	return ComparisonChart{Bars: bars, Bands: Bands}
}

// ChartsFor returns both charts. The position chart tracks the weighted score.
func ChartsFor(r Result) Charts {
	return Charts{
		Position:   NewPositionChart(r.Weighted),
		Comparison: NewComparisonChart(r),
	}
}

// ScoreMap returns model name → score, the shape the comparison chart consumes.
func (c ComparisonChart) ScoreMap() map[string]float64 {
	m := make(map[string]float64, len(c.Bars))
	for _, b := range c.Bars {
		m[b.Model] = b.Score
	}
	return m
}
