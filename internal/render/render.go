// Package render turns scoring results into terminal text and JSON.
package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/ppiankov/svcprofile/internal/model"
	"github.com/ppiankov/svcprofile/internal/scoring"
)

// colsPerUnit is the chart resolution: one column per 0.1 of score.
const colsPerUnit = 10

// Report is the JSON document printed by --format json.
type Report struct {
	ServiceName string                    `json:"service_name,omitempty"`
	Input       model.ServiceProfileInput `json:"input"`
	Result      scoring.Result            `json:"result"`
	Charts      scoring.Charts            `json:"charts"`
}

// NewReport bundles an input with its result and chart data.
func NewReport(in model.ServiceProfileInput, r scoring.Result) Report {
	return Report{
		ServiceName: in.ServiceName,
		Input:       in,
		Result:      r,
		Charts:      scoring.ChartsFor(r),
	}
}

// FormatJSON renders the report as indented JSON.
func FormatJSON(rep Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data) + "\n", nil
}

// FormatText renders the result and both charts as human-readable text.
func FormatText(rep Report) string {
	var b strings.Builder
	r := rep.Result

	name := rep.ServiceName
	if name == "" {
		name = "(unnamed service)"
	}
	fmt.Fprintf(&b, "Computation complete for %s\n\n", name)

	fmt.Fprintf(&b, "  %-16s %.2f\n", "Exposure:", r.Exposure)
	for _, m := range scoring.Models {
		v, _ := r.ScoreFor(m)
		fmt.Fprintf(&b, "  %-16s %.2f  %s\n", m+":", v, r.Profiles[m])
	}

	b.WriteString("\nProfile position (weighted):\n")
	b.WriteString(PositionChart(rep.Charts.Position))
	b.WriteString("\nModel comparison:\n")
	b.WriteString(ComparisonChart(rep.Charts.Comparison))
	return b.String()
}

// PositionChart draws the tier bands with a marker at the score.
func PositionChart(c scoring.PositionChart) string {
	width := int(c.Bands[len(c.Bands)-1] * colsPerUnit)

	labels := []byte(strings.Repeat(" ", width+1))
	axis := []byte(strings.Repeat("-", width+1))
	for i, edge := range c.Bands {
		col := int(edge * colsPerUnit)
		axis[col] = '|'
		if i < len(scoring.Tiers) {
			copy(labels[col+1:], string(scoring.Tiers[i]))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", strings.TrimRight(string(labels), " "))
	fmt.Fprintf(&b, "  %s\n", axis)
	fmt.Fprintf(&b, "  %s^ %.2f (%s)\n", strings.Repeat(" ", column(c.Score, width)), c.Score, c.Tier)
	return b.String()
}

// ComparisonChart draws one horizontal bar per model.
func ComparisonChart(c scoring.ComparisonChart) string {
	width := int(c.Bands[len(c.Bands)-1] * colsPerUnit)
	var b strings.Builder
	for _, bar := range c.Bars {
		n := column(bar.Score, width)
		fmt.Fprintf(&b, "  %-14s %s%s %.2f  %s\n",
			bar.Model, strings.Repeat("#", n), strings.Repeat(" ", width-n), bar.Score, bar.Tier)
	}
	return b.String()
}

// column maps a score to a chart column in [0, width].
func column(score float64, width int) int {
	col := int(math.Round(score * colsPerUnit))
	if col < 0 {
		return 0
	}
	if col > width {
		return width
	}
	return col
}
