// Package style derives render attributes for resolved counties. Compose is
// a pure function: identical inputs always yield the identical RenderStyle,
// which the renderer relies on for cheap re-render diffing.
package style

import "go-kdms/types"

const (
	// Risk score thresholds, inclusive lower bounds.
	criticalScoreThreshold = 80
	highScoreThreshold     = 60
	mediumScoreThreshold   = 40
	lowScoreThreshold      = 20
	minimalScoreThreshold  = 10 // exclusive: band applies for score > 10

	// Marker radii by max active severity.
	highSeverityRadius   = 14
	mediumSeverityRadius = 10
	lowSeverityRadius    = 7
)

var bandFillColors = map[types.RiskBand]string{
	types.BandCritical: "#7f1d1d",
	types.BandHigh:     "#dc2626",
	types.BandMedium:   "#f97316",
	types.BandLow:      "#facc15",
	types.BandMinimal:  "#a3e635",
	types.BandSafe:     "#22c55e",
}

// BandForScore maps a 0-100 risk score onto one of the six fixed bands.
// No interpolation, boundaries are exact.
func BandForScore(score int) types.RiskBand {
	switch {
	case score >= criticalScoreThreshold:
		return types.BandCritical
	case score >= highScoreThreshold:
		return types.BandHigh
	case score >= mediumScoreThreshold:
		return types.BandMedium
	case score >= lowScoreThreshold:
		return types.BandLow
	case score > minimalScoreThreshold:
		return types.BandMinimal
	default:
		return types.BandSafe
	}
}

// Compose derives the render style for one county from its risk score and
// its active disasters. A nil risk renders as the safe band. The emphasis
// layer follows disaster severity alone, so a county can sit in the safe
// band and still carry an emphasis ring for a low-severity incident.
func Compose(risk *types.CountyRisk, disasters []types.Disaster) types.RenderStyle {
	band := types.BandSafe
	if risk != nil {
		band = BandForScore(risk.RiskScore)
	}

	maxSev := maxActiveSeverity(disasters)
	s := types.RenderStyle{
		Band:      band,
		FillColor: bandFillColors[band],
	}
	switch maxSev {
	case types.High:
		s.MarkerRadius = highSeverityRadius
		s.Emphasis = "emphasis-high"
	case types.Medium:
		s.MarkerRadius = mediumSeverityRadius
		s.Emphasis = "emphasis-medium"
	case types.Low:
		s.MarkerRadius = lowSeverityRadius
		s.Emphasis = "emphasis-low"
	}
	return s
}

func maxActiveSeverity(disasters []types.Disaster) types.Severity {
	var top types.Severity
	for _, d := range disasters {
		if d.Status != types.Active {
			continue
		}
		if types.SeverityRank(d.Severity) > types.SeverityRank(top) {
			top = d.Severity
		}
	}
	return top
}
