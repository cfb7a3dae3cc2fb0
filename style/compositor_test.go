package style

import (
	"reflect"
	"testing"

	"go-kdms/types"
)

func TestBandForScoreBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  types.RiskBand
	}{
		{100, types.BandCritical},
		{85, types.BandCritical},
		{80, types.BandCritical},
		{79, types.BandHigh},
		{60, types.BandHigh},
		{59, types.BandMedium},
		{40, types.BandMedium},
		{39, types.BandLow},
		{20, types.BandLow},
		{19, types.BandMinimal},
		{11, types.BandMinimal},
		{10, types.BandSafe},
		{0, types.BandSafe},
	}
	for _, c := range cases {
		if got := BandForScore(c.score); got != c.want {
			t.Errorf("BandForScore(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestComposeNilRiskIsSafe(t *testing.T) {
	s := Compose(nil, nil)
	if s.Band != types.BandSafe {
		t.Errorf("Compose(nil, nil) band = %s, want safe", s.Band)
	}
	if s.Emphasis != "" || s.MarkerRadius != 0 {
		t.Errorf("Compose(nil, nil) = %+v, want no emphasis and zero radius", s)
	}
}

func TestComposeEmphasisIndependentOfBand(t *testing.T) {
	// A county can be safe by score yet carry an active low-severity
	// disaster.
	risk := &types.CountyRisk{Name: "Kisumu", RiskScore: 5}
	disasters := []types.Disaster{
		{ID: 1, Severity: types.Low, Status: types.Active},
	}

	s := Compose(risk, disasters)
	if s.Band != types.BandSafe {
		t.Errorf("band = %s, want safe", s.Band)
	}
	if s.Emphasis != "emphasis-low" {
		t.Errorf("emphasis = %q, want emphasis-low", s.Emphasis)
	}
}

func TestComposeUsesMaxActiveSeverity(t *testing.T) {
	risk := &types.CountyRisk{Name: "Nairobi", RiskScore: 85}
	disasters := []types.Disaster{
		{ID: 1, Severity: types.Low, Status: types.Active},
		{ID: 2, Severity: types.High, Status: types.Active},
		{ID: 3, Severity: types.Medium, Status: types.Active},
	}

	s := Compose(risk, disasters)
	if s.Band != types.BandCritical {
		t.Errorf("band = %s, want critical", s.Band)
	}
	if s.Emphasis != "emphasis-high" {
		t.Errorf("emphasis = %q, want emphasis-high", s.Emphasis)
	}
	if s.MarkerRadius != highSeverityRadius {
		t.Errorf("radius = %d, want %d", s.MarkerRadius, highSeverityRadius)
	}
}

func TestComposeIgnoresResolvedDisasters(t *testing.T) {
	disasters := []types.Disaster{
		{ID: 1, Severity: types.High, Status: types.Resolved},
	}

	s := Compose(nil, disasters)
	if s.Emphasis != "" {
		t.Errorf("resolved disaster produced emphasis %q", s.Emphasis)
	}
}

func TestComposeIsPure(t *testing.T) {
	risk := &types.CountyRisk{Name: "Nakuru", RiskScore: 63}
	disasters := []types.Disaster{
		{ID: 7, Severity: types.Medium, Status: types.Active},
	}

	first := Compose(risk, disasters)
	second := Compose(risk, disasters)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Compose is not deterministic: %+v vs %+v", first, second)
	}
}
