package types

import "time"

type RiskBand string

const (
	BandCritical RiskBand = "critical"
	BandHigh     RiskBand = "high"
	BandMedium   RiskBand = "medium"
	BandLow      RiskBand = "low"
	BandMinimal  RiskBand = "minimal"
	BandSafe     RiskBand = "safe"
)

// RenderStyle is everything the renderer needs to draw one county:
// fill for the polygon, radius for the disaster marker, emphasis class
// layered on top. Derived deterministically from risk + disasters.
type RenderStyle struct {
	Band         RiskBand `json:"band"`
	FillColor    string   `json:"fill_color"`
	MarkerRadius int      `json:"marker_radius"`
	Emphasis     string   `json:"emphasis,omitempty"`
}

// ResolvedCountyView is the fused per-county record: boundary geometry
// joined with the risk score and active disasters that resolved to the
// same county. Rebuilt wholesale each poll cycle, never mutated in place.
type ResolvedCountyView struct {
	CountyKey string         `json:"county_key"`
	Geometry  CountyGeometry `json:"geometry"`
	Risk      *CountyRisk    `json:"risk,omitempty"`
	Disasters []Disaster     `json:"disasters"`
	Style     RenderStyle    `json:"style"`
}

type EditState string

const (
	EditSubmitted EditState = "submitted"
	EditConfirmed EditState = "confirmed"
	EditReverted  EditState = "reverted"
)

// PendingEdit tracks one optimistic resolve action from submission until a
// poll confirms it or the timeout reverts it.
type PendingEdit struct {
	DisasterID     int       `json:"disaster_id"`
	IntendedStatus Status    `json:"intended_status"`
	State          EditState `json:"state"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
