package types

type Severity string

const (
	Low    Severity = "Low"
	Medium Severity = "Medium"
	High   Severity = "High"
)

// SeverityRank orders severities for max-severity comparisons.
// Unknown strings rank below Low.
func SeverityRank(s Severity) int {
	switch s {
	case Low:
		return 1
	case Medium:
		return 2
	case High:
		return 3
	default:
		return 0
	}
}

type Status string

const (
	Active   Status = "active"
	Resolved Status = "resolved"
)

type DisasterType string

const (
	Flood      DisasterType = "Flood"
	Wildfire   DisasterType = "Wildfire"
	Drought    DisasterType = "Drought"
	Earthquake DisasterType = "Earthquake"
	Landslide  DisasterType = "Landslide"
	Other      DisasterType = "Other"
)

// Disaster mirrors a row from the backend's disasters table.
// ID is the only stable identity; CountyName is free text and may not
// match the boundary file's naming.
type Disaster struct {
	ID             int          `json:"id"`
	Type           DisasterType `json:"type"`
	Severity       Severity     `json:"severity"`
	CountyName     string       `json:"county_name"`
	Location       string       `json:"location,omitempty"`
	Lat            *float64     `json:"lat"`
	Lng            *float64     `json:"lng"`
	AffectedPeople int          `json:"affected_people"`
	Description    string       `json:"description,omitempty"`
	Source         string       `json:"source,omitempty"`
	Status         Status       `json:"status"`
	ReportedAt     string       `json:"reported_at"`
	ResolvedAt     string       `json:"resolved_at,omitempty"`
}
