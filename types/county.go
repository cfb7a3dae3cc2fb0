package types

import "encoding/json"

// CountyRisk mirrors a row from the backend's counties table. The backend's
// scheduler rescores counties roughly every 30 minutes, so LastUpdated lags
// real time by design.
type CountyRisk struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Region      string  `json:"region,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	RiskScore   int     `json:"risk_score"`
	LastUpdated string  `json:"last_updated,omitempty"`
}

// CountyGeometry is one boundary feature from the static county GeoJSON.
// Loaded once per session, never polled. The geometry is kept raw and
// passed through to the renderer untouched.
type CountyGeometry struct {
	Name     string          `json:"name"`
	Geometry json.RawMessage `json:"geometry"`
}

// GeoJSON structures for the boundary file.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}
