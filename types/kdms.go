package types

// Passthrough shapes for the backend's list views. The overlay service
// proxies these so the rendering surface only talks to one host.

type Worker struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Role              string   `json:"role,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	CountyID          *int     `json:"county_id"`
	Status            string   `json:"status"`
	CurrentDisasterID *int     `json:"current_disaster_id"`
	Lat               *float64 `json:"lat"`
	Lng               *float64 `json:"lng"`
}

type Alert struct {
	ID              int    `json:"id"`
	DisasterID      int    `json:"disaster_id"`
	MessageEn       string `json:"message_en"`
	MessageSw       string `json:"message_sw,omitempty"`
	RecipientsCount int    `json:"recipients_count"`
	SentAt          string `json:"sent_at"`
	Status          string `json:"status"`
}

type Stats struct {
	ActiveDisasters   int `json:"active_disasters"`
	TotalDisasters    int `json:"total_disasters"`
	TotalAffected     int `json:"total_affected"`
	DeployedWorkers   int `json:"deployed_workers"`
	AvailableWorkers  int `json:"available_workers"`
	HighRiskCounties  int `json:"high_risk_counties"`
	CountiesMonitored int `json:"counties_monitored"`
}
