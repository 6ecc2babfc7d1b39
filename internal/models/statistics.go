package models

// Statistics represents city-wide accident counters
type Statistics struct {
	TotalAccidents   int64           `json:"total_accidents"`
	TotalBlackspots  int             `json:"total_blackspots"`
	Zones            map[string]int  `json:"zones"`
	LastUpdated      string          `json:"last_updated"`
	UserReportsCount int64           `json:"user_reports_count"`
	Registry         RegistrySummary `json:"registry_summary"`
}

// ZoneSummary aggregates the hazards of one zone
type ZoneSummary struct {
	Zone          string  `json:"zone"`
	Hazards       int     `json:"hazards"`
	Accidents     int     `json:"accidents"`
	MeanAccidents float64 `json:"mean_accidents"`
	MaxAccidents  int     `json:"max_accidents"`
}

// RegistrySummary describes the distribution of accident counts across hazards
type RegistrySummary struct {
	Hazards       int           `json:"hazards"`
	MeanAccidents float64       `json:"mean_accidents"`
	Quartiles     [5]float64    `json:"quartiles"` // min, Q1, median, Q3, max
	Zones         []ZoneSummary `json:"zones"`     // Most accidents first
	Outliers      []string      `json:"outliers"`  // Hazards above Q3 + 1.5*IQR
}
