package repository

import "github.com/jengzang/saferoute-backend-go/internal/models"

// StatsRepository holds the published city-wide accident baseline
type StatsRepository struct {
	baseline models.Statistics
}

// NewStatsRepository creates a stats repository over the built-in baseline
func NewStatsRepository() *StatsRepository {
	return &StatsRepository{
		baseline: models.Statistics{
			TotalAccidents:  327,
			TotalBlackspots: 23,
			Zones: map[string]int{
				"Pardi":      48,
				"Indora":     44,
				"Sitabuldi":  40,
				"Ajni":       46,
				"Dharampeth": 38,
				"Dhantoli":   32,
				"Sadar":      28,
				"Khamla":     24,
				"Others":     27,
			},
			LastUpdated: "2025-10-24",
		},
	}
}

// Baseline returns a copy of the baseline statistics
func (r *StatsRepository) Baseline() models.Statistics {
	s := r.baseline
	s.Zones = make(map[string]int, len(r.baseline.Zones))
	for k, v := range r.baseline.Zones {
		s.Zones[k] = v
	}
	return s
}
