// Package stats summarizes the hazard registry for the statistics endpoint.
package stats

import (
	"sort"

	"github.com/jengzang/saferoute-backend-go/internal/models"
)

// SummarizeHazards aggregates accident counts per zone and flags hotspots
// whose count is an upper outlier for the registry
func SummarizeHazards(hazards []models.HazardRecord) models.RegistrySummary {
	summary := models.RegistrySummary{
		Zones:    []models.ZoneSummary{},
		Outliers: []string{},
	}
	if len(hazards) == 0 {
		return summary
	}

	counts := make([]float64, len(hazards))
	byZone := make(map[string][]float64)
	for i, h := range hazards {
		counts[i] = float64(h.AccidentCount)
		byZone[h.Zone] = append(byZone[h.Zone], counts[i])
	}

	min, q1, median, q3, max := FiveNumberSummary(counts)
	summary.Hazards = len(hazards)
	summary.MeanAccidents = Mean(counts)
	summary.Quartiles = [5]float64{min, q1, median, q3, max}

	fence := UpperFence(counts)
	for _, h := range hazards {
		if float64(h.AccidentCount) > fence {
			summary.Outliers = append(summary.Outliers, h.Name)
		}
	}

	for zone, zc := range byZone {
		var total int
		var peak float64
		for _, c := range zc {
			total += int(c)
			if c > peak {
				peak = c
			}
		}
		summary.Zones = append(summary.Zones, models.ZoneSummary{
			Zone:          zone,
			Hazards:       len(zc),
			Accidents:     total,
			MeanAccidents: Mean(zc),
			MaxAccidents:  int(peak),
		})
	}
	sort.Slice(summary.Zones, func(i, j int) bool {
		if summary.Zones[i].Accidents != summary.Zones[j].Accidents {
			return summary.Zones[i].Accidents > summary.Zones[j].Accidents
		}
		return summary.Zones[i].Zone < summary.Zones[j].Zone
	})

	return summary
}
