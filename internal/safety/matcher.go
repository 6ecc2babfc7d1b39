package safety

import (
	"fmt"
	"math"

	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/spatial"
)

// RiskScore returns the per-hazard risk for an accident count
func (p Policy) RiskScore(accidentCount int) float64 {
	return math.Min(float64(accidentCount)*p.RiskMultiplier, p.RiskCap)
}

// MatchHazards returns a segment for every hazard strictly within the proximity
// threshold of origin or destination, in registry order.
func (p Policy) MatchHazards(origin, destination models.Location, hazards []models.HazardRecord) []models.RiskSegment {
	var matches []models.RiskSegment
	for _, h := range hazards {
		toOrigin := spatial.DistanceKm(origin.Lat, origin.Lng, h.Location.Lat, h.Location.Lng)
		toDest := spatial.DistanceKm(destination.Lat, destination.Lng, h.Location.Lat, h.Location.Lng)
		if toOrigin >= p.ProximityThresholdKm && toDest >= p.ProximityThresholdKm {
			continue
		}

		matches = append(matches, models.RiskSegment{
			HazardName: h.Name,
			RiskScore:  p.RiskScore(h.AccidentCount),
			Reason:     fmt.Sprintf("Historical accident hotspot (%d accidents recorded)", h.AccidentCount),
		})
	}
	return matches
}
