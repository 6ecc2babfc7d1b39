package safety

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/spatial"
)

// ScoreRoute scores the route from origin to destination against hazards
// using DefaultPolicy. hazards is read, never modified, so concurrent calls
// may share one registry snapshot.
func ScoreRoute(origin, destination models.Location, hazards []models.HazardRecord) (*models.RouteSafetyReport, error) {
	return DefaultPolicy().ScoreRoute(origin, destination, hazards)
}

// ScoreRoute scores a route under this policy. The only failure is an
// invalid coordinate, reported before any distance is computed.
func (p Policy) ScoreRoute(origin, destination models.Location, hazards []models.HazardRecord) (*models.RouteSafetyReport, error) {
	if err := origin.ValidateAs("origin"); err != nil {
		return nil, err
	}
	if err := destination.ValidateAs("destination"); err != nil {
		return nil, err
	}

	matches := p.MatchHazards(origin, destination, hazards)
	class := p.Classify(matches)

	distanceKm := spatial.DistanceKm(origin.Lat, origin.Lng, destination.Lat, destination.Lng)
	duration := int(math.Round(distanceKm * MinutesPerKm))

	return &models.RouteSafetyReport{
		RouteID:            RouteID(origin, destination),
		SafetyScore:        class.SafetyScore,
		RiskLevel:          class.RiskLevel,
		PredictedAccidents: class.PredictedAccidents,
		HighRiskSegments:   p.TopSegments(matches),
		WeatherImpact:      WeatherImpact,
		Recommendations:    Recommendations(class.RiskLevel),
		DistanceKm:         distanceKm,
		DurationMinutes:    duration,
		Distance:           fmt.Sprintf("%.1f km", distanceKm),
		Duration:           fmt.Sprintf("%d mins (approx.)", duration),
	}, nil
}

// RouteID builds a reproducible identifier from the endpoint coordinates
func RouteID(origin, destination models.Location) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return "route_" + f(origin.Lat) + "_" + f(origin.Lng) + "_" + f(destination.Lat) + "_" + f(destination.Lng)
}
