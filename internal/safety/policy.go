// Package safety scores a route between two points against a registry of
// known accident hotspots.
package safety

// Heuristic constants of the route scoring model
const (
	ProximityThresholdKm = 2.0  // Hazards strictly closer than this to either endpoint match
	RiskMultiplier       = 5.0  // Risk points per recorded accident
	RiskCap              = 95.0 // Per-hazard risk ceiling
	SafetyFloor          = 30.0 // Lowest reachable safety score
	HighRiskBelow        = 60.0 // Safety scores under this are high risk (cluster tier only)
	ClusterMinMatches    = 3    // Matches needed before the averaged tier applies
	MaxHighRiskSegments  = 3

	NoMatchSafetyScore  = 92.0
	FewMatchSafetyScore = 75.0

	MinutesPerKm = 3 // Duration proxy, not a routing estimate

	WeatherImpact = "Current weather: Clear skies. Road conditions are favorable."
)

// Policy holds the tunable values of the scoring model.
// DefaultPolicy is what the service uses; other values exist for probing boundaries.
type Policy struct {
	ProximityThresholdKm float64
	RiskMultiplier       float64
	RiskCap              float64
	SafetyFloor          float64
	HighRiskBelow        float64
	ClusterMinMatches    int
	MaxHighRiskSegments  int
	NoMatchSafetyScore   float64
	FewMatchSafetyScore  float64
}

// DefaultPolicy returns the production scoring policy
func DefaultPolicy() Policy {
	return Policy{
		ProximityThresholdKm: ProximityThresholdKm,
		RiskMultiplier:       RiskMultiplier,
		RiskCap:              RiskCap,
		SafetyFloor:          SafetyFloor,
		HighRiskBelow:        HighRiskBelow,
		ClusterMinMatches:    ClusterMinMatches,
		MaxHighRiskSegments:  MaxHighRiskSegments,
		NoMatchSafetyScore:   NoMatchSafetyScore,
		FewMatchSafetyScore:  FewMatchSafetyScore,
	}
}
