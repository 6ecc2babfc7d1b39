package models

// RiskLevel is the discrete route classification
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskSegment is a matched hazard with its per-hazard severity
type RiskSegment struct {
	HazardName string  `json:"location"`   // Hazard name
	RiskScore  float64 `json:"risk_score"` // 0-95
	Reason     string  `json:"reason"`
}

// RouteSafetyReport is the result of scoring a route
type RouteSafetyReport struct {
	RouteID            string        `json:"route_id"`
	SafetyScore        float64       `json:"safety_score"` // 30-100, higher is safer
	RiskLevel          RiskLevel     `json:"risk_level"`
	PredictedAccidents int           `json:"predicted_accidents"`
	HighRiskSegments   []RiskSegment `json:"high_risk_segments"` // At most 3, descending by risk
	WeatherImpact      string        `json:"weather_impact"`
	Recommendations    []string      `json:"recommendations"`
	DistanceKm         float64       `json:"distance_km"`
	DurationMinutes    int           `json:"duration_minutes"`
	Distance           string        `json:"distance"` // e.g. "4.2 km"
	Duration           string        `json:"duration"` // e.g. "13 mins (approx.)"
}

// LocationInput is a route endpoint as submitted by a client. Pointers make
// an omitted coordinate a binding error instead of a silent zero.
type LocationInput struct {
	Lat     *float64 `json:"lat" binding:"required"`
	Lng     *float64 `json:"lng" binding:"required"`
	Address string   `json:"address"`
}

// Location converts the bound input; range checks are left to the caller
func (in LocationInput) Location() Location {
	return Location{Lat: *in.Lat, Lng: *in.Lng, Address: in.Address}
}

// RouteRequest is the body of a route prediction request
type RouteRequest struct {
	Origin      *LocationInput `json:"origin" binding:"required"`
	Destination *LocationInput `json:"destination" binding:"required"`
}
