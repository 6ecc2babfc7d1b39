package models

// HeatmapPoint represents a single point in the heatmap
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`       // Latitude
	Lng       float64 `json:"lng"`       // Longitude
	Intensity int     `json:"intensity"` // Accident count, 1 for a user report
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	Data []HeatmapPoint `json:"data"`
}
