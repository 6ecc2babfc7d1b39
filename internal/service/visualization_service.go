package service

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/repository"
)

// VisualizationService builds map overlays from hazards and reports
type VisualizationService struct {
	hazards *repository.HazardRegistry
	store   repository.IncidentStore
}

// NewVisualizationService creates a new visualization service
func NewVisualizationService(hazards *repository.HazardRegistry, store repository.IncidentStore) *VisualizationService {
	return &VisualizationService{hazards: hazards, store: store}
}

// Heatmap returns one point per hazard weighted by accident count, followed
// by one unit-weight point per user report
func (s *VisualizationService) Heatmap(ctx context.Context) (*models.HeatmapResponse, error) {
	reports, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	hazards := s.hazards.All()
	points := make([]models.HeatmapPoint, 0, len(hazards)+len(reports))
	for _, h := range hazards {
		points = append(points, models.HeatmapPoint{Lat: h.Location.Lat, Lng: h.Location.Lng, Intensity: h.AccidentCount})
	}
	for _, r := range reports {
		points = append(points, models.HeatmapPoint{Lat: r.Location.Lat, Lng: r.Location.Lng, Intensity: 1})
	}

	return &models.HeatmapResponse{Data: points}, nil
}

// HeatmapGeoJSON returns the heatmap as a FeatureCollection of points
func (s *VisualizationService) HeatmapGeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	heatmap, err := s.Heatmap(ctx)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, p := range heatmap.Data {
		f := geojson.NewFeature(orb.Point{p.Lng, p.Lat})
		f.Properties["intensity"] = p.Intensity
		fc.Append(f)
	}
	return fc, nil
}
