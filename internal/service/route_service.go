package service

import (
	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/repository"
	"github.com/jengzang/saferoute-backend-go/internal/safety"
)

// RouteService handles business logic for route safety prediction
type RouteService struct {
	hazards *repository.HazardRegistry
}

// NewRouteService creates a new route service
func NewRouteService(hazards *repository.HazardRegistry) *RouteService {
	return &RouteService{hazards: hazards}
}

// PredictRoute scores the route between origin and destination.
// Returns an error wrapping models.ErrInvalidCoordinate for out-of-range input.
func (s *RouteService) PredictRoute(origin, destination models.Location) (*models.RouteSafetyReport, error) {
	if err := origin.ValidateAs("origin"); err != nil {
		return nil, err
	}
	if err := destination.ValidateAs("destination"); err != nil {
		return nil, err
	}

	candidates := s.hazards.Candidates(origin, destination, safety.ProximityThresholdKm)
	return safety.ScoreRoute(origin, destination, candidates)
}

// Blackspots returns the hazard registry, optionally filtered by zone
func (s *RouteService) Blackspots(zone string) []models.HazardRecord {
	if zone == "" {
		return s.hazards.All()
	}
	return s.hazards.ByZone(zone)
}
