package service

import (
	"context"

	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/repository"
	"github.com/jengzang/saferoute-backend-go/internal/stats"
)

// StatsService combines the published baseline with live report counts
type StatsService struct {
	repo    *repository.StatsRepository
	hazards *repository.HazardRegistry
	store   repository.IncidentStore
}

// NewStatsService creates a new stats service
func NewStatsService(repo *repository.StatsRepository, hazards *repository.HazardRegistry, store repository.IncidentStore) *StatsService {
	return &StatsService{repo: repo, hazards: hazards, store: store}
}

// Statistics returns the baseline with every submitted report added to the
// accident total, plus a summary of the live hazard registry
func (s *StatsService) Statistics(ctx context.Context) (*models.Statistics, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	result := s.repo.Baseline()
	result.TotalAccidents += count
	result.UserReportsCount = count
	result.Registry = stats.SummarizeHazards(s.hazards.All())
	return &result, nil
}

// Overview returns the registry size and the number of user reports
func (s *StatsService) Overview(ctx context.Context) (blackspots int, reports int64, err error) {
	reports, err = s.store.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	return s.hazards.Len(), reports, nil
}
