package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jengzang/saferoute-backend-go/internal/models"
)

// IncidentStore is an append-only log of user-submitted accident reports.
// Appends are serialized; IDs are sequential starting at 1.
type IncidentStore interface {
	// Append assigns the next ID, calls build with it and stores the result
	Append(ctx context.Context, build func(id int64) models.IncidentReport) (models.IncidentReport, error)
	// Recent returns up to limit reports, newest timestamp first
	Recent(ctx context.Context, limit int) ([]models.IncidentReport, error)
	// All returns every report in submission order
	All(ctx context.Context) ([]models.IncidentReport, error)
	Count(ctx context.Context) (int64, error)
}

// MemoryIncidentStore keeps reports in process memory
type MemoryIncidentStore struct {
	mu      sync.RWMutex
	reports []models.IncidentReport
}

// NewMemoryIncidentStore creates an empty in-memory store
func NewMemoryIncidentStore() *MemoryIncidentStore {
	return &MemoryIncidentStore{}
}

func (s *MemoryIncidentStore) Append(ctx context.Context, build func(id int64) models.IncidentReport) (models.IncidentReport, error) {
	if err := ctx.Err(); err != nil {
		return models.IncidentReport{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := int64(len(s.reports)) + 1
	r := build(id)
	r.ID = id
	s.reports = append(s.reports, r)
	return r, nil
}

func (s *MemoryIncidentStore) Recent(ctx context.Context, limit int) ([]models.IncidentReport, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return newestFirst(all, limit), nil
}

func (s *MemoryIncidentStore) All(ctx context.Context) ([]models.IncidentReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.IncidentReport, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

func (s *MemoryIncidentStore) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.reports)), nil
}

// newestFirst sorts reports by timestamp descending, keeping submission order
// for equal timestamps, and truncates to limit
func newestFirst(reports []models.IncidentReport, limit int) []models.IncidentReport {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Timestamp > reports[j].Timestamp
	})
	if limit >= 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports
}
