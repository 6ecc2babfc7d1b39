package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jengzang/saferoute-backend-go/internal/database"
	"github.com/jengzang/saferoute-backend-go/internal/models"
)

// SQLiteIncidentStore stores reports in the incident_reports table
type SQLiteIncidentStore struct {
	db *sql.DB
	mu sync.Mutex // Single writer
}

// NewSQLiteIncidentStore creates a store over an open, migrated database
func NewSQLiteIncidentStore(db *sql.DB) *SQLiteIncidentStore {
	return &SQLiteIncidentStore{db: db}
}

const incidentColumns = `id, lat, lng, location_name, severity, vehicle_type, casualties,
	description, reporter_name, reporter_contact, timestamp, files, status`

func (s *SQLiteIncidentStore) Append(ctx context.Context, build func(id int64) models.IncidentReport) (models.IncidentReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report models.IncidentReport
	err := database.Transaction(ctx, s.db, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) + 1 FROM incident_reports").Scan(&id); err != nil {
			return fmt.Errorf("failed to allocate report id: %w", err)
		}

		report = build(id)
		report.ID = id

		files, err := json.Marshal(report.Files)
		if err != nil {
			return fmt.Errorf("failed to encode attachments: %w", err)
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO incident_reports (`+incidentColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			report.ID, report.Location.Lat, report.Location.Lng, report.Location.Name,
			report.Severity, report.VehicleType, report.Casualties, report.Description,
			report.Reporter.Name, report.Reporter.Contact, report.Timestamp, string(files), report.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert incident report: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.IncidentReport{}, err
	}

	return report, nil
}

func (s *SQLiteIncidentStore) Recent(ctx context.Context, limit int) ([]models.IncidentReport, error) {
	// id breaks timestamp ties in submission order, matching the memory store
	return s.query(ctx, "SELECT "+incidentColumns+" FROM incident_reports ORDER BY timestamp DESC, id ASC LIMIT ?", limit)
}

func (s *SQLiteIncidentStore) All(ctx context.Context) ([]models.IncidentReport, error) {
	return s.query(ctx, "SELECT "+incidentColumns+" FROM incident_reports ORDER BY id ASC")
}

func (s *SQLiteIncidentStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM incident_reports").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count incident reports: %w", err)
	}
	return total, nil
}

func (s *SQLiteIncidentStore) query(ctx context.Context, query string, args ...interface{}) ([]models.IncidentReport, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incident reports: %w", err)
	}
	defer rows.Close()

	reports := []models.IncidentReport{}
	for rows.Next() {
		var r models.IncidentReport
		var files string
		err := rows.Scan(
			&r.ID, &r.Location.Lat, &r.Location.Lng, &r.Location.Name,
			&r.Severity, &r.VehicleType, &r.Casualties, &r.Description,
			&r.Reporter.Name, &r.Reporter.Contact, &r.Timestamp, &files, &r.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident report: %w", err)
		}
		if err := json.Unmarshal([]byte(files), &r.Files); err != nil {
			return nil, fmt.Errorf("failed to decode attachments of report %d: %w", r.ID, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incident reports: %w", err)
	}

	return reports, nil
}
