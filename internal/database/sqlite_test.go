package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func TestOpenRunsMigrations(t *testing.T) {
	db, err := Open(Config{Path: MemoryPath})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM incident_reports").Scan(&n); err != nil {
		t.Fatalf("incident_reports table missing: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&n); err != nil || n != 1 {
		t.Errorf("migrations recorded = %d (%v), want 1", n, err)
	}
}

func TestOpenIsIdempotentOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")
	for i := 0; i < 2; i++ {
		db, err := Open(Config{Path: path})
		if err != nil {
			t.Fatalf("Open #%d: %v", i+1, err)
		}
		db.Close()
	}
}

func TestTransactionRollsBack(t *testing.T) {
	db, err := Open(Config{Path: MemoryPath})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	boom := errors.New("boom")
	err = Transaction(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO incident_reports (id, lat, lng, location_name, severity, vehicle_type, timestamp)
			VALUES (1, 21.1, 79.1, 'x', 'minor', 'car', '2025-10-24T10:00:00Z')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transaction error = %v, want boom", err)
	}

	var n int
	db.QueryRow("SELECT COUNT(*) FROM incident_reports").Scan(&n)
	if n != 0 {
		t.Errorf("row survived rollback: count = %d", n)
	}
}
