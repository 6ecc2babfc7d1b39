package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CONFIG_FILE", "PORT", "DB_PATH", "INCIDENT_STORE", "HAZARDS_FILE", "RATE_LIMIT", "RATE_WINDOW", "REPORT_LIMIT_DEFAULT", "MAX_UPLOAD_MB"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != ":8000" || cfg.DBPath != ":memory:" || cfg.IncidentStore != StoreSQLite {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.RecentLimit != 10 || cfg.RateWindow != time.Minute {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \":9000\"\nincident_store: memory\nrate_limit: 5\nrate_window: 30s\nhazards_file: /etc/hazards.yaml\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", ":9100")
	t.Setenv("RATE_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != ":9100" {
		t.Errorf("env should override file: Port = %q", cfg.Port)
	}
	if cfg.IncidentStore != StoreMemory || cfg.RateLimit != 5 || cfg.RateWindow != 30*time.Second {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.HazardsFile != "/etc/hazards.yaml" {
		t.Errorf("HazardsFile = %q", cfg.HazardsFile)
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("RATE_WINDOW", "soon")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "RATE_WINDOW") {
		t.Errorf("expected RATE_WINDOW error, got %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty port", func(c *Config) { c.Port = "" }, "port"},
		{"unknown store", func(c *Config) { c.IncidentStore = "redis" }, "incident_store"},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }, "db_path"},
		{"zero rate limit", func(c *Config) { c.RateLimit = 0 }, "rate_limit"},
		{"negative window", func(c *Config) { c.RateWindow = -time.Second }, "rate_window"},
		{"zero recent limit", func(c *Config) { c.RecentLimit = 0 }, "recent_limit"},
		{"zero upload", func(c *Config) { c.MaxUploadMB = 0 }, "max_upload_mb"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaults()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tc.want)
			}
		})
	}

	if err := defaults().Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}
