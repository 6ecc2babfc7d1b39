package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Incident store backends
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config 应用配置
type Config struct {
	Port          string        `yaml:"port"`
	DBPath        string        `yaml:"db_path"`        // ":memory:" keeps reports for the process lifetime only
	IncidentStore string        `yaml:"incident_store"` // sqlite, memory
	HazardsFile   string        `yaml:"hazards_file"`   // Optional YAML registry; built-in table when empty
	RateLimit     int           `yaml:"rate_limit"`     // Report submissions per client per window
	RateWindow    time.Duration `yaml:"rate_window"`
	RecentLimit   int           `yaml:"recent_limit"`  // Default page size of /reports/recent
	MaxUploadMB   int64         `yaml:"max_upload_mb"` // Multipart memory limit
}

func defaults() *Config {
	return &Config{
		Port:          ":8000",
		DBPath:        ":memory:",
		IncidentStore: StoreSQLite,
		RateLimit:     20,
		RateWindow:    time.Minute,
		RecentLimit:   10,
		MaxUploadMB:   32,
	}
}

// Load 加载配置: defaults, then CONFIG_FILE (if set), then environment
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if store := os.Getenv("INCIDENT_STORE"); store != "" {
		cfg.IncidentStore = store
	}
	if hazards := os.Getenv("HAZARDS_FILE"); hazards != "" {
		cfg.HazardsFile = hazards
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = n
	}
	if v := os.Getenv("RATE_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_WINDOW %q: %w", v, err)
		}
		cfg.RateWindow = d
	}
	if v := os.Getenv("REPORT_LIMIT_DEFAULT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REPORT_LIMIT_DEFAULT %q: %w", v, err)
		}
		cfg.RecentLimit = n
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_MB %q: %w", v, err)
		}
		cfg.MaxUploadMB = n
	}

	return nil
}

// Validate checks the configuration for obviously unusable values
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if c.IncidentStore != StoreSQLite && c.IncidentStore != StoreMemory {
		errs = append(errs, fmt.Errorf("incident_store must be %q or %q, got %q", StoreSQLite, StoreMemory, c.IncidentStore))
	}
	if c.IncidentStore == StoreSQLite && c.DBPath == "" {
		errs = append(errs, errors.New("db_path is required for the sqlite store"))
	}
	if c.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit must be positive, got %d", c.RateLimit))
	}
	if c.RateWindow <= 0 {
		errs = append(errs, fmt.Errorf("rate_window must be positive, got %s", c.RateWindow))
	}
	if c.RecentLimit <= 0 {
		errs = append(errs, fmt.Errorf("recent_limit must be positive, got %d", c.RecentLimit))
	}
	if c.MaxUploadMB <= 0 {
		errs = append(errs, fmt.Errorf("max_upload_mb must be positive, got %d", c.MaxUploadMB))
	}
	return errors.Join(errs...)
}
