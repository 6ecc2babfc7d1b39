package models

import (
	"errors"
	"fmt"
	"strings"
)

// HazardRecord represents a known accident hotspot ("blackspot")
type HazardRecord struct {
	Name          string   `json:"name" yaml:"name"`
	Location      Location `json:"location" yaml:"location"`
	AccidentCount int      `json:"accident_count" yaml:"accident_count"` // Historical accidents, >= 0
	Zone          string   `json:"zone" yaml:"zone"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewHazardRecord returns a validated hazard record
func NewHazardRecord(name string, loc Location, accidentCount int, zone, description string) (HazardRecord, error) {
	h := HazardRecord{
		Name:          name,
		Location:      loc,
		AccidentCount: accidentCount,
		Zone:          zone,
		Description:   description,
	}
	if err := h.Validate(); err != nil {
		return HazardRecord{}, err
	}
	return h, nil
}

// Validate checks the record's invariants
func (h HazardRecord) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("hazard name is required")
	}
	if h.AccidentCount < 0 {
		return fmt.Errorf("hazard %q: accident count must be non-negative, got %d", h.Name, h.AccidentCount)
	}
	if err := h.Location.Validate(); err != nil {
		return fmt.Errorf("hazard %q: %w", h.Name, err)
	}
	return nil
}
