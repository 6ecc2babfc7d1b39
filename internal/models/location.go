package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate is matched by every CoordinateError
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// CoordinateError reports a latitude or longitude outside its valid range, or non-finite
type CoordinateError struct {
	Field string  // "lat" or "lng", optionally prefixed ("origin.lat")
	Value float64 // Offending value
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: %s=%v out of range", e.Field, e.Value)
}

// Is lets errors.Is(err, ErrInvalidCoordinate) match
func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}

// Location represents a point on the map
type Location struct {
	Lat     float64 `json:"lat" yaml:"lat"`                             // Latitude, -90..90
	Lng     float64 `json:"lng" yaml:"lng"`                             // Longitude, -180..180
	Address string  `json:"address,omitempty" yaml:"address,omitempty"` // Free-form address
}

// NewLocation returns a validated location
func NewLocation(lat, lng float64) (Location, error) {
	loc := Location{Lat: lat, Lng: lng}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Validate checks that both coordinates are finite and within range
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || math.IsInf(l.Lat, 0) || l.Lat < -90 || l.Lat > 90 {
		return &CoordinateError{Field: "lat", Value: l.Lat}
	}
	if math.IsNaN(l.Lng) || math.IsInf(l.Lng, 0) || l.Lng < -180 || l.Lng > 180 {
		return &CoordinateError{Field: "lng", Value: l.Lng}
	}
	return nil
}

// ValidateAs is Validate with the field name prefixed, e.g. "origin.lat"
func (l Location) ValidateAs(prefix string) error {
	err := l.Validate()
	var ce *CoordinateError
	if errors.As(err, &ce) {
		return &CoordinateError{Field: prefix + "." + ce.Field, Value: ce.Value}
	}
	return err
}
