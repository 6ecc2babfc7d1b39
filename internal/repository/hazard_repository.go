package repository

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/rtree"
	"gopkg.in/yaml.v3"

	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/spatial"
)

// HazardRegistry is an immutable, ordered set of hazard records with a
// spatial index. It is safe for concurrent readers.
type HazardRegistry struct {
	hazards []models.HazardRecord
	index   rtree.RTreeG[int] // Registry position, keyed on [lng, lat]
}

// NewHazardRegistry validates and indexes hazards, keeping their order
func NewHazardRegistry(hazards []models.HazardRecord) (*HazardRegistry, error) {
	r := &HazardRegistry{hazards: make([]models.HazardRecord, len(hazards))}
	for i, h := range hazards {
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("hazard #%d: %w", i+1, err)
		}
		r.hazards[i] = h
		pt := [2]float64{h.Location.Lng, h.Location.Lat}
		r.index.Insert(pt, pt, i)
	}
	return r, nil
}

// Len returns the number of hazards
func (r *HazardRegistry) Len() int {
	return len(r.hazards)
}

// All returns a copy of every hazard in registry order
func (r *HazardRegistry) All() []models.HazardRecord {
	out := make([]models.HazardRecord, len(r.hazards))
	copy(out, r.hazards)
	return out
}

// ByZone returns hazards in the given zone (case-insensitive), in registry order
func (r *HazardRegistry) ByZone(zone string) []models.HazardRecord {
	out := []models.HazardRecord{}
	for _, h := range r.hazards {
		if strings.EqualFold(h.Zone, zone) {
			out = append(out, h)
		}
	}
	return out
}

// Candidates returns, in registry order, a superset of the hazards within
// radiusKm of origin or destination. The exact distance test is left to the
// caller.
func (r *HazardRegistry) Candidates(origin, destination models.Location, radiusKm float64) []models.HazardRecord {
	seen := make(map[int]struct{})
	for _, loc := range []models.Location{origin, destination} {
		box, ok := spatial.BoundingBoxAround(loc.Lat, loc.Lng, radiusKm)
		if !ok {
			return r.All()
		}
		r.index.Search(
			[2]float64{box.MinLng, box.MinLat},
			[2]float64{box.MaxLng, box.MaxLat},
			func(_, _ [2]float64, idx int) bool {
				seen[idx] = struct{}{}
				return true
			},
		)
	}

	positions := make([]int, 0, len(seen))
	for idx := range seen {
		positions = append(positions, idx)
	}
	sort.Ints(positions)

	out := make([]models.HazardRecord, len(positions))
	for i, idx := range positions {
		out[i] = r.hazards[idx]
	}
	return out
}

type hazardFile struct {
	Hazards []models.HazardRecord `yaml:"hazards"`
}

// LoadHazardsYAML reads a registry from a YAML file of the form
//
//	hazards:
//	  - name: Variety Square
//	    location: {lat: 21.1507, lng: 79.0883}
//	    accident_count: 9
//	    zone: Sitabuldi
func LoadHazardsYAML(path string) (*HazardRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hazards file: %w", err)
	}

	var f hazardFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse hazards file %s: %w", path, err)
	}

	return NewHazardRegistry(f.Hazards)
}
