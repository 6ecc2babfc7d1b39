package repository

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/safety"
	"github.com/jengzang/saferoute-backend-go/internal/spatial"
)

func TestDefaultHazardsAreValid(t *testing.T) {
	reg, err := NewHazardRegistry(DefaultHazards())
	if err != nil {
		t.Fatalf("NewHazardRegistry: %v", err)
	}
	if reg.Len() != 23 {
		t.Errorf("Len = %d, want 23", reg.Len())
	}
	if reg.All()[0].Name != "Prakash High School to Kapsi Bridge (Pardi)" {
		t.Errorf("registry order not preserved")
	}
}

func TestNewHazardRegistryRejectsInvalid(t *testing.T) {
	bad := DefaultHazards()
	bad[3].AccidentCount = -2
	if _, err := NewHazardRegistry(bad); err == nil {
		t.Error("expected error for negative accident count")
	}
}

func TestCandidatesMatchFullScan(t *testing.T) {
	reg, err := NewHazardRegistry(DefaultHazards())
	if err != nil {
		t.Fatalf("NewHazardRegistry: %v", err)
	}

	routes := [][2]models.Location{
		{{Lat: 21.0891, Lng: 79.0641}, {Lat: 21.1341, Lng: 79.0641}},
		{{Lat: 21.1458, Lng: 79.0882}, {Lat: 21.1600, Lng: 79.0900}},
		{{Lat: 21.3000, Lng: 79.3000}, {Lat: 21.3500, Lng: 79.3500}},
		{{Lat: 21.2008, Lng: 79.0426}, {Lat: 21.0781, Lng: 79.0289}},
	}

	p := safety.DefaultPolicy()
	for _, rt := range routes {
		want := p.MatchHazards(rt[0], rt[1], reg.All())
		candidates := reg.Candidates(rt[0], rt[1], safety.ProximityThresholdKm)
		got := p.MatchHazards(rt[0], rt[1], candidates)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("route %v: indexed matches %+v, full scan %+v", rt, got, want)
		}
		if len(candidates) > reg.Len() {
			t.Errorf("more candidates than hazards")
		}
	}
}

func TestCandidatesKeepRegistryOrder(t *testing.T) {
	center := models.Location{Lat: 21.1458, Lng: 79.0882}
	var hazards []models.HazardRecord
	for i, d := range []float64{1.5, 0.1, 1.0, 0.5} {
		hazards = append(hazards, models.HazardRecord{
			Name:          string(rune('A' + i)),
			Location:      models.Location{Lat: center.Lat + d/111.0, Lng: center.Lng},
			AccidentCount: 1,
		})
	}
	reg, err := NewHazardRegistry(hazards)
	if err != nil {
		t.Fatalf("NewHazardRegistry: %v", err)
	}

	got := reg.Candidates(center, center, 2)
	var names []string
	for _, h := range got {
		names = append(names, h.Name)
	}
	if !reflect.DeepEqual(names, []string{"A", "B", "C", "D"}) {
		t.Errorf("candidate order = %v", names)
	}
}

func TestCandidatesFallBackNearPole(t *testing.T) {
	reg, err := NewHazardRegistry(DefaultHazards())
	if err != nil {
		t.Fatalf("NewHazardRegistry: %v", err)
	}
	polar := models.Location{Lat: 89.999, Lng: 0}
	if got := reg.Candidates(polar, polar, spatial.EarthRadiusKm); len(got) != reg.Len() {
		t.Errorf("expected full registry fallback, got %d", len(got))
	}
}

func TestByZone(t *testing.T) {
	reg, _ := NewHazardRegistry(DefaultHazards())
	got := reg.ByZone("pardi")
	if len(got) != 3 {
		t.Fatalf("ByZone(pardi) = %d hazards, want 3", len(got))
	}
	if got := reg.ByZone("Atlantis"); got == nil || len(got) != 0 {
		t.Errorf("ByZone(unknown) = %#v, want empty slice", got)
	}
}

func TestLoadHazardsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hazards.yaml")
	content := `hazards:
  - name: Variety Square
    location: {lat: 21.1507, lng: 79.0883}
    accident_count: 9
    zone: Sitabuldi
    description: Major traffic junction
  - name: LIC Square
    location: {lat: 21.1417, lng: 79.0906, address: "Sitabuldi, Nagpur"}
    accident_count: 8
    zone: Sitabuldi
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadHazardsYAML(path)
	if err != nil {
		t.Fatalf("LoadHazardsYAML: %v", err)
	}
	all := reg.All()
	if len(all) != 2 || all[1].Location.Address != "Sitabuldi, Nagpur" || all[0].AccidentCount != 9 {
		t.Errorf("loaded = %+v", all)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("hazards:\n  - name: X\n    location: {lat: 200, lng: 0}\n"), 0o644)
	if _, err := LoadHazardsYAML(bad); err == nil {
		t.Error("expected validation error for out-of-range latitude")
	}
}
