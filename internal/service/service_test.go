package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/paulmach/orb"

	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/repository"
)

func newRegistry(t *testing.T) *repository.HazardRegistry {
	t.Helper()
	reg, err := repository.NewHazardRegistry(repository.DefaultHazards())
	if err != nil {
		t.Fatalf("NewHazardRegistry: %v", err)
	}
	return reg
}

func ptr(v float64) *float64 { return &v }

func validForm() models.IncidentForm {
	return models.IncidentForm{
		Lat:         ptr(21.1507),
		Lng:         ptr(79.0883),
		Location:    "Variety Square",
		Severity:    "major",
		VehicleType: "car",
		Casualties:  2,
		Timestamp:   "2025-10-24T10:00:00Z",
	}
}

// uploads builds multipart file headers the same way net/http parses them.
func uploads(t *testing.T, files map[string][2]string) []*multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for field, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+f[0]+`"`)
		h.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		part.Write([]byte(f[1]))
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}

	out := make([]*multipart.FileHeader, MaxAttachments)
	for i := range out {
		if fhs := req.MultipartForm.File["file"+string(rune('0'+i))]; len(fhs) > 0 {
			out[i] = fhs[0]
		}
	}
	return out
}

func TestPredictRoute_UsesRegistry(t *testing.T) {
	svc := NewRouteService(newRegistry(t))

	// Starting at the Pardi cluster: Prakash (15), Old Pardi Naka (11), Hanuman Mandir (7)
	// and Friends Colony (2) are all within 2 km.
	report, err := svc.PredictRoute(
		models.Location{Lat: 21.0891, Lng: 79.0641},
		models.Location{Lat: 21.0891, Lng: 79.3000},
	)
	if err != nil {
		t.Fatalf("PredictRoute: %v", err)
	}
	if report.SafetyScore != 56.3 || report.RiskLevel != models.RiskHigh || report.PredictedAccidents != 2 {
		t.Errorf("got score=%v level=%s predicted=%d, want 56.3/high/2",
			report.SafetyScore, report.RiskLevel, report.PredictedAccidents)
	}
	if report.HighRiskSegments[0].HazardName != "Prakash High School to Kapsi Bridge (Pardi)" {
		t.Errorf("top segment = %+v", report.HighRiskSegments[0])
	}
}

func TestPredictRoute_InvalidCoordinate(t *testing.T) {
	svc := NewRouteService(newRegistry(t))
	_, err := svc.PredictRoute(models.Location{Lat: 21, Lng: 79}, models.Location{Lat: -95, Lng: 79})
	if !errors.Is(err, models.ErrInvalidCoordinate) {
		t.Errorf("error = %v, want ErrInvalidCoordinate", err)
	}
}

func TestBlackspots(t *testing.T) {
	svc := NewRouteService(newRegistry(t))
	if got := svc.Blackspots(""); len(got) != 23 {
		t.Errorf("Blackspots() = %d, want 23", len(got))
	}
	if got := svc.Blackspots("Sitabuldi"); len(got) != 5 {
		t.Errorf("Blackspots(Sitabuldi) = %d, want 5", len(got))
	}
}

func TestSubmit_StoresAttachments(t *testing.T) {
	svc := NewIncidentService(repository.NewMemoryIncidentStore())
	png := "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"
	mp4 := "\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom"
	files := uploads(t, map[string][2]string{
		"file0": {"crash.png", png},
		"file2": {"dashcam.mp4", mp4},
	})

	report, err := svc.Submit(context.Background(), validForm(), files)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if report.ID != 1 || report.Status != models.ReportStatusPending || report.Reporter.Name != "Anonymous" {
		t.Errorf("report = %+v", report)
	}
	if len(report.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(report.Files))
	}
	if report.Files[0].Filename != "accident_1_0_crash.png" || report.Files[0].Type != models.AttachmentImage {
		t.Errorf("file 0 = %+v", report.Files[0])
	}
	if report.Files[1].Filename != "accident_1_2_dashcam.mp4" || report.Files[1].Type != models.AttachmentVideo {
		t.Errorf("file 1 = %+v", report.Files[1])
	}
	if report.Files[0].Size != int64(len(png)) {
		t.Errorf("size = %d, want %d", report.Files[0].Size, len(png))
	}
}

func TestSubmit_InvalidCoordinate(t *testing.T) {
	store := repository.NewMemoryIncidentStore()
	svc := NewIncidentService(store)
	form := validForm()
	form.Lng = ptr(181)

	if _, err := svc.Submit(context.Background(), form, nil); !errors.Is(err, models.ErrInvalidCoordinate) {
		t.Fatalf("error = %v, want ErrInvalidCoordinate", err)
	}
	if n, _ := store.Count(context.Background()); n != 0 {
		t.Errorf("invalid report was stored")
	}
}

func TestStatisticsCountsReports(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryIncidentStore()
	reg := newRegistry(t)
	incidents := NewIncidentService(store)
	stats := NewStatsService(repository.NewStatsRepository(), reg, store)

	for i := 0; i < 3; i++ {
		if _, err := incidents.Submit(ctx, validForm(), nil); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	s, err := stats.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if s.TotalAccidents != 330 || s.UserReportsCount != 3 {
		t.Errorf("stats = %+v, want 330 total and 3 user reports", s)
	}
	if s.Registry.Hazards != 23 || len(s.Registry.Outliers) != 1 || s.Registry.Outliers[0] != "Prakash High School to Kapsi Bridge (Pardi)" {
		t.Errorf("registry summary = %+v", s.Registry)
	}

	blackspots, reports, err := stats.Overview(ctx)
	if err != nil || blackspots != 23 || reports != 3 {
		t.Errorf("Overview = %d, %d, %v", blackspots, reports, err)
	}

	recent, err := incidents.Recent(ctx, 2)
	if err != nil || len(recent.Reports) != 2 || recent.Total != 3 {
		t.Errorf("Recent = %+v, %v", recent, err)
	}
}

func TestHeatmap(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryIncidentStore()
	reg := newRegistry(t)
	if _, err := NewIncidentService(store).Submit(ctx, validForm(), nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	svc := NewVisualizationService(reg, store)

	heatmap, err := svc.Heatmap(ctx)
	if err != nil {
		t.Fatalf("Heatmap: %v", err)
	}
	if len(heatmap.Data) != 24 {
		t.Fatalf("got %d points, want 24", len(heatmap.Data))
	}
	if heatmap.Data[0].Intensity != 15 || heatmap.Data[23].Intensity != 1 {
		t.Errorf("intensities = %d, %d", heatmap.Data[0].Intensity, heatmap.Data[23].Intensity)
	}

	fc, err := svc.HeatmapGeoJSON(ctx)
	if err != nil {
		t.Fatalf("HeatmapGeoJSON: %v", err)
	}
	if len(fc.Features) != 24 {
		t.Fatalf("got %d features, want 24", len(fc.Features))
	}
	if got := fc.Features[0].Geometry.(orb.Point); got[0] != 79.0641 || got[1] != 21.0891 {
		t.Errorf("first feature = %v, want [lng lat]", got)
	}
}
