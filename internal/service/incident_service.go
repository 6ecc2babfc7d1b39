package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"github.com/jengzang/saferoute-backend-go/internal/models"
	"github.com/jengzang/saferoute-backend-go/internal/repository"
)

// MaxAttachments is the number of file fields accepted per report (file0..file4)
const MaxAttachments = 5

// IncidentService handles user-submitted accident reports
type IncidentService struct {
	store repository.IncidentStore
}

// NewIncidentService creates a new incident service
func NewIncidentService(store repository.IncidentStore) *IncidentService {
	return &IncidentService{store: store}
}

// Submit validates and stores a report. files is indexed by form slot; nil
// entries are skipped but keep their slot number in the stored filename.
func (s *IncidentService) Submit(ctx context.Context, form models.IncidentForm, files []*multipart.FileHeader) (models.IncidentReport, error) {
	loc, err := models.NewLocation(*form.Lat, *form.Lng)
	if err != nil {
		return models.IncidentReport{}, err
	}
	if len(files) > MaxAttachments {
		return models.IncidentReport{}, fmt.Errorf("at most %d attachments allowed, got %d", MaxAttachments, len(files))
	}

	kinds := make([]string, len(files))
	for i, fh := range files {
		if fh == nil || fh.Filename == "" {
			continue
		}
		kind, err := classifyUpload(fh)
		if err != nil {
			return models.IncidentReport{}, fmt.Errorf("failed to read attachment %s: %w", fh.Filename, err)
		}
		kinds[i] = kind
	}

	reporterName := strings.TrimSpace(form.ReporterName)
	if reporterName == "" {
		reporterName = "Anonymous"
	}

	report, err := s.store.Append(ctx, func(id int64) models.IncidentReport {
		attachments := []models.Attachment{}
		for i, fh := range files {
			if kinds[i] == "" {
				continue
			}
			attachments = append(attachments, models.Attachment{
				Filename: fmt.Sprintf("accident_%d_%d_%s", id, i, fh.Filename),
				Type:     kinds[i],
				Size:     fh.Size,
			})
		}

		return models.IncidentReport{
			Location:    models.IncidentLocation{Lat: loc.Lat, Lng: loc.Lng, Name: form.Location},
			Severity:    form.Severity,
			VehicleType: form.VehicleType,
			Casualties:  form.Casualties,
			Description: form.Description,
			Reporter:    models.Reporter{Name: reporterName, Contact: form.ReporterContact},
			Timestamp:   form.Timestamp,
			Files:       attachments,
			Status:      models.ReportStatusPending,
		}
	})
	if err != nil {
		return models.IncidentReport{}, fmt.Errorf("failed to store report: %w", err)
	}

	for _, f := range report.Files {
		log.Printf("%s uploaded: %s (%s)", f.Type, f.Filename, humanize.Bytes(uint64(f.Size)))
	}
	log.Printf("New accident report #%d: %s (%s) with %d file(s)", report.ID, form.Location, form.Severity, len(report.Files))

	return report, nil
}

// Recent returns the newest reports and the total count
func (s *IncidentService) Recent(ctx context.Context, limit int) (*models.RecentReportsResponse, error) {
	reports, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []models.IncidentReport{}
	}
	return &models.RecentReportsResponse{Reports: reports, Total: total}, nil
}

// classifyUpload sniffs the file content; the client-declared type is only
// consulted when the content is not recognised.
func classifyUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}

	declared := fh.Header.Get("Content-Type")
	if strings.HasPrefix(mt.String(), "video/") ||
		(mt.Is("application/octet-stream") && strings.HasPrefix(declared, "video/")) {
		return models.AttachmentVideo, nil
	}
	return models.AttachmentImage, nil
}
