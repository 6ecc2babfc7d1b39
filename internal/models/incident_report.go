package models

// Report statuses
const (
	ReportStatusPending = "pending_verification"
)

// Attachment types
const (
	AttachmentImage = "image"
	AttachmentVideo = "video"
)

// IncidentLocation is where a user-reported accident happened
type IncidentLocation struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// Reporter identifies who submitted the report
type Reporter struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Attachment describes a photo or video submitted with a report
type Attachment struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // image, video
	Size     int64  `json:"size"` // Bytes
}

// IncidentReport represents a user-submitted accident report
type IncidentReport struct {
	ID          int64            `json:"id" db:"id"`
	Location    IncidentLocation `json:"location"`
	Severity    string           `json:"severity" db:"severity"`
	VehicleType string           `json:"vehicle_type" db:"vehicle_type"`
	Casualties  int              `json:"casualties" db:"casualties"`
	Description string           `json:"description" db:"description"`
	Reporter    Reporter         `json:"reporter"`
	Timestamp   string           `json:"timestamp" db:"timestamp"` // Client-supplied, ISO 8601
	Files       []Attachment     `json:"files"`
	Status      string           `json:"status" db:"status"`
}

// IncidentForm is the multipart form of an accident report
type IncidentForm struct {
	Lat             *float64 `form:"lat" binding:"required"`
	Lng             *float64 `form:"lng" binding:"required"`
	Location        string   `form:"location" binding:"required"`
	Severity        string   `form:"severity" binding:"required"`
	VehicleType     string   `form:"vehicleType" binding:"required"`
	Casualties      int      `form:"casualties" binding:"min=0"`
	Description     string   `form:"description"`
	ReporterName    string   `form:"reporterName"`
	ReporterContact string   `form:"reporterContact"`
	Timestamp       string   `form:"timestamp" binding:"required"`
}

// RecentReportsResponse is the response of the recent reports endpoint
type RecentReportsResponse struct {
	Reports []IncidentReport `json:"reports"`
	Total   int64            `json:"total"`
}
