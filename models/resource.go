package models

import "time"

// Category is the closed set of resource categories.
type Category string

const (
	CategoryNotes      Category = "notes"
	CategoryAssignment Category = "assignment"
	CategoryWebinar    Category = "webinar"
	CategoryWorkshop   Category = "workshop"
	CategoryPlacement  Category = "placement"
	CategoryInternship Category = "internship"
	CategoryOther      Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNotes, CategoryAssignment, CategoryWebinar, CategoryWorkshop,
		CategoryPlacement, CategoryInternship, CategoryOther:
		return true
	}
	return false
}

// Resource is a shared study material uploaded by a user. FilePath points at
// the stored copy on disk and is never exposed to clients.
type Resource struct {
	ResourceID    int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	FileName      string    `json:"file_name"`
	FilePath      string    `json:"-"`
	FileSize      int64     `json:"file_size"`
	FileType      string    `json:"file_type"`
	Subject       string    `json:"subject"`
	Department    string    `json:"department"`
	UploadedBy    int64     `json:"uploaded_by"`
	Category      Category  `json:"category"`
	IsApproved    bool      `json:"is_approved"`
	DownloadCount int64     `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`

	// UploaderName and UploaderRole are populated by joined queries only.
	UploaderName string `json:"uploader_name,omitempty"`
	UploaderRole Role   `json:"uploader_role,omitempty"`
}

// ResourceFilter narrows a resource listing. Zero-valued fields are ignored.
type ResourceFilter struct {
	Department string
	Subject    string
	Category   string
	Search     string
}

// TableName returns the name of the database table
// associated with the Resource model.
func (r Resource) TableName() string {
	return "resources"
}
