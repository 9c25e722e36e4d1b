package models

import "time"

// Bookmark links a user to a saved resource. The (UserID, ResourceID) pair is
// unique at the database level.
type Bookmark struct {
	BookmarkID int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ResourceID int64     `json:"resource_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined resource fields, populated by listing queries only.
	Title             string    `json:"title,omitempty"`
	Description       string    `json:"description,omitempty"`
	FileName          string    `json:"file_name,omitempty"`
	Subject           string    `json:"subject,omitempty"`
	Department        string    `json:"department,omitempty"`
	Category          Category  `json:"category,omitempty"`
	ResourceCreatedAt time.Time `json:"resource_created_at,omitzero"`
	UploaderName      string    `json:"uploader_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}
