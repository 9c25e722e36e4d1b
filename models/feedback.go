package models

import "time"

// Feedback is a user's rating (1–5) and optional comment on a resource.
type Feedback struct {
	FeedbackID int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ResourceID int64     `json:"resource_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined fields, populated by listing queries only.
	UserName      string `json:"user_name,omitempty"`
	ResourceTitle string `json:"resource_title,omitempty"`
	FileName      string `json:"file_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Feedback model.
func (f Feedback) TableName() string {
	return "feedback"
}
