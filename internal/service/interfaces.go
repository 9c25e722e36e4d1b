package service

import (
	"context"
	"io"

	"github.com/dkoval/college-resource-hub/models"
)

// AuthService orchestrates the OTP-gated registration flow, login, and the
// session token lifecycle.
type AuthService interface {
	// Register creates an unverified account and emails it a one-time code.
	// No session token is issued at this stage.
	Register(ctx context.Context, input RegisterInput) (RegisterResult, error)

	// VerifyOTP consumes a one-time code, marks the account verified and
	// issues the first session token.
	VerifyOTP(ctx context.Context, email, code string) (models.User, models.Token, error)

	// ResendOTP issues a fresh code to an existing unverified account,
	// invalidating any earlier one.
	ResendOTP(ctx context.Context, email string) error

	// Login authenticates a verified account and issues a session token.
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)

	// CreateToken mints a session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and recovers its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RegisterInput carries the registration form fields. Role defaults to
// student when empty.
type RegisterInput struct {
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Password   string      `json:"password"`
	Role       models.Role `json:"role"`
	Department string      `json:"department"`
}

// RegisterResult identifies the created, still-unverified account.
type RegisterResult struct {
	UserID int64
	Email  string
}

// Notifier delivers transactional email. Implementations report delivery
// failure via the returned error; the welcome variant is fire-and-forget
// from the flow's perspective.
type Notifier interface {
	SendCode(ctx context.Context, email, code, name string) error
	SendWelcome(ctx context.Context, email, name string) error
}

// FileStore persists uploaded resource files and serves them back.
type FileStore interface {
	// Save streams the upload to durable storage and returns where it landed.
	Save(ctx context.Context, fileName string, r io.Reader) (StoredFile, error)

	// Open opens a previously stored file for reading.
	Open(path string) (io.ReadSeekCloser, error)

	// Remove deletes a stored file. Used to roll back failed uploads.
	Remove(path string) error
}

// StoredFile describes a file accepted by a [FileStore].
type StoredFile struct {
	Path string
	Size int64
}

// ResourceService manages shared study materials.
type ResourceService interface {
	Upload(ctx context.Context, input UploadInput) (models.Resource, error)
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	Get(ctx context.Context, resourceID int64) (models.Resource, error)
	Download(ctx context.Context, resourceID int64) (models.Resource, io.ReadSeekCloser, error)
	MyUploads(ctx context.Context, userID int64) ([]models.Resource, error)
	SetApproval(ctx context.Context, role models.Role, resourceID int64, approved bool) error
}

// UploadInput carries the multipart upload fields together with the file
// stream.
type UploadInput struct {
	Title       string
	Description string
	Subject     string
	Department  string
	Category    models.Category
	FileName    string
	ContentType string
	File        io.Reader
	UploadedBy  int64
}

// BookmarkService manages per-user saved resources.
type BookmarkService interface {
	Add(ctx context.Context, userID, resourceID int64) error
	List(ctx context.Context, userID int64) ([]models.Bookmark, error)
	Remove(ctx context.Context, userID, resourceID int64) error
}

// FeedbackService manages resource ratings and comments.
type FeedbackService interface {
	Add(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	ForResource(ctx context.Context, resourceID int64) (models.FeedbackSummary, error)
	ByUser(ctx context.Context, userID int64) ([]models.Feedback, error)
	Update(ctx context.Context, feedbackID, userID int64, rating int, comment string) error
	Delete(ctx context.Context, feedbackID, userID int64) error
}

// CalendarService manages the academic calendar.
type CalendarService interface {
	List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
	Add(ctx context.Context, role models.Role, event models.CalendarEvent) (models.CalendarEvent, error)
}

// NewsletterService manages newsletter subscriptions.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
}
