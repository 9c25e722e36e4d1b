package store

import (
	"context"
	"time"

	"github.com/dkoval/college-resource-hub/models"
)

// UserRepository persists account records.
type UserRepository interface {
	// Create inserts an unverified account and returns it with
	// server-assigned fields (UserID, CreatedAt) populated.
	Create(ctx context.Context, user models.User) (models.User, error)

	// FindByEmail looks an account up by its unique email.
	// Returns ErrNoUserWasFound when no row matches.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID looks an account up by its identifier.
	// Returns ErrNoUserWasFound when no row matches.
	FindByID(ctx context.Context, userID int64) (models.User, error)

	// DeleteUnverified removes an unverified account with the given email.
	// Deleting a missing or verified row is not an error.
	DeleteUnverified(ctx context.Context, email string) error

	// SetVerified flips the verification flag for the account with the given
	// email and returns the number of affected rows.
	SetVerified(ctx context.Context, email string) (int64, error)
}

// OTPRepository persists one-time verification codes.
type OTPRepository interface {
	// Insert stores a freshly issued code with its absolute expiry.
	Insert(ctx context.Context, email, code string, expiresAt time.Time) (models.OTPCode, error)

	// DeleteAllForEmail removes every code issued for the given email,
	// superseded and consumed ones included.
	DeleteAllForEmail(ctx context.Context, email string) error

	// FindLatestMatching returns the most recently created code matching
	// (email, code) exactly, regardless of expiry or consumption.
	// Returns ErrOTPNotFound when no row matches.
	FindLatestMatching(ctx context.Context, email, code string) (models.OTPCode, error)

	// MarkConsumed flags the code row as used.
	MarkConsumed(ctx context.Context, otpID int64) error
}

// ResourceRepository persists shared study materials.
type ResourceRepository interface {
	Create(ctx context.Context, resource models.Resource) (models.Resource, error)
	FindByID(ctx context.Context, resourceID int64) (models.Resource, error)
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	ListByUploader(ctx context.Context, userID int64) ([]models.Resource, error)
	IncrementDownloads(ctx context.Context, resourceID int64) error
	SetApproval(ctx context.Context, resourceID int64, approved bool) error
}

// BookmarkRepository persists per-user saved resources.
type BookmarkRepository interface {
	Create(ctx context.Context, userID, resourceID int64) error
	ListForUser(ctx context.Context, userID int64) ([]models.Bookmark, error)
	Delete(ctx context.Context, userID, resourceID int64) error
}

// FeedbackRepository persists resource ratings and comments.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	ListForResource(ctx context.Context, resourceID int64) ([]models.Feedback, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Feedback, error)
	Update(ctx context.Context, feedbackID, userID int64, rating int, comment string) error
	Delete(ctx context.Context, feedbackID, userID int64) error
}

// CalendarRepository persists academic calendar events.
type CalendarRepository interface {
	Create(ctx context.Context, event models.CalendarEvent) (models.CalendarEvent, error)
	List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error)
}

// NewsletterRepository persists newsletter subscriptions.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
}
