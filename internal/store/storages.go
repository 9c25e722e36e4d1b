package store

import "github.com/dkoval/college-resource-hub/internal/logger"

// Storages bundles every repository behind a single injection point for the
// service layer.
type Storages struct {
	UserRepository       UserRepository
	OTPRepository        OTPRepository
	ResourceRepository   ResourceRepository
	BookmarkRepository   BookmarkRepository
	FeedbackRepository   FeedbackRepository
	CalendarRepository   CalendarRepository
	NewsletterRepository NewsletterRepository
}

// NewStorages wires all PostgreSQL repositories onto one shared connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		OTPRepository:        NewOTPRepository(db, logger),
		ResourceRepository:   NewResourceRepository(db, logger),
		BookmarkRepository:   NewBookmarkRepository(db, logger),
		FeedbackRepository:   NewFeedbackRepository(db, logger),
		CalendarRepository:   NewCalendarRepository(db, logger),
		NewsletterRepository: NewNewsletterRepository(db, logger),
	}
}
