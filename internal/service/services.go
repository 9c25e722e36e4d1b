package service

import (
	"github.com/dkoval/college-resource-hub/internal/config"
	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/store"
)

// Services bundles every service behind a single injection point for the
// transport layer.
type Services struct {
	AuthService       AuthService
	ResourceService   ResourceService
	BookmarkService   BookmarkService
	FeedbackService   FeedbackService
	CalendarService   CalendarService
	NewsletterService NewsletterService
}

// NewServices wires all services onto the repositories, notifier and file
// store.
func NewServices(storages *store.Storages, notifier Notifier, files FileStore, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, storages.OTPRepository, notifier, cfg, logger),
		ResourceService:   NewResourceService(storages.ResourceRepository, files, logger),
		BookmarkService:   NewBookmarkService(storages.BookmarkRepository, storages.ResourceRepository, logger),
		FeedbackService:   NewFeedbackService(storages.FeedbackRepository, storages.ResourceRepository, logger),
		CalendarService:   NewCalendarService(storages.CalendarRepository, logger),
		NewsletterService: NewNewsletterService(storages.NewsletterRepository, logger),
	}
}
