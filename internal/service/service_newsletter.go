package service

import (
	"context"
	"regexp"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/store"
)

// emailPattern is the same permissive shape check the frontend applies:
// something@something.something, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// newsletterService is the concrete implementation of [NewsletterService].
type newsletterService struct {
	newsletterRepository store.NewsletterRepository

	logger *logger.Logger
}

// NewNewsletterService constructs a [NewsletterService].
func NewNewsletterService(newsletterRepository store.NewsletterRepository, logger *logger.Logger) NewsletterService {
	return &newsletterService{
		newsletterRepository: newsletterRepository,
		logger:               logger,
	}
}

// Subscribe adds an email to the newsletter after a shape check.
// Duplicate subscriptions surface as [store.ErrAlreadySubscribed].
func (s *newsletterService) Subscribe(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	return s.newsletterRepository.Subscribe(ctx, email)
}

// Unsubscribe deactivates a subscription. Unknown emails are ignored.
func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	return s.newsletterRepository.Unsubscribe(ctx, email)
}
