package store

import (
	"context"
	"fmt"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/jackc/pgerrcode"
)

// newsletterRepository is the PostgreSQL-backed implementation of
// [NewsletterRepository].
type newsletterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNewsletterRepository constructs a [NewsletterRepository] backed by the
// provided database connection and logger.
func NewNewsletterRepository(db *DB, logger *logger.Logger) NewsletterRepository {
	logger.Debug().Msg("creating newsletter repository")
	return &newsletterRepository{
		db:     db,
		logger: logger,
	}
}

// Subscribe inserts a subscription row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAlreadySubscribed].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *newsletterRepository) Subscribe(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, subscribeNewsletter, email); err != nil {
		log.Err(err).Str("func", "*newsletterRepository.Subscribe").Msg("error inserting subscription")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAlreadySubscribed
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// Unsubscribe deactivates the subscription for the given email.
// A missing row is not an error; the update simply affects nothing.
func (r *newsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, unsubscribeNewsletter, email); err != nil {
		log.Err(err).Str("func", "*newsletterRepository.Unsubscribe").Msg("error deactivating subscription")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
