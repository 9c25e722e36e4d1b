package store

import (
	"context"
	"fmt"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/models"
)

// feedbackRepository is the PostgreSQL-backed implementation of
// [FeedbackRepository]. Updates and deletes are scoped by (feedback_id,
// user_id) so users can only touch their own entries.
type feedbackRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFeedbackRepository constructs a [FeedbackRepository] backed by the
// provided database connection and logger.
func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating feedback repository")
	return &feedbackRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a feedback entry and returns it with server-assigned
// fields (FeedbackID, CreatedAt).
func (r *feedbackRepository) Create(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createFeedback,
		feedback.UserID, feedback.ResourceID, feedback.Rating, feedback.Comment)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*feedbackRepository.Create").Msg("error inserting feedback")
		return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&feedback.FeedbackID, &feedback.CreatedAt); err != nil {
		log.Err(err).Str("func", "*feedbackRepository.Create").Msg("error: scanning error")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return feedback, nil
}

// ListForResource returns all feedback on a resource joined with the author's
// name, newest first.
func (r *feedbackRepository) ListForResource(ctx context.Context, resourceID int64) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFeedbackForResource, resourceID)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.ListForResource").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.FeedbackID, &f.UserID, &f.ResourceID, &f.Rating,
			&f.Comment, &f.CreatedAt, &f.UserName); err != nil {
			log.Err(err).Str("func", "*feedbackRepository.ListForResource").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// ListByUser returns all feedback written by a user joined with resource
// titles, newest first.
func (r *feedbackRepository) ListByUser(ctx context.Context, userID int64) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFeedbackByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.ListByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.FeedbackID, &f.UserID, &f.ResourceID, &f.Rating,
			&f.Comment, &f.CreatedAt, &f.ResourceTitle, &f.FileName); err != nil {
			log.Err(err).Str("func", "*feedbackRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// Update changes the rating and comment of the user's own feedback entry.
// Returns [ErrFeedbackNotFound] when the entry does not exist or belongs to
// a different user.
func (r *feedbackRepository) Update(ctx context.Context, feedbackID, userID int64, rating int, comment string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateFeedback, rating, comment, feedbackID, userID)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.Update").Msg("error updating feedback")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

// Delete removes the user's own feedback entry.
// Returns [ErrFeedbackNotFound] when the entry does not exist or belongs to
// a different user.
func (r *feedbackRepository) Delete(ctx context.Context, feedbackID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFeedback, feedbackID, userID)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.Delete").Msg("error deleting feedback")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}
