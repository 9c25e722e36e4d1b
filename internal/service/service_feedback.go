package service

import (
	"context"
	"fmt"
	"math"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/store"
	"github.com/dkoval/college-resource-hub/models"
)

// feedbackService is the concrete implementation of [FeedbackService].
type feedbackService struct {
	feedbackRepository store.FeedbackRepository
	resourceRepository store.ResourceRepository

	logger *logger.Logger
}

// NewFeedbackService constructs a [FeedbackService].
func NewFeedbackService(feedbackRepository store.FeedbackRepository, resourceRepository store.ResourceRepository, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		resourceRepository: resourceRepository,
		logger:             logger,
	}
}

// Add stores a rating and optional comment on an existing resource.
// Ratings outside 1..5 are rejected with [ErrInvalidRating].
func (s *feedbackService) Add(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return models.Feedback{}, ErrInvalidRating
	}

	if _, err := s.resourceRepository.FindByID(ctx, feedback.ResourceID); err != nil {
		return models.Feedback{}, fmt.Errorf("resource lookup failed: %w", err)
	}

	return s.feedbackRepository.Create(ctx, feedback)
}

// ForResource returns all feedback on a resource together with the average
// rating rounded to one decimal place.
func (s *feedbackService) ForResource(ctx context.Context, resourceID int64) (models.FeedbackSummary, error) {
	entries, err := s.feedbackRepository.ListForResource(ctx, resourceID)
	if err != nil {
		return models.FeedbackSummary{}, err
	}

	var avg float64
	if len(entries) > 0 {
		var sum int
		for _, f := range entries {
			sum += f.Rating
		}
		avg = math.Round(float64(sum)/float64(len(entries))*10) / 10
	}

	return models.FeedbackSummary{
		Feedback:      entries,
		AverageRating: avg,
		TotalFeedback: len(entries),
	}, nil
}

// ByUser returns all feedback written by the user.
func (s *feedbackService) ByUser(ctx context.Context, userID int64) ([]models.Feedback, error) {
	return s.feedbackRepository.ListByUser(ctx, userID)
}

// Update changes the user's own feedback entry.
func (s *feedbackService) Update(ctx context.Context, feedbackID, userID int64, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	return s.feedbackRepository.Update(ctx, feedbackID, userID, rating, comment)
}

// Delete removes the user's own feedback entry.
func (s *feedbackService) Delete(ctx context.Context, feedbackID, userID int64) error {
	return s.feedbackRepository.Delete(ctx, feedbackID, userID)
}
