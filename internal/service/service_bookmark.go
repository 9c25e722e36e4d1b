package service

import (
	"context"
	"fmt"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/store"
	"github.com/dkoval/college-resource-hub/models"
)

// bookmarkService is the concrete implementation of [BookmarkService].
type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	resourceRepository store.ResourceRepository

	logger *logger.Logger
}

// NewBookmarkService constructs a [BookmarkService].
func NewBookmarkService(bookmarkRepository store.BookmarkRepository, resourceRepository store.ResourceRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		resourceRepository: resourceRepository,
		logger:             logger,
	}
}

// Add bookmarks a resource for the user. The resource must exist;
// double-bookmarking surfaces as [store.ErrAlreadyBookmarked].
func (s *bookmarkService) Add(ctx context.Context, userID, resourceID int64) error {
	if _, err := s.resourceRepository.FindByID(ctx, resourceID); err != nil {
		return fmt.Errorf("resource lookup failed: %w", err)
	}

	return s.bookmarkRepository.Create(ctx, userID, resourceID)
}

// List returns the user's bookmarks with joined resource details.
func (s *bookmarkService) List(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	return s.bookmarkRepository.ListForUser(ctx, userID)
}

// Remove deletes the user's bookmark on a resource.
func (s *bookmarkService) Remove(ctx context.Context, userID, resourceID int64) error {
	return s.bookmarkRepository.Delete(ctx, userID, resourceID)
}
