package store

import (
	"context"
	"fmt"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/models"
	"github.com/jackc/pgerrcode"
)

// bookmarkRepository is the PostgreSQL-backed implementation of
// [BookmarkRepository]. The (user_id, resource_id) pair is unique at the
// database level; duplicate inserts surface as [ErrAlreadyBookmarked].
type bookmarkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a bookmark for the user.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAlreadyBookmarked].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *bookmarkRepository) Create(ctx context.Context, userID, resourceID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createBookmark, userID, resourceID); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.Create").Msg("error inserting bookmark")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyBookmarked
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// ListForUser returns the user's bookmarks joined with resource and uploader
// details, newest first.
func (r *bookmarkRepository) ListForUser(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBookmarksForUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListForUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var bookmarks []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.BookmarkID, &b.UserID, &b.ResourceID, &b.CreatedAt,
			&b.Title, &b.Description, &b.FileName, &b.Subject, &b.Department,
			&b.Category, &b.ResourceCreatedAt, &b.UploaderName); err != nil {
			log.Err(err).Str("func", "*bookmarkRepository.ListForUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

// Delete removes the user's bookmark on a resource.
// Returns [ErrBookmarkNotFound] when no row was deleted.
func (r *bookmarkRepository) Delete(ctx context.Context, userID, resourceID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBookmark, userID, resourceID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.Delete").Msg("error deleting bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
