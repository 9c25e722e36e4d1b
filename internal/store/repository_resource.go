package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/models"
)

// resourceRepository is the PostgreSQL-backed implementation of
// [ResourceRepository]. Listing queries join the "users" table to expose the
// uploader's name and role alongside each resource.
type resourceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResourceRepository constructs a [ResourceRepository] backed by the
// provided database connection and logger.
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new resource row and returns it with server-assigned
// fields (ResourceID, DownloadCount, CreatedAt).
func (r *resourceRepository) Create(ctx context.Context, resource models.Resource) (models.Resource, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createResource,
		resource.Title, resource.Description, resource.FileName, resource.FilePath,
		resource.FileSize, resource.FileType, resource.Subject, resource.Department,
		resource.UploadedBy, resource.Category, resource.IsApproved)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*resourceRepository.Create").Msg("error inserting resource")
		return models.Resource{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&resource.ResourceID, &resource.DownloadCount, &resource.CreatedAt); err != nil {
		log.Err(err).Str("func", "*resourceRepository.Create").Msg("error: scanning error")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return resource, nil
}

// FindByID retrieves a single resource joined with its uploader.
// Returns [ErrResourceNotFound] when no row matches.
func (r *resourceRepository) FindByID(ctx context.Context, resourceID int64) (models.Resource, error) {
	log := logger.FromContext(ctx)

	var res models.Resource
	row := r.db.QueryRowContext(ctx, findResourceByID, resourceID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*resourceRepository.FindByID").Msg("error querying resource")
		return models.Resource{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&res.ResourceID, &res.Title, &res.Description, &res.FileName,
		&res.FilePath, &res.FileSize, &res.FileType, &res.Subject, &res.Department,
		&res.UploadedBy, &res.Category, &res.IsApproved, &res.DownloadCount,
		&res.CreatedAt, &res.UploaderName, &res.UploaderRole)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.FindByID").Msg("error: scanning error")
		return models.Resource{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return res, nil
}

// List returns all approved resources matching the filter, newest first.
// The query is assembled dynamically with squirrel; see
// [buildListResourcesQuery] for filter semantics.
func (r *resourceRepository) List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListResourcesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.List").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(&res.ResourceID, &res.Title, &res.Description, &res.FileName,
			&res.FilePath, &res.FileSize, &res.FileType, &res.Subject, &res.Department,
			&res.UploadedBy, &res.Category, &res.IsApproved, &res.DownloadCount,
			&res.CreatedAt, &res.UploaderName, &res.UploaderRole); err != nil {
			log.Err(err).Str("func", "*resourceRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}

// ListByUploader returns every resource uploaded by the given user, approved
// or not, newest first.
func (r *resourceRepository) ListByUploader(ctx context.Context, userID int64) ([]models.Resource, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listResourcesByUploader, userID)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.ListByUploader").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		if err := rows.Scan(&res.ResourceID, &res.Title, &res.Description, &res.FileName,
			&res.FilePath, &res.FileSize, &res.FileType, &res.Subject, &res.Department,
			&res.UploadedBy, &res.Category, &res.IsApproved, &res.DownloadCount,
			&res.CreatedAt); err != nil {
			log.Err(err).Str("func", "*resourceRepository.ListByUploader").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}

// IncrementDownloads bumps the download counter for a resource.
func (r *resourceRepository) IncrementDownloads(ctx context.Context, resourceID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, incrementDownloadCount, resourceID); err != nil {
		log.Err(err).Str("func", "*resourceRepository.IncrementDownloads").Msg("error incrementing downloads")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SetApproval updates the approval flag of a resource.
// Returns [ErrResourceNotFound] when the resource does not exist.
func (r *resourceRepository) SetApproval(ctx context.Context, resourceID int64, approved bool) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setResourceApproval, approved, resourceID)
	if err != nil {
		log.Err(err).Str("func", "*resourceRepository.SetApproval").Msg("error updating approval")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}
