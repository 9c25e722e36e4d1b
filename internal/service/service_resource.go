package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/store"
	"github.com/dkoval/college-resource-hub/models"
)

// resourceService is the concrete implementation of [ResourceService].
// Uploads are auto-approved; the admin approval toggle exists to pull a
// resource back out of the public listing.
type resourceService struct {
	resourceRepository store.ResourceRepository
	files              FileStore

	logger *logger.Logger
}

// NewResourceService constructs a [ResourceService] on top of the resource
// repository and the file store.
func NewResourceService(resourceRepository store.ResourceRepository, files FileStore, logger *logger.Logger) ResourceService {
	return &resourceService{
		resourceRepository: resourceRepository,
		files:              files,
		logger:             logger,
	}
}

// Upload persists the file stream and then the metadata row. If the row
// insert fails the stored file is removed again so no orphan files
// accumulate on disk.
func (s *resourceService) Upload(ctx context.Context, input UploadInput) (models.Resource, error) {
	log := logger.FromContext(ctx)

	if input.Title == "" || input.Subject == "" || input.Department == "" || input.Category == "" {
		return models.Resource{}, ErrInvalidDataProvided
	}
	if !input.Category.Valid() {
		return models.Resource{}, ErrInvalidCategory
	}
	if input.File == nil || input.FileName == "" {
		return models.Resource{}, ErrInvalidDataProvided
	}

	stored, err := s.files.Save(ctx, input.FileName, input.File)
	if err != nil {
		return models.Resource{}, fmt.Errorf("storing uploaded file failed: %w", err)
	}

	resource, err := s.resourceRepository.Create(ctx, models.Resource{
		Title:       input.Title,
		Description: input.Description,
		FileName:    input.FileName,
		FilePath:    stored.Path,
		FileSize:    stored.Size,
		FileType:    input.ContentType,
		Subject:     input.Subject,
		Department:  input.Department,
		UploadedBy:  input.UploadedBy,
		Category:    input.Category,
		IsApproved:  true,
	})
	if err != nil {
		if rmErr := s.files.Remove(stored.Path); rmErr != nil {
			log.Err(rmErr).Str("path", stored.Path).Msg("cleanup of stored file failed")
		}
		return models.Resource{}, fmt.Errorf("inserting resource failed: %w", err)
	}

	log.Info().Int64("resource_id", resource.ResourceID).Int64("user_id", input.UploadedBy).Msg("resource uploaded")

	return resource, nil
}

// List returns approved resources matching the filter.
func (s *resourceService) List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	return s.resourceRepository.List(ctx, filter)
}

// Get returns a single resource with uploader details.
func (s *resourceService) Get(ctx context.Context, resourceID int64) (models.Resource, error) {
	return s.resourceRepository.FindByID(ctx, resourceID)
}

// Download opens the stored file of a resource and bumps its download
// counter. A failed counter bump is logged but does not block the download.
// The caller owns the returned reader and must close it.
func (s *resourceService) Download(ctx context.Context, resourceID int64) (models.Resource, io.ReadSeekCloser, error) {
	log := logger.FromContext(ctx)

	resource, err := s.resourceRepository.FindByID(ctx, resourceID)
	if err != nil {
		return models.Resource{}, nil, err
	}

	file, err := s.files.Open(resource.FilePath)
	if err != nil {
		log.Err(err).Str("path", resource.FilePath).Msg("stored file missing")
		return models.Resource{}, nil, errors.Join(store.ErrResourceNotFound, err)
	}

	if err := s.resourceRepository.IncrementDownloads(ctx, resourceID); err != nil {
		log.Err(err).Int64("resource_id", resourceID).Msg("incrementing download count failed")
	}

	return resource, file, nil
}

// MyUploads returns every resource uploaded by the user.
func (s *resourceService) MyUploads(ctx context.Context, userID int64) ([]models.Resource, error) {
	return s.resourceRepository.ListByUploader(ctx, userID)
}

// SetApproval toggles the approval flag. Admin only.
func (s *resourceService) SetApproval(ctx context.Context, role models.Role, resourceID int64, approved bool) error {
	if role != models.RoleAdmin {
		return ErrAdminRequired
	}

	return s.resourceRepository.SetApproval(ctx, resourceID, approved)
}
