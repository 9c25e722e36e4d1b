package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/store"
	"github.com/dkoval/college-resource-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ResourceRepository
// ─────────────────────────────────────────────

type mockResourceRepository struct {
	createFn             func(ctx context.Context, resource models.Resource) (models.Resource, error)
	findByIDFn           func(ctx context.Context, resourceID int64) (models.Resource, error)
	listFn               func(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	listByUploaderFn     func(ctx context.Context, userID int64) ([]models.Resource, error)
	incrementDownloadsFn func(ctx context.Context, resourceID int64) error
	setApprovalFn        func(ctx context.Context, resourceID int64, approved bool) error
}

func (m *mockResourceRepository) Create(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if m.createFn != nil {
		return m.createFn(ctx, resource)
	}
	resource.ResourceID = 1
	return resource, nil
}

func (m *mockResourceRepository) FindByID(ctx context.Context, resourceID int64) (models.Resource, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, resourceID)
	}
	return models.Resource{ResourceID: resourceID}, nil
}

func (m *mockResourceRepository) List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockResourceRepository) ListByUploader(ctx context.Context, userID int64) ([]models.Resource, error) {
	if m.listByUploaderFn != nil {
		return m.listByUploaderFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockResourceRepository) IncrementDownloads(ctx context.Context, resourceID int64) error {
	if m.incrementDownloadsFn != nil {
		return m.incrementDownloadsFn(ctx, resourceID)
	}
	return nil
}

func (m *mockResourceRepository) SetApproval(ctx context.Context, resourceID int64, approved bool) error {
	if m.setApprovalFn != nil {
		return m.setApprovalFn(ctx, resourceID, approved)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: FileStore
// ─────────────────────────────────────────────

type nopReadSeekCloser struct {
	*bytes.Reader
}

func (nopReadSeekCloser) Close() error { return nil }

type mockFileStore struct {
	saveFn   func(ctx context.Context, fileName string, r io.Reader) (StoredFile, error)
	openFn   func(path string) (io.ReadSeekCloser, error)
	removeFn func(path string) error
}

func (m *mockFileStore) Save(ctx context.Context, fileName string, r io.Reader) (StoredFile, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, fileName, r)
	}
	return StoredFile{Path: "uploads/" + fileName, Size: 1}, nil
}

func (m *mockFileStore) Open(path string) (io.ReadSeekCloser, error) {
	if m.openFn != nil {
		return m.openFn(path)
	}
	return nopReadSeekCloser{bytes.NewReader([]byte("data"))}, nil
}

func (m *mockFileStore) Remove(path string) error {
	if m.removeFn != nil {
		return m.removeFn(path)
	}
	return nil
}

// ─────────────────────────────────────────────
// Upload
// ─────────────────────────────────────────────

func validUploadInput() UploadInput {
	return UploadInput{
		Title:       "Lecture Notes",
		Description: "week 1",
		Subject:     "Algorithms",
		Department:  "CSE",
		Category:    models.CategoryNotes,
		FileName:    "notes.pdf",
		ContentType: "application/pdf",
		File:        strings.NewReader("pdf bytes"),
		UploadedBy:  42,
	}
}

func TestResourceService_Upload_Success(t *testing.T) {
	repo := &mockResourceRepository{
		createFn: func(_ context.Context, resource models.Resource) (models.Resource, error) {
			assert.Equal(t, "uploads/notes.pdf", resource.FilePath)
			assert.Equal(t, int64(9), resource.FileSize)
			assert.True(t, resource.IsApproved, "uploads are auto-approved")
			resource.ResourceID = 5
			return resource, nil
		},
	}
	files := &mockFileStore{
		saveFn: func(_ context.Context, fileName string, r io.Reader) (StoredFile, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			return StoredFile{Path: "uploads/" + fileName, Size: int64(len(data))}, nil
		},
	}
	svc := NewResourceService(repo, files, logger.Nop())

	resource, err := svc.Upload(context.Background(), validUploadInput())

	require.NoError(t, err)
	assert.Equal(t, int64(5), resource.ResourceID)
}

func TestResourceService_Upload_MissingFields(t *testing.T) {
	svc := NewResourceService(&mockResourceRepository{}, &mockFileStore{}, logger.Nop())

	input := validUploadInput()
	input.Title = ""

	_, err := svc.Upload(context.Background(), input)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestResourceService_Upload_UnknownCategory(t *testing.T) {
	svc := NewResourceService(&mockResourceRepository{}, &mockFileStore{}, logger.Nop())

	input := validUploadInput()
	input.Category = "memes"

	_, err := svc.Upload(context.Background(), input)

	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestResourceService_Upload_InsertFailureRemovesFile(t *testing.T) {
	removed := false
	repo := &mockResourceRepository{
		createFn: func(_ context.Context, _ models.Resource) (models.Resource, error) {
			return models.Resource{}, errRepo
		},
	}
	files := &mockFileStore{
		removeFn: func(path string) error {
			removed = true
			assert.Equal(t, "uploads/notes.pdf", path)
			return nil
		},
	}
	svc := NewResourceService(repo, files, logger.Nop())

	_, err := svc.Upload(context.Background(), validUploadInput())

	require.ErrorIs(t, err, errRepo)
	assert.True(t, removed, "stored file must be cleaned up when the metadata insert fails")
}

// ─────────────────────────────────────────────
// Download
// ─────────────────────────────────────────────

func TestResourceService_Download_Success(t *testing.T) {
	bumped := false
	repo := &mockResourceRepository{
		findByIDFn: func(_ context.Context, resourceID int64) (models.Resource, error) {
			return models.Resource{ResourceID: resourceID, FileName: "notes.pdf", FilePath: "uploads/x.pdf"}, nil
		},
		incrementDownloadsFn: func(_ context.Context, resourceID int64) error {
			bumped = true
			return nil
		},
	}
	svc := NewResourceService(repo, &mockFileStore{}, logger.Nop())

	resource, reader, err := svc.Download(context.Background(), 5)

	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, "notes.pdf", resource.FileName)
	assert.True(t, bumped)
}

func TestResourceService_Download_CounterFailureDoesNotBlock(t *testing.T) {
	repo := &mockResourceRepository{
		findByIDFn: func(_ context.Context, resourceID int64) (models.Resource, error) {
			return models.Resource{ResourceID: resourceID, FilePath: "uploads/x.pdf"}, nil
		},
		incrementDownloadsFn: func(_ context.Context, _ int64) error {
			return errRepo
		},
	}
	svc := NewResourceService(repo, &mockFileStore{}, logger.Nop())

	_, reader, err := svc.Download(context.Background(), 5)

	require.NoError(t, err, "download counter is best-effort")
	reader.Close()
}

func TestResourceService_Download_UnknownResource(t *testing.T) {
	repo := &mockResourceRepository{
		findByIDFn: func(_ context.Context, _ int64) (models.Resource, error) {
			return models.Resource{}, store.ErrResourceNotFound
		},
	}
	svc := NewResourceService(repo, &mockFileStore{}, logger.Nop())

	_, _, err := svc.Download(context.Background(), 404)

	require.ErrorIs(t, err, store.ErrResourceNotFound)
}

func TestResourceService_Download_MissingStoredFile(t *testing.T) {
	files := &mockFileStore{
		openFn: func(_ string) (io.ReadSeekCloser, error) {
			return nil, errors.New("no such file")
		},
	}
	svc := NewResourceService(&mockResourceRepository{}, files, logger.Nop())

	_, _, err := svc.Download(context.Background(), 5)

	require.ErrorIs(t, err, store.ErrResourceNotFound)
}

// ─────────────────────────────────────────────
// SetApproval
// ─────────────────────────────────────────────

func TestResourceService_SetApproval_AdminOnly(t *testing.T) {
	called := false
	repo := &mockResourceRepository{
		setApprovalFn: func(_ context.Context, resourceID int64, approved bool) error {
			called = true
			assert.Equal(t, int64(5), resourceID)
			assert.False(t, approved)
			return nil
		},
	}
	svc := NewResourceService(repo, &mockFileStore{}, logger.Nop())

	require.NoError(t, svc.SetApproval(context.Background(), models.RoleAdmin, 5, false))
	assert.True(t, called)

	require.ErrorIs(t, svc.SetApproval(context.Background(), models.RoleStudent, 5, false), ErrAdminRequired)
	require.ErrorIs(t, svc.SetApproval(context.Background(), models.RoleFaculty, 5, false), ErrAdminRequired)
}
