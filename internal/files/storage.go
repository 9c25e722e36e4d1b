// Package files implements on-disk storage for uploaded resource files.
// Stored names are prefixed with a UUID so concurrent uploads of files with
// identical names never collide.
package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dkoval/college-resource-hub/internal/config"
	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/service"
	"github.com/google/uuid"
)

// Storage stores uploaded files under a single directory.
// It implements service.FileStore.
type Storage struct {
	dir     string
	maxSize int64

	logger *logger.Logger
}

// NewStorage constructs a [Storage] rooted at cfg.UploadDir, creating the
// directory if needed.
func NewStorage(cfg config.Files, logger *logger.Logger) (*Storage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir failed: %w", err)
	}

	logger.Info().Str("dir", cfg.UploadDir).Msg("file storage created")

	return &Storage{
		dir:     cfg.UploadDir,
		maxSize: cfg.MaxUploadBytes,
		logger:  logger,
	}, nil
}

// Save streams the upload into the storage directory and returns its stored
// path and size. When a size limit is configured, an upload exceeding it is
// removed again and rejected.
func (s *Storage) Save(ctx context.Context, fileName string, r io.Reader) (service.StoredFile, error) {
	storedName := uuid.NewString() + filepath.Ext(fileName)
	storedPath := filepath.Join(s.dir, storedName)

	f, err := os.Create(storedPath)
	if err != nil {
		return service.StoredFile{}, fmt.Errorf("creating stored file failed: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(storedPath)
		return service.StoredFile{}, fmt.Errorf("writing stored file failed: %w", err)
	}

	if s.maxSize > 0 && size > s.maxSize {
		_ = os.Remove(storedPath)
		return service.StoredFile{}, fmt.Errorf("file too large: %d bytes", size)
	}

	return service.StoredFile{Path: storedPath, Size: size}, nil
}

// Open opens a previously stored file for reading.
func (s *Storage) Open(path string) (io.ReadSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stored file failed: %w", err)
	}

	return f, nil
}

// Remove deletes a stored file.
func (s *Storage) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing stored file failed: %w", err)
	}

	return nil
}
