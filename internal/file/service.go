// Package file handles file upload, listing, and deletion within containers.
package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/filedrop/service/internal/container"
	"github.com/filedrop/service/internal/storage"
)

// Service contains business logic for file management.
type Service struct {
	store    storage.Storage
	maxBytes int64
}

// NewService creates a new file Service with the given upload size ceiling.
func NewService(store storage.Storage, maxBytes int64) *Service {
	return &Service{store: store, maxBytes: maxBytes}
}

// Upload validates the candidate file and streams it into the container,
// creating the container on demand. The stored key is a random identifier
// prefixed to the original filename, so concurrent uploads never collide.
func (s *Service) Upload(ctx context.Context, containerName, originalName, contentType string, size int64, r io.Reader) (storage.ObjectInfo, error) {
	if err := container.ValidateName(containerName); err != nil {
		return storage.ObjectInfo{}, err
	}
	if verr := ValidateUpload(contentType, size, s.maxBytes); verr != nil {
		return storage.ObjectInfo{}, verr
	}

	if err := s.store.EnsureContainer(ctx, containerName); err != nil {
		return storage.ObjectInfo{}, fmt.Errorf("ensure container %q: %w", containerName, err)
	}

	key := uuid.NewString() + "-" + filepath.Base(originalName)
	info, err := s.store.PutObject(ctx, containerName, key, r, size, contentType, originalName)
	if err != nil {
		return storage.ObjectInfo{}, fmt.Errorf("store file %q: %w", originalName, err)
	}
	return info, nil
}

// List returns the container's files with their metadata.
// A container that does not exist yields storage.ErrContainerNotFound.
func (s *Service) List(ctx context.Context, containerName string) ([]storage.ObjectInfo, error) {
	objects, err := s.store.ListObjects(ctx, containerName)
	if err != nil {
		if err == storage.ErrContainerNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("list files in %q: %w", containerName, err)
	}
	return objects, nil
}

// Delete removes one file by its stored key.
func (s *Service) Delete(ctx context.Context, containerName, key string) error {
	err := s.store.RemoveObject(ctx, containerName, key)
	if err != nil {
		if err == storage.ErrObjectNotFound || err == storage.ErrContainerNotFound {
			return err
		}
		return fmt.Errorf("delete file %q: %w", key, err)
	}
	return nil
}
