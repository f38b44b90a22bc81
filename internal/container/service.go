// Package container manages storage containers and their naming rules.
package container

import (
	"context"
	"fmt"

	"github.com/filedrop/service/internal/storage"
)

// Service contains business logic for container management.
type Service struct {
	store storage.Storage
}

// NewService creates a new container Service.
func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

// List returns all containers ordered by name.
func (s *Service) List(ctx context.Context) ([]storage.ContainerInfo, error) {
	containers, err := s.store.ListContainers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	return containers, nil
}

// Create validates the name and creates the container. The name check runs
// before any storage call, so a malformed name never reaches the backend.
func (s *Service) Create(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.store.CreateContainer(ctx, name); err != nil {
		if err == storage.ErrContainerExists {
			return err
		}
		return fmt.Errorf("create container %q: %w", name, err)
	}
	return nil
}
