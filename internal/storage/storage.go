// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO, AWS S3, ...).
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrContainerExists is returned when creating a container that already exists.
var ErrContainerExists = errors.New("container already exists")

// ErrContainerNotFound is returned when operating on a container that does not exist.
var ErrContainerNotFound = errors.New("container not found")

// ErrObjectNotFound is returned when the requested object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ContainerInfo describes a single container.
type ContainerInfo struct {
	Name         string
	LastModified time.Time
}

// ObjectInfo describes a stored object and its metadata.
type ObjectInfo struct {
	Key          string
	OriginalName string
	ContentType  string
	Size         int64
	LastModified time.Time
	URL          string
}

// Storage is the interface for container and object operations.
type Storage interface {
	// ListContainers returns all containers ordered by name.
	ListContainers(ctx context.Context) ([]ContainerInfo, error)
	// CreateContainer creates a new public-read container.
	// Returns ErrContainerExists if the name is taken.
	CreateContainer(ctx context.Context, name string) error
	// EnsureContainer creates the container if it does not exist yet.
	EnsureContainer(ctx context.Context, name string) error
	// ListObjects returns the container's objects ordered by key.
	// Returns ErrContainerNotFound if the container does not exist.
	ListObjects(ctx context.Context, container string) ([]ObjectInfo, error)
	// PutObject streams data to the store under key. size must be the exact
	// byte count. originalName is kept as object metadata.
	PutObject(ctx context.Context, container, key string, reader io.Reader, size int64, contentType, originalName string) (ObjectInfo, error)
	// RemoveObject deletes the object identified by key.
	// Returns ErrObjectNotFound if the key does not exist.
	RemoveObject(ctx context.Context, container, key string) error
	// PublicURL constructs the browser-accessible URL for an object.
	PublicURL(container, key string) string
}
