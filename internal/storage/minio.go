package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// metadata key for the uploader-supplied filename
const metaOriginalName = "Original-Name"

// metadata key for the upload timestamp (RFC 3339)
const metaUploadedAt = "Uploaded-At"

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// Each container maps to one bucket; object metadata travels as S3 user
// metadata, so the storage service stays the single source of truth.
type MinioStorage struct {
	client     *minio.Client
	publicBase string
}

// NewMinioStorage creates a MinIO client and returns a ready-to-use MinioStorage.
// Buckets are created lazily, per container, with a public-read policy.
func NewMinioStorage(endpoint, accessKey, secretKey, publicBase string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinioStorage{
		client:     client,
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

// ListContainers returns every bucket ordered by name.
func (s *MinioStorage) ListContainers(ctx context.Context) ([]ContainerInfo, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	containers := make([]ContainerInfo, 0, len(buckets))
	for _, b := range buckets {
		containers = append(containers, ContainerInfo{
			Name:         b.Name,
			LastModified: b.CreationDate,
		})
	}
	sort.Slice(containers, func(i, j int) bool { return containers[i].Name < containers[j].Name })
	return containers, nil
}

// CreateContainer makes a new bucket with a public-read policy.
func (s *MinioStorage) CreateContainer(ctx context.Context, name string) error {
	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if exists {
		return ErrContainerExists
	}

	if err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{}); err != nil {
		// lost a race with a concurrent create
		if minio.ToErrorResponse(err).Code == "BucketAlreadyOwnedByYou" {
			return ErrContainerExists
		}
		return fmt.Errorf("create bucket %q: %w", name, err)
	}

	if err := s.client.SetBucketPolicy(ctx, name, publicReadPolicy(name)); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}
	log.Printf("storage: created bucket %q", name)
	return nil
}

// EnsureContainer creates the bucket if absent; an existing bucket is left untouched.
func (s *MinioStorage) EnsureContainer(ctx context.Context, name string) error {
	err := s.CreateContainer(ctx, name)
	if err == ErrContainerExists {
		return nil
	}
	return err
}

// ListObjects returns the bucket's objects with their user metadata, ordered by key.
func (s *MinioStorage) ListObjects(ctx context.Context, container string) ([]ObjectInfo, error) {
	objects := []ObjectInfo{}
	for obj := range s.client.ListObjects(ctx, container, minio.ListObjectsOptions{WithMetadata: true}) {
		if obj.Err != nil {
			if minio.ToErrorResponse(obj.Err).Code == "NoSuchBucket" {
				return nil, ErrContainerNotFound
			}
			return nil, fmt.Errorf("list objects in %q: %w", container, obj.Err)
		}

		originalName := userMetaValue(obj.UserMetadata, metaOriginalName)
		if originalName == "" {
			originalName = obj.Key
		}
		contentType := obj.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		objects = append(objects, ObjectInfo{
			Key:          obj.Key,
			OriginalName: originalName,
			ContentType:  contentType,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          s.PublicURL(container, obj.Key),
		})
	}
	return objects, nil
}

// PutObject streams reader to the bucket under key, tagging the object with
// the original filename and upload timestamp.
func (s *MinioStorage) PutObject(ctx context.Context, container, key string, reader io.Reader, size int64, contentType, originalName string) (ObjectInfo, error) {
	info, err := s.client.PutObject(ctx, container, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			metaOriginalName: originalName,
			metaUploadedAt:   time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("put object %q: %w", key, err)
	}

	return ObjectInfo{
		Key:          key,
		OriginalName: originalName,
		ContentType:  contentType,
		Size:         info.Size,
		LastModified: time.Now().UTC(),
		URL:          s.PublicURL(container, key),
	}, nil
}

// RemoveObject deletes the object at key. S3 deletes are idempotent, so a
// stat comes first to distinguish "deleted" from "never existed".
func (s *MinioStorage) RemoveObject(ctx context.Context, container, key string) error {
	_, err := s.client.StatObject(ctx, container, key, minio.StatObjectOptions{})
	if err != nil {
		switch minio.ToErrorResponse(err).Code {
		case "NoSuchKey":
			return ErrObjectNotFound
		case "NoSuchBucket":
			return ErrContainerNotFound
		}
		return fmt.Errorf("stat object %q: %w", key, err)
	}

	if err := s.client.RemoveObject(ctx, container, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the browser-accessible URL for the given object.
// For local MinIO: "http://localhost:9000/my-docs/abc123-report.pdf"
func (s *MinioStorage) PublicURL(container, key string) string {
	return s.publicBase + "/" + container + "/" + key
}

// userMetaValue reads a user metadata value regardless of whether the backend
// returned it with the X-Amz-Meta- prefix (listings) or stripped (stat).
func userMetaValue(md map[string]string, key string) string {
	if md == nil {
		return ""
	}
	if v, ok := md[http.CanonicalHeaderKey("X-Amz-Meta-"+key)]; ok {
		return v
	}
	return md[http.CanonicalHeaderKey(key)]
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
