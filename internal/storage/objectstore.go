// internal/storage/objectstore.go
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStorage is what the deletion orchestrator and upload paths need from
// the blob store: existence probe, removal, and upload. Disabled deployments
// get a no-op implementation so local-disk installs run without credentials.
type ObjectStorage interface {
	Exists(ctx context.Context, objectKey string) (bool, error)
	Remove(ctx context.Context, objectKey string) error
	Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
}

// MinioStorage talks to any S3-compatible endpoint.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewMinioStorage(opts MinioOptions) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &MinioStorage{client: client, bucket: opts.Bucket}, nil
}

// EnsureBucket creates the bucket when it does not exist yet. Called once at
// startup, not per request.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket: %w", err)
	}
	slog.Info("Created storage bucket", "bucket", s.bucket)
	return nil
}

func (s *MinioStorage) Exists(ctx context.Context, objectKey string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, objectKey, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return false, nil
		}
		return false, fmt.Errorf("checking object %q: %w", objectKey, err)
	}
	return true, nil
}

func (s *MinioStorage) Remove(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("removing object %q: %w", objectKey, err)
	}
	return nil
}

func (s *MinioStorage) Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("uploading object %q: %w", objectKey, err)
	}
	return nil
}

// DisabledStorage reports every object as absent and succeeds silently on
// writes, which makes the deletion path skip the remote step entirely.
type DisabledStorage struct{}

func (DisabledStorage) Exists(ctx context.Context, objectKey string) (bool, error) { return false, nil }

func (DisabledStorage) Remove(ctx context.Context, objectKey string) error { return nil }

func (DisabledStorage) Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	return nil
}
