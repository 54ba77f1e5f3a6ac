package statements

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectInfo describes one statement object in the bucket.
type ObjectInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// EnsureBucket creates the statement bucket if it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info("Statement bucket created", zap.String("bucket", s.bucket))
	return nil
}

// List returns the statement objects currently in the bucket.
func (s *Service) List(ctx context.Context) ([]ObjectInfo, error) {
	objects := []ObjectInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		objects = append(objects, ObjectInfo{Name: obj.Key, Size: obj.Size})
	}
	return objects, nil
}

// Put validates and uploads a statement CSV. The content is parsed first so
// a malformed statement never lands in the bucket; a fresh upload also drops
// any cached dataset for the same object.
func (s *Service) Put(ctx context.Context, objectName string, r io.Reader) (*ObjectInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement %s: %w", objectName, err)
	}

	if _, err := ParseCSV(bytes.NewReader(data), objectName); err != nil {
		return nil, err
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return nil, fmt.Errorf("failed to upload statement %s: %w", objectName, err)
	}

	s.cache.Invalidate(s.bucket, objectName)
	s.logger.Info("Statement uploaded", zap.String("object", objectName), zap.Int("bytes", len(data)))
	return &ObjectInfo{Name: objectName, Size: int64(len(data))}, nil
}

// Remove deletes a statement object and drops its cached dataset.
func (s *Service) Remove(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove statement %s: %w", objectName, err)
	}

	s.cache.Invalidate(s.bucket, objectName)
	s.logger.Info("Statement removed", zap.String("object", objectName))
	return nil
}
