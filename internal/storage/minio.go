// internal/storage/minio.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"jobapp-back/internal/apperrors"
	"jobapp-back/pkg/retry"
)

// MinIOConfig holds the connection settings for an object-store backend.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinIO stores objects in a MinIO/S3 bucket using the same key layout as
// the disk-backed store.
type MinIO struct {
	client *minio.Client
	bucket string
}

// NewMinIO connects to the object store and ensures the bucket exists.
func NewMinIO(ctx context.Context, cfg MinIOConfig) (*MinIO, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIO{client: client, bucket: cfg.Bucket}, nil
}

// object keys always use forward slashes regardless of host OS
func objectKey(parts ...string) (string, error) {
	key := path.Join(parts...)
	if strings.HasPrefix(key, "..") || path.IsAbs(key) {
		return "", apperrors.New(apperrors.KindPathTraversal, "path escapes the storage root")
	}
	return key, nil
}

func (m *MinIO) Save(ctx context.Context, data []byte, originalName, contentType, scope string) (SavedFile, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	key, err := objectKey(NamespaceUploads, scope, name)
	if err != nil {
		return SavedFile{}, err
	}
	return m.put(ctx, key, name, data, contentType)
}

func (m *MinIO) SaveGenerated(ctx context.Context, data []byte, fileName string) (SavedFile, error) {
	key, err := objectKey(NamespaceGenerated, fileName)
	if err != nil {
		return SavedFile{}, err
	}
	return m.put(ctx, key, fileName, data, "application/pdf")
}

func (m *MinIO) SaveTemp(ctx context.Context, data []byte, originalName, contentType string) (SavedFile, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	key, err := objectKey(NamespaceTemp, name)
	if err != nil {
		return SavedFile{}, err
	}
	return m.put(ctx, key, name, data, contentType)
}

func (m *MinIO) put(ctx context.Context, key, name string, data []byte, contentType string) (SavedFile, error) {
	// Transient network faults are retried; classified errors are not.
	err := retry.Do(ctx, 3, 200*time.Millisecond, func(ctx context.Context) error {
		_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: contentType})
		return err
	})
	if err != nil {
		return SavedFile{}, mapMinIOError(err)
	}
	return SavedFile{RelPath: key, FileName: name, Size: int64(len(data))}, nil
}

func (m *MinIO) Get(ctx context.Context, relPath string) ([]byte, error) {
	key, err := objectKey(relPath)
	if err != nil {
		return nil, err
	}
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinIOError(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapMinIOError(err)
	}
	return data, nil
}

func (m *MinIO) Delete(ctx context.Context, relPath string) error {
	key, err := objectKey(relPath)
	if err != nil {
		return err
	}
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return mapMinIOError(err)
	}
	return nil
}

func (m *MinIO) Metadata(ctx context.Context, relPath string) (FileInfo, error) {
	key, err := objectKey(relPath)
	if err != nil {
		return FileInfo{}, err
	}
	stat, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return FileInfo{}, mapMinIOError(err)
	}
	return FileInfo{
		Size:       stat.Size,
		CreatedAt:  stat.LastModified,
		ModifiedAt: stat.LastModified,
	}, nil
}

// mapMinIOError translates a MinIO error response into the taxonomy.
func mapMinIOError(err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchObject":
		return apperrors.Wrap(apperrors.KindFSNotFound, "file not found", err)
	case "AccessDenied":
		return apperrors.Wrap(apperrors.KindFSPermission, "permission denied", err)
	case "QuotaExceeded":
		return apperrors.Wrap(apperrors.KindFSNoSpace, "storage quota exceeded", err)
	default:
		return apperrors.Internal(err)
	}
}
