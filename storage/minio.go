package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"time"

	"CarePoint/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BlobStore wraps the MinIO client for report files and profile pictures.
// Object keys follow the fixed layouts reports/{patientId}/{fileName} and
// profile_pictures/{userId}.
type BlobStore struct {
	client *minio.Client
	bucket string
}

const presignedURLExpiry = 7 * 24 * time.Hour

// NewBlobStore connects to MinIO and makes sure the configured bucket exists.
func NewBlobStore(ctx context.Context, cfg *config.AppConfig) (*BlobStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", cfg.MinioBucket, err)
		}
	}

	return &BlobStore{client: client, bucket: cfg.MinioBucket}, nil
}

// UploadReport stores a diagnostic report file and returns its object key.
func (s *BlobStore) UploadReport(ctx context.Context, patientID int64, file io.Reader, header *multipart.FileHeader) (string, error) {
	objectKey := fmt.Sprintf("reports/%d/%s", patientID, header.Filename)
	return s.put(ctx, objectKey, file, header)
}

// UploadProfilePicture stores a user's profile picture and returns its object key.
func (s *BlobStore) UploadProfilePicture(ctx context.Context, userID int64, file io.Reader, header *multipart.FileHeader) (string, error) {
	objectKey := fmt.Sprintf("profile_pictures/%d", userID)
	return s.put(ctx, objectKey, file, header)
}

func (s *BlobStore) put(ctx context.Context, objectKey string, file io.Reader, header *multipart.FileHeader) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, file, header.Size, minio.PutObjectOptions{
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object %q: %w", objectKey, err)
	}
	return objectKey, nil
}

// RetrievableURL returns a presigned GET URL for a stored object.
func (s *BlobStore) RetrievableURL(ctx context.Context, objectKey string) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, presignedURLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object %q: %w", objectKey, err)
	}
	return presigned.String(), nil
}

// Remove deletes a stored object.
func (s *BlobStore) Remove(ctx context.Context, objectKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %q: %w", objectKey, err)
	}
	return nil
}
