package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

// MinIOService implements AssetHost on a single public-read bucket.
type MinIOService struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinIOService creates a new MinIO asset host.
func NewMinIOService(cfg Config) (*MinIOService, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	baseURL := cfg.GetAssetPublicBaseURL()
	if baseURL == "" {
		scheme := "http"
		if cfg.GetMinIOUseSSL() {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.GetMinIOEndpoint(), cfg.GetMinIOBucket())
	}

	return &MinIOService{
		client:        client,
		bucket:        cfg.GetMinIOBucket(),
		publicBaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Bucket returns the bucket assets are written to.
func (s *MinIOService) Bucket() string {
	return s.bucket
}

// EnsureBucketExists creates the bucket if it doesn't exist and makes its
// objects publicly readable.
func (s *MinIOService) EnsureBucketExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	if err := s.client.SetBucketPolicy(ctx, s.bucket, fmt.Sprintf(publicReadPolicy, s.bucket)); err != nil {
		return fmt.Errorf("failed to set bucket policy on %s: %w", s.bucket, err)
	}
	return nil
}

// Upload stores the file under folder with a collision-free key.
func (s *MinIOService) Upload(ctx context.Context, folder string, file Upload) (Asset, error) {
	fileKey := objectKey(folder, file.FileName)

	_, err := s.client.PutObject(ctx, s.bucket, fileKey, file.Reader, file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return Asset{}, fmt.Errorf("failed to upload file %s: %w", fileKey, err)
	}

	return Asset{URL: s.publicBaseURL + "/" + fileKey, PublicID: fileKey}, nil
}

// Delete removes an object from the bucket.
func (s *MinIOService) Delete(ctx context.Context, publicID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", publicID, err)
	}
	return nil
}

// objectKey builds "<folder>/<base>_<8 hex><ext>" from a client file name.
func objectKey(folder, fileName string) string {
	fileName = path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	ext := strings.ToLower(path.Ext(fileName))
	baseName := strings.TrimSuffix(fileName, path.Ext(fileName))
	if baseName == "" || baseName == "." || baseName == "/" {
		baseName = "image"
	}
	return path.Join(folder, fmt.Sprintf("%s_%s%s", baseName, uuid.New().String()[:8], ext))
}
