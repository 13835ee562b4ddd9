package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/pkg/config"
)

// MinIOClient stores exported documents in an S3-compatible bucket
type MinIOClient struct {
	client *minio.Client
	bucket string
	expiry time.Duration
	logger *zap.Logger

	// maxElapsed bounds the upload retries
	maxElapsed time.Duration
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:     minioClient,
		bucket:     cfg.BucketName,
		expiry:     cfg.URLExpiry,
		logger:     logger,
		maxElapsed: 30 * time.Second,
	}

	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket if it doesn't exist; exports stay private
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		m.logger.Info("Created export bucket", zap.String("bucket", m.bucket))
	}
	return nil
}

// Upload stores content under objectName, retrying transient failures with exponential backoff
func (m *MinIOClient) Upload(ctx context.Context, objectName string, content []byte, contentType string) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 250 * time.Millisecond
	policy.MaxElapsedTime = m.maxElapsed

	attempt := 0
	op := func() error {
		attempt++
		_, err := m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			m.logger.Warn("Archive upload failed",
				zap.String("object", objectName),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
		}
		return err
	}

	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}
	return nil
}

// PresignedURL returns a time-limited download link for an object
func (m *MinIOClient) PresignedURL(ctx context.Context, objectName string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, m.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}
