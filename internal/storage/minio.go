package storage

import (
	"context"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dfgiraldo/pqr-pipeline/internal/common"
)

// MinioStore implements ObjectStore against any S3-compatible endpoint.
type MinioStore struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewMinioStore connects, and creates the bucket when it does not exist yet.
func NewMinioStore(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (*MinioStore, error) {
	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Error("failed to create object storage client", "endpoint", cfg.Endpoint, "error", err)
		return nil, common.WrapError(err, "object storage client")
	}

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		logger.Error("failed to check bucket", "bucket", cfg.Bucket, "error", err)
		return nil, common.WrapError(err, "bucket check")
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Error("failed to create bucket", "bucket", cfg.Bucket, "error", err)
			return nil, common.WrapError(err, "bucket create")
		}
		logger.Info("created bucket", "bucket", cfg.Bucket)
	}

	return &MinioStore{client: cli, bucket: cfg.Bucket, logger: logger}, nil
}

func (s *MinioStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return false, nil
		}
		s.logger.Error("stat object failed", "key", key, "error", err)
		return false, common.WrapError(err, "stat object")
	}
	return true, nil
}

func (s *MinioStore) PutFile(ctx context.Context, key, path, contentType string, metadata map[string]string) error {
	_, err := s.client.FPutObject(ctx, s.bucket, key, path, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		s.logger.Error("put object failed", "key", key, "path", path, "error", err)
		return common.WrapError(err, "put object")
	}
	return nil
}
