package storage

import (
	"bytes"
	"context"
	"log/slog"

	"grooming-salon/internal/pkg/config"
	"grooming-salon/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store archives exported files into one bucket.
type S3Store struct {
	client objectPutter
	bucket string
	logger *slog.Logger
}

// NewS3Client builds a client from static keys. A custom endpoint switches to
// path-style addressing for S3-compatible servers.
func NewS3Client(cfg config.ExportConfig) *s3.Client {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func NewS3Store(client objectPutter, bucket string, logger *slog.Logger) *S3Store {
	return &S3Store{client: client, bucket: bucket, logger: logger}
}

func (s *S3Store) Enabled() bool {
	return true
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errs.Wrapf(err, "failed to put s3://%s/%s", s.bucket, key)
	}
	s.logger.InfoContext(ctx, "archived object",
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Int("bytes", len(body)),
	)
	return nil
}

// DisabledStore is used when no export bucket is configured.
type DisabledStore struct{}

func (DisabledStore) Enabled() bool { return false }

func (DisabledStore) Put(context.Context, string, []byte, string) error {
	return errs.New("archive storage is not configured")
}
