package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/PerfectPlumbing/plumbing-ops/internal/config"
)

// FileStore keeps rendered document snapshots in an S3 bucket. A nil
// *FileStore is valid and means snapshot storage is disabled.
type FileStore struct {
	client *s3.Client
	bucket string
}

func NewFileStore(cfg *config.Config) *FileStore {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// Custom endpoint supports minio-style deployments.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &FileStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

// PutDocument stores body under a key derived from the document id and
// returns that key.
func (f *FileStore) PutDocument(ctx context.Context, documentID string, body []byte) (string, error) {
	if f == nil {
		return "", fmt.Errorf("file store disabled")
	}

	key := fmt.Sprintf("documents/%s.txt", documentID)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}
