// Package storage stores uploaded blobs and returns reference URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	appconfig "linkup/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// BlobStore persists an opaque blob and returns a reference URL. The caller
// never inspects blob content; only the returned reference is kept.
type BlobStore interface {
	Store(ctx context.Context, data []byte, contentType string) (string, error)
}

// S3Store is a BlobStore backed by an S3-compatible endpoint (AWS or MinIO).
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store builds an S3 client from application config. Static credentials
// cover the MinIO case; BaseEndpoint is left unset for real AWS.
func NewS3Store(ctx context.Context, cfg *appconfig.Config) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}, nil
}

// objectKey shards uploads by date so buckets stay listable.
func objectKey(contentType string) string {
	ext := ""
	if i := strings.LastIndex(contentType, "/"); i >= 0 && i < len(contentType)-1 {
		ext = "." + contentType[i+1:]
	}
	d := time.Now().UTC()
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}

func (s *S3Store) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	key := objectKey(contentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return s.publicURL + "/" + s.bucket + "/" + key, nil
}
