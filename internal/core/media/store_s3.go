package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/asuclub/asu-api/internal/platform/config"
)

// S3BlobStore implements [BlobStore] against any S3-compatible endpoint
// (AWS, MinIO in local dev).
type S3BlobStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3BlobStore builds the S3 client from application config.
//
// Static credentials are used when provided; otherwise the default AWS
// credential chain (IAM role, env vars) applies.
func NewS3BlobStore(context context.Context, cfg *config.Config) (*S3BlobStore, error) {
	var (
		awsConfig aws.Config
		err       error
	)

	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		awsConfig, err = awsconfig.LoadDefaultConfig(context,
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKey,
				cfg.S3SecretKey,
				"",
			)),
		)
	} else {
		awsConfig, err = awsconfig.LoadDefaultConfig(context,
			awsconfig.WithRegion(cfg.S3Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("media_s3_config_failed: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(options *s3.Options) {
		if cfg.S3Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		if cfg.S3UsePathStyle {
			options.UsePathStyle = true
		}
	})

	publicURL := strings.TrimSuffix(cfg.S3PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3BlobStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}, nil
}

func (store *S3BlobStore) Put(context context.Context, key, contentType string, content []byte) error {
	_, err := store.client.PutObject(context, &s3.PutObjectInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("media_s3_put_failed: %w", err)
	}

	return nil
}

func (store *S3BlobStore) Delete(context context.Context, key string) error {
	_, err := store.client.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("media_s3_delete_failed: %w", err)
	}

	return nil
}

func (store *S3BlobStore) PublicURL(key string) string {
	return store.publicURL + "/" + key
}
