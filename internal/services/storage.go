package services

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/sacknest/sacknest-backend/internal/config"
)

// Storage uploads and deletes objects in the R2 bucket holding pack files
// and trending images. It is a plain pass-through: no retries, a transient
// failure surfaces to the caller immediately.
type Storage struct {
	client *s3.Client
	bucket string
	public string
}

// NewStorage builds an S3 client pointed at the Cloudflare R2 endpoint.
func NewStorage(ctx context.Context) (*Storage, error) {
	cfg := appConfig.AppConfig
	if !cfg.StorageConfigured() {
		return nil, fmt.Errorf("object storage not configured")
	}

	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID),
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(r2Resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	public := cfg.R2PublicURL
	if public == "" {
		public = fmt.Sprintf("https://%s.r2.dev", cfg.R2BucketName)
	}

	return &Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.R2BucketName,
		public: public,
	}, nil
}

// Upload stores an object under key and returns its public URL.
func (s *Storage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.public, key), nil
}

// Delete removes the object at key.
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
