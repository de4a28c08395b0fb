package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/saransh1220/photo-gateway/internal/modules/filestorage/domain"
)

// S3Config holds configuration for S3 or an S3-compatible store
type S3Config struct {
	BucketName     string
	Region         string
	Endpoint       string // Internal endpoint (e.g., minio:9000), empty for AWS
	PublicEndpoint string // Endpoint used in presigned URLs (e.g., localhost:9000)
	UseSSL         bool

	// Credentials overrides the SDK default chain. Leave nil to use the
	// execution identity of the host (env, shared config, instance role).
	Credentials aws.CredentialsProvider
}

// S3Storage implements ObjectStore using AWS S3 or MinIO
type S3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	config        S3Config
}

var _ domain.ObjectStore = (*S3Storage)(nil)

// NewS3Storage creates a new S3 storage implementation
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.Credentials != nil {
		opts = append(opts, config.WithCredentialsProvider(cfg.Credentials))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(normalizeEndpoint(cfg.Endpoint, cfg.UseSSL))
			o.UsePathStyle = true // Required for MinIO
		}
	})

	// Presigned URLs are handed to browsers, so they must use the public endpoint
	signingClient := client
	if cfg.Endpoint != "" && cfg.PublicEndpoint != "" {
		signingClient = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(normalizeEndpoint(cfg.PublicEndpoint, cfg.UseSSL))
			o.UsePathStyle = true
		})
	}

	return &S3Storage{
		client:        client,
		presignClient: s3.NewPresignClient(signingClient),
		config:        cfg,
	}, nil
}

// UploadFile uploads a file to S3 under key
func (s *S3Storage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return storeError("failed to upload to s3", err)
	}
	return nil
}

// ListFiles lists every object under prefix, following continuation tokens
// until the listing is exhausted.
func (s *S3Storage) ListFiles(ctx context.Context, prefix string) ([]domain.File, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.config.BucketName),
		Prefix: aws.String(prefix),
	})

	var files []domain.File
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, storeError("failed to list s3 objects", err)
		}
		for _, obj := range page.Contents {
			files = append(files, domain.File{
				Key:  aws.ToString(obj.Key),
				Size: aws.ToInt64(obj.Size),
			})
		}
	}
	return files, nil
}

// GetPresignedURL generates a presigned URL for viewing a file
func (s *S3Storage) GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	request, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiration
	})
	if err != nil {
		return "", storeError("failed to generate presigned URL", err)
	}

	return request.URL, nil
}

// storeError keeps the S3 error message (e.g. "Access Denied") next to the full cause
func storeError(op string, err error) error {
	se := &domain.StoreError{Op: op, Err: err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		se.Message = apiErr.ErrorMessage()
	}
	return se
}

// normalizeEndpoint adds a scheme to bare host:port endpoints
func normalizeEndpoint(endpoint string, useSSL bool) string {
	if hasHTTPPrefix(endpoint) {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// hasHTTPPrefix checks if a string has http:// or https:// prefix
func hasHTTPPrefix(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
