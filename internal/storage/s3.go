package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	appconfig "github.com/gosm1/pureperfumes/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// s3Store implements ImageStore on top of an S3 bucket with public objects.
type s3Store struct {
	client        *s3.Client
	bucket        string
	keyPrefix     string
	publicBaseURL string
	logger        zerolog.Logger
}

// NewS3Store creates an S3-backed image store.
func NewS3Store(ctx context.Context, cfg appconfig.StorageConfig, logger zerolog.Logger) (ImageStore, error) {
	logger = logger.With().Str("component", "s3-image-store").Logger()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	logger.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Str("key_prefix", cfg.KeyPrefix).
		Msg("S3 image store initialised")

	return &s3Store{
		client:        s3.NewFromConfig(awsCfg),
		bucket:        cfg.Bucket,
		keyPrefix:     cfg.KeyPrefix,
		publicBaseURL: strings.TrimRight(baseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload stores the image under a generated key and returns its public URL.
func (s *s3Store) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	key := s.keyPrefix + uuid.NewString() + strings.ToLower(path.Ext(fileName))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to upload image")
		return "", fmt.Errorf("failed to upload image (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	publicURL := s.publicBaseURL + "/" + key

	s.logger.Info().
		Str("key", key).
		Str("url", publicURL).
		Msg("image uploaded successfully")

	return publicURL, nil
}

// Delete removes the object behind a previously returned public URL.
func (s *s3Store) Delete(ctx context.Context, publicURL string) error {
	key, err := KeyFromURL(publicURL, s.bucket)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to delete image")
		return fmt.Errorf("failed to delete image (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Info().Str("key", key).Msg("image deleted successfully")

	return nil
}

// KeyFromURL extracts the object key from a public URL previously returned
// by Upload. Both virtual-hosted URLs (bucket in the host) and path-style
// URLs (bucket as the first path segment) are accepted.
func KeyFromURL(publicURL, bucket string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("invalid image URL %q: %w", publicURL, err)
	}

	key := strings.TrimPrefix(u.Path, "/")
	key = strings.TrimPrefix(key, bucket+"/")
	if key == "" {
		return "", fmt.Errorf("image URL %q has no object key", publicURL)
	}

	return key, nil
}
