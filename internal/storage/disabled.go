package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// disabledStore stands in when S3 is not configured. Uploads fail fast;
// deletes succeed as no-ops so best-effort cleanup paths stay quiet.
type disabledStore struct {
	logger zerolog.Logger
}

// NewDisabled creates an image store for deployments without object storage.
func NewDisabled(logger zerolog.Logger) ImageStore {
	return &disabledStore{
		logger: logger.With().Str("component", "image-store").Logger(),
	}
}

func (s *disabledStore) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	s.logger.Error().Str("file_name", fileName).Msg("image upload rejected, storage disabled")
	return "", fmt.Errorf("image storage is disabled")
}

func (s *disabledStore) Delete(ctx context.Context, publicURL string) error {
	s.logger.Debug().Str("url", publicURL).Msg("image delete skipped, storage disabled")
	return nil
}
