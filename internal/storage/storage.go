package storage

import (
	"context"
	"io"
)

// ImageStore stores product images and exposes them by public URL. The rest
// of the system never sees raw storage keys; deletion takes the public URL a
// previous upload returned.
type ImageStore interface {
	// Upload stores the image under a generated unique key and returns its
	// public URL.
	Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error)

	// Delete removes the object behind a previously returned public URL.
	Delete(ctx context.Context, publicURL string) error
}
