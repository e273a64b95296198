// Package storage owns project image files. The project service calls it
// explicitly at create/update/delete boundaries; cleanup is best effort and
// never transactional with the owning record.
package storage

import (
	"context"
	"io"
)

// ImageStore persists uploaded project images and hands back relative paths
// under the projects/ prefix. Stored files are served by the surrounding
// layer at /storage/{path}.
type ImageStore interface {
	// Store writes the image content and returns the relative path the
	// record should reference. ext includes the leading dot.
	Store(ctx context.Context, ext string, content io.Reader) (string, error)

	// Delete removes a stored image by its relative path.
	Delete(ctx context.Context, path string) error
}
