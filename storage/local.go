package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const projectsPrefix = "projects"

// Local stores images on the local filesystem under a base directory. The
// base directory maps to the /storage URL prefix served by the outer layer.
type Local struct {
	baseDir string
}

func NewLocal(baseDir string) *Local {
	return &Local{baseDir: baseDir}
}

func (s *Local) Store(ctx context.Context, ext string, content io.Reader) (string, error) {
	relPath := path.Join(projectsPrefix, uuid.New().String()+ext)

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return relPath, nil
}

func (s *Local) Delete(ctx context.Context, relPath string) error {
	// Refuse paths escaping the base directory.
	cleaned := path.Clean(relPath)
	if strings.HasPrefix(cleaned, "..") || path.IsAbs(cleaned) {
		return fmt.Errorf("invalid image path %q", relPath)
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(cleaned))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	return nil
}
