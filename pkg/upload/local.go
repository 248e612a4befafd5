package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const LocalURLPrefix = "/uploads"

// LocalBackend writes into a directory that the HTTP server exposes under /uploads.
type LocalBackend struct {
	Dir string
}

func NewLocalBackend(dir string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalBackend{Dir: dir}, nil
}

func (b *LocalBackend) Put(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	dst, err := os.Create(filepath.Join(b.Dir, filepath.Base(name)))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return LocalURLPrefix + "/" + filepath.Base(name), nil
}
