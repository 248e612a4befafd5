package upload

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

const gcsPublicHost = "https://storage.googleapis.com"

type GCSBackend struct {
	client *storage.Client
	bucket string
}

// NewGCSBackend uses application default credentials.
func NewGCSBackend(ctx context.Context, bucket string) (*GCSBackend, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSBackend{client: client, bucket: bucket}, nil
}

func (b *GCSBackend) Put(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	w := b.client.Bucket(b.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", name, err)
	}
	return PublicURL(b.bucket, name), nil
}

func (b *GCSBackend) Close() error {
	return b.client.Close()
}

func PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/%s/%s", gcsPublicHost, bucket, name)
}
