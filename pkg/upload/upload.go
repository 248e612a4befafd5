package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/logify"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Backend

const MaxImageSize = 10 << 20

// Backend persists an object and returns the URL it can be fetched from.
type Backend interface {
	Put(ctx context.Context, name string, contentType string, r io.Reader) (string, error)
}

type Uploader struct {
	Backend Backend
	// Now names objects; nil means time.Now.
	Now func() time.Time
}

func NewUploader(backend Backend) *Uploader {
	return &Uploader{Backend: backend}
}

func (u *Uploader) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// ObjectName is <unix-millis>-<8 hex><extension>. The extension comes from the sniffed
// content type, never from the client filename, so static hosting serves images as images.
func ObjectName(extension string, now time.Time) string {
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString()[:8], strings.ToLower(extension))
}

// SaveImage sniffs the content, rejects anything that is not an image and hands it to the backend.
func (u *Uploader) SaveImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	logger := common.GetLoggerWith(common.LoggerNameUpload)

	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return "", logify.ErrNoFile
	}
	if len(data) > MaxImageSize {
		return "", logify.ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		logger.Info("Upload rejected", zap.String("filename", filename), zap.String("mime", mtype.String()))
		return "", logify.ErrUnsupportedMedia
	}

	name := ObjectName(mtype.Extension(), u.now())
	url, err := u.Backend.Put(ctx, name, mtype.String(), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	logger.Info("Image uploaded", zap.String("object", name), zap.String("url", url), zap.Int("size", len(data)))
	return url, nil
}
