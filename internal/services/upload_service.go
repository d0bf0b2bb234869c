package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/arya020/FormBuilder/internal/storage"
)

// MaxUploadSize caps header and question images at 5 MB.
const MaxUploadSize = 5 << 20

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadService stores form and question images.
type UploadService interface {
	UploadImage(ctx context.Context, filename string, size int64, content io.Reader) (string, error)
	DeleteImage(ctx context.Context, url string) error
}

type uploadService struct {
	store  storage.BlobStore
	logger *slog.Logger
}

func NewUploadService(store storage.BlobStore, logger *slog.Logger) UploadService {
	return &uploadService{
		store:  store,
		logger: logger,
	}
}

// UploadImage validates size and extension, then stores the content and
// returns its serving URL.
func (s *uploadService) UploadImage(ctx context.Context, filename string, size int64, content io.Reader) (string, error) {
	if size > MaxUploadSize {
		return "", ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", ErrUploadInvalidType
	}

	url, err := s.store.Put(ctx, filename, io.LimitReader(content, MaxUploadSize))
	if err != nil {
		return "", err
	}

	s.logger.Info("Image uploaded", "filename", filename, "url", url)
	return url, nil
}

func (s *uploadService) DeleteImage(ctx context.Context, url string) error {
	return s.store.Delete(ctx, url)
}
