// Package storage handles uploaded images. Uploads are content-addressed by
// a generated id; the caller keeps only the returned URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore stores uploaded binary content and returns a serving URL.
type BlobStore interface {
	Put(ctx context.Context, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// UploadError reports a failed upload with the original filename attached.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %q failed: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// DiskStore writes blobs under a local directory and serves them from a
// configured URL prefix.
type DiskStore struct {
	dir       string
	urlPrefix string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir, urlPrefix string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Put stores the content under a fresh id, keeping the original extension.
func (s *DiskStore) Put(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", &UploadError{Filename: filename, Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", &UploadError{Filename: filename, Err: err}
	}

	return s.urlPrefix + "/" + name, nil
}

// Delete removes a blob by its serving URL. Unknown URLs are ignored.
func (s *DiskStore) Delete(ctx context.Context, url string) error {
	name := filepath.Base(url)
	if name == "." || name == "/" || strings.Contains(name, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", name, err)
	}
	return nil
}
