package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/logger"
)

var (
	ErrNotAnImage   = errors.New("file must be an image")
	ErrFileTooLarge = errors.New("file too large")
)

const (
	hostImagesDir    = "hosts"
	defaultImageExt  = "jpg"
	maxImageExtLen   = 10
	uploadsURLPrefix = "/uploads"
)

// UploadService stores uploaded files on local disk.
type UploadService struct {
	dir      string
	maxBytes int64
}

// NewUploadService creates an UploadService rooted at dir accepting files up to maxBytes.
func NewUploadService(dir string, maxBytes int64) *UploadService {
	return &UploadService{dir: dir, maxBytes: maxBytes}
}

// MaxBytes returns the largest accepted upload.
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// SaveHostImage writes an image under a fresh name and returns its public URL path.
// A partially written file is removed on failure.
func (s *UploadService) SaveHostImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return "", ErrNotAnImage
	}

	dir := filepath.Join(s.dir, hostImagesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s.%s", uuid.NewString(), imageExt(filename))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		err = fmt.Errorf("write upload file: %w", err)
	case closeErr != nil:
		err = fmt.Errorf("close upload file: %w", closeErr)
	case n > s.maxBytes:
		err = ErrFileTooLarge
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.Log.Errorw("failed to remove partial upload", "path", path, "err", rmErr)
		}
		return "", err
	}

	logger.Log.Infow("host image stored", "file", name, "bytes", n)
	return fmt.Sprintf("%s/%s/%s", uploadsURLPrefix, hostImagesDir, name), nil
}

// imageExt returns the lower-case extension of filename, or jpg when it has
// none or it is not plain alphanumeric.
func imageExt(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" || len(ext) > maxImageExtLen {
		return defaultImageExt
	}
	for _, c := range ext {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return defaultImageExt
		}
	}
	return ext
}
