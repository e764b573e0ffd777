// Package storage keeps uploaded photos on a filesystem and serves them under a public prefix.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "quemjoga-backend/internal/errors"
	"quemjoga-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// PublicPrefix is the URL path under which stored files are served
const PublicPrefix = "/uploads"

// ReceiptsDir holds payment receipts, which may also be PDFs
const ReceiptsDir = "receipts"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func extensionAllowed(subdir, ext string) bool {
	if allowedExtensions[ext] {
		return true
	}
	return ext == ".pdf" && subdir == ReceiptsDir
}

// Upload describes an incoming file
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// PhotoStore writes image uploads below a root directory
type PhotoStore struct {
	fs      afero.Fs
	maxSize int64
}

// NewPhotoStore creates a photo store rooted at dir on the OS filesystem
func NewPhotoStore(dir string, maxSize int64) *PhotoStore {
	return NewPhotoStoreWithFs(afero.NewBasePathFs(afero.NewOsFs(), dir), maxSize)
}

// NewPhotoStoreWithFs creates a photo store on an arbitrary filesystem
func NewPhotoStoreWithFs(fs afero.Fs, maxSize int64) *PhotoStore {
	return &PhotoStore{fs: fs, maxSize: maxSize}
}

// Fs exposes the underlying filesystem so the HTTP layer can serve stored files
func (s *PhotoStore) Fs() afero.Fs {
	return s.fs
}

// Save validates and writes an upload under subdir, returning its public URL
func (s *PhotoStore) Save(ctx context.Context, subdir string, upload Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !extensionAllowed(subdir, ext) {
		return "", apperrors.ErrUnsupportedFileType
	}
	if upload.Size > s.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	if err := s.fs.MkdirAll(subdir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := path.Join(subdir, uuid.New().String()+ext)
	file, err := s.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	// The declared size can lie, so cap what is actually copied.
	written, err := io.Copy(file, io.LimitReader(upload.Content, s.maxSize+1))
	closeErr := file.Close()
	if err == nil && written > s.maxSize {
		err = apperrors.ErrFileTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(name)
		if apperrors.IsValidation(err) {
			return "", err
		}
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"path": name,
		"size": written,
	}).Debug("stored upload")

	return PublicPrefix + "/" + name, nil
}

// Delete removes a file previously returned by Save. Missing files are ignored.
func (s *PhotoStore) Delete(ctx context.Context, url string) error {
	name, ok := s.pathFromURL(url)
	if !ok {
		return nil
	}
	if err := s.fs.Remove(name); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	logger.WithContext(ctx).WithField("path", name).Debug("deleted upload")
	return nil
}

// Check verifies the store is writable by creating and removing a probe file
func (s *PhotoStore) Check(_ context.Context) error {
	probe := ".probe-" + uuid.New().String()
	if err := afero.WriteFile(s.fs, probe, nil, 0o644); err != nil {
		return fmt.Errorf("upload storage is not writable: %w", err)
	}
	return s.fs.Remove(probe)
}

func (s *PhotoStore) pathFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, PublicPrefix+"/") {
		return "", false
	}
	name := path.Clean(strings.TrimPrefix(url, PublicPrefix+"/"))
	if name == "." || strings.HasPrefix(name, "..") {
		return "", false
	}
	return name, true
}
