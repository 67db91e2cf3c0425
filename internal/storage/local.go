package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// Allowed MIME types, matching the public upload contract.
var (
	imageTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/jpg":  {},
		"image/png":  {},
		"image/gif":  {},
		"image/webp": {},
	}
	documentTypes = map[string]struct{}{
		"application/pdf":    {},
		"application/msword": {},
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
		"application/vnd.ms-excel":                                                  {},
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
		"application/vnd.ms-powerpoint":                                             {},
		"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
		"text/plain": {},
	}
)

var unsafeChars = regexp.MustCompile(`[^a-z0-9-]`)

// StoredFile describes a file written to local disk.
type StoredFile struct {
	OriginalName string    `json:"originalName"`
	Filename     string    `json:"filename"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimetype"`
	URL          string    `json:"url"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// LocalStore persists uploaded files on local disk, served statically at /uploads.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *LocalStore) Dir() string {
	return s.dir
}

// SaveImage validates and stores a gallery/blog image.
func (s *LocalStore) SaveImage(file *multipart.FileHeader, maxBytes int64) (*StoredFile, error) {
	return s.save(file, imageTypes, maxBytes, "only JPEG, PNG, GIF, and WebP images are allowed")
}

// SaveDocument validates and stores a bulletin or resource document.
func (s *LocalStore) SaveDocument(file *multipart.FileHeader, maxBytes int64) (*StoredFile, error) {
	return s.save(file, documentTypes, maxBytes, "only PDF, Word, Excel, PowerPoint, and text files are allowed")
}

func (s *LocalStore) save(file *multipart.FileHeader, allowed map[string]struct{}, maxBytes int64, typeMsg string) (*StoredFile, error) {
	mimeType := file.Header.Get("Content-Type")
	if _, ok := allowed[mimeType]; !ok {
		return nil, apperrors.NewValidationError("invalid file type", map[string]any{"reason": typeMsg})
	}
	if file.Size > maxBytes {
		return nil, apperrors.NewValidationError("file too large", map[string]any{
			"max_bytes": maxBytes,
		})
	}

	filename := uniqueName(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return nil, apperrors.NewInternalError(err)
	}

	return &StoredFile{
		OriginalName: file.Filename,
		Filename:     filename,
		Size:         file.Size,
		MimeType:     mimeType,
		URL:          "/uploads/" + filename,
		UploadedAt:   time.Now(),
	}, nil
}

// Delete removes a stored file by name. Names containing path separators
// are rejected so callers cannot escape the upload directory.
func (s *LocalStore) Delete(filename string) error {
	if filename == "" {
		return apperrors.NewValidationError("filename is required", nil)
	}
	if filepath.Base(filename) != filename || strings.Contains(filename, "..") {
		return apperrors.NewValidationError("invalid filename", nil)
	}

	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return apperrors.NewNotFound("file", map[string]any{"filename": filename})
		}
		return apperrors.NewInternalError(err)
	}
	if err := os.Remove(path); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// DeleteByURL removes a stored file referenced by its /uploads URL.
// Non-upload URLs (external links) are ignored.
func (s *LocalStore) DeleteByURL(url string) error {
	const prefix = "/uploads/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	return s.Delete(strings.TrimPrefix(url, prefix))
}

// uniqueName builds a collision-free filename from the original:
// lowercased base with unsafe characters stripped plus a millisecond timestamp.
func uniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.ToLower(strings.ReplaceAll(base, " ", "-"))
	base = unsafeChars.ReplaceAllString(base, "")
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s-%d%s", base, time.Now().UnixMilli(), ext)
}
