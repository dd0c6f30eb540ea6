package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadSize is the largest accepted upload, 5 MiB.
const MaxUploadSize = 5 * 1024 * 1024

// Sentinel errors for upload validation failures.
var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService validates incoming image files and writes them to a local
// directory served as static content under /uploads.
type UploadService struct {
	dir string
}

// NewUploadService creates a new UploadService writing into dir.
func NewUploadService(dir string) *UploadService {
	return &UploadService{
		dir: dir,
	}
}

// UploadResult describes a stored file: its public URL path and the generated
// filename on disk.
type UploadResult struct {
	ImageURL string `json:"imageUrl"`
	Filename string `json:"filename"`
}

// Store validates the declared content type and size, then writes the file
// under a generated name and returns its public URL. The timestamp plus
// random suffix makes collisions between concurrent uploads practically
// impossible without any coordination. Nothing is cleaned up on a partial
// write.
func (s *UploadService) Store(originalName, contentType string, size int64, src io.Reader) (*UploadResult, error) {
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("content type %q: %w", contentType, ErrInvalidFileType)
	}
	if size > MaxUploadSize {
		return nil, fmt.Errorf("file size %d exceeds %d bytes: %w", size, MaxUploadSize, ErrFileTooLarge)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(), strings.ToLower(filepath.Ext(originalName)))

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}

	return &UploadResult{
		ImageURL: "/uploads/" + filename,
		Filename: filename,
	}, nil
}

// randomSuffix returns a short random hex string for filename uniqueness.
func randomSuffix() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the timestamp already in the filename.
		return "0"
	}
	return hex.EncodeToString(b)
}
