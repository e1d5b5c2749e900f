package infra

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore writes uploaded image files under a configured root, laid out as
// {root}/{subdir}/{ownerID}/{uuid}{ext}. The returned path is relative to the
// root so it can be served as /images/{path}.
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore { return &ImageStore{root: root} }

func (s *ImageStore) Root() string { return s.root }

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// Save stores the uploaded file and returns its root-relative path.
// The on-disk name is a fresh UUID; the client's filename is never trusted.
func (s *ImageStore) Save(subdir string, ownerID uint, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("imagestore: extensión no permitida: %s", ext)
	}

	relDir := filepath.Join(subdir, fmt.Sprintf("%d", ownerID))
	absDir := filepath.Join(s.root, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("imagestore: create dir: %w", err)
	}

	name := uuid.NewString() + ext
	relPath := filepath.Join(relDir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("imagestore: open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, relPath))
	if err != nil {
		return "", fmt.Errorf("imagestore: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("imagestore: write file: %w", err)
	}

	// Forward slashes in the stored path regardless of OS.
	return filepath.ToSlash(relPath), nil
}

// Remove deletes a stored file by its root-relative path. A missing file is
// not an error; the DB row is the source of truth.
func (s *ImageStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("imagestore: remove: %w", err)
	}
	return nil
}
