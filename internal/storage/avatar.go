package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/deepdating/deep-dating-api/internal/logger"
)

// Extensions by accepted avatar content type.
var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// AvatarStore writes uploaded avatar files to a shared directory. Files are
// keyed by user id and upload time; superseded files are not cleaned up.
type AvatarStore struct {
	dir string
}

// NewAvatarStore creates the upload directory if needed.
func NewAvatarStore(dir string) (*AvatarStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &AvatarStore{dir: dir}, nil
}

// Dir returns the directory uploaded files are served from.
func (s *AvatarStore) Dir() string {
	return s.dir
}

// Accepts reports whether the content type is an allowed avatar format.
func (s *AvatarStore) Accepts(contentType string) bool {
	_, ok := avatarExtensions[contentType]
	return ok
}

// Save writes the avatar bytes to disk and returns the public URL path of
// the new file.
func (s *AvatarStore) Save(userID int64, contentType string, r io.Reader) (string, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	name := fmt.Sprintf("avatar_%d_%d%s", userID, time.Now().UnixMilli(), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write avatar file: %w", err)
	}

	logger.Log.Infow("avatar stored", "user_id", userID, "file", name)
	return "/uploads/" + name, nil
}
