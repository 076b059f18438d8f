package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/campuskart/campuskart-backend/pkg/config"
)

// Store persists uploaded blobs on local disk and hands back the relative URL
// path clients use to fetch them.
type Store struct {
	dir        string
	publicPath string
	now        func() time.Time
}

// BlobStore is the surface listing creation depends on.
type BlobStore interface {
	Save(ctx context.Context, filename string, contents io.Reader) (string, error)
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New ensures the upload directory exists and returns a store rooted there.
func New(cfg config.UploadsConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, errors.New("uploads dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir: %w", err)
	}
	publicPath := cfg.PublicPath
	if publicPath == "" {
		publicPath = "/uploads"
	}
	return &Store{
		dir:        cfg.Dir,
		publicPath: strings.TrimRight(publicPath, "/"),
		now:        time.Now,
	}, nil
}

// Save writes the blob under a timestamp-prefixed name and returns its public
// relative URL.
func (s *Store) Save(ctx context.Context, filename string, contents io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeFilename(filename))
	dest := filepath.Join(s.dir, name)

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("creating blob file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, contents); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("writing blob: %w", err)
	}

	return path.Join(s.publicPath, name), nil
}

// Dir returns the root directory, used to mount the static file handler.
func (s *Store) Dir() string {
	return s.dir
}

// PublicPath returns the URL prefix blobs are served under.
func (s *Store) PublicPath() string {
	return s.publicPath
}

// Ping verifies the upload directory is still writable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

// sanitizeFilename strips path separators so user-supplied names cannot
// escape the upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		}
		return r
	}, name)
}
