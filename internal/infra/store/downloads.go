// Package store persists fetched payloads under their suggested download
// names.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

const defaultDirName = "downloads"

type DownloadStore struct {
	dir string
	now func() time.Time
}

type Option func(*DownloadStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *DownloadStore) { s.now = now }
}

func NewDownloadStore(dir string, opts ...Option) *DownloadStore {
	if strings.TrimSpace(dir) == "" {
		dir = defaultDirName
	}

	s := &DownloadStore{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.DownloadStore = (*DownloadStore)(nil)

// Save writes the payload as <timestamp>_<slug>.<ext> inside the store
// directory and returns the file path.
func (s *DownloadStore) Save(p domain.Payload, d domain.DownloadDescriptor) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "store.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	ext := strings.TrimSpace(d.Extension)
	if ext == "" {
		ext = domain.FallbackExtension
	}

	base := d.SuggestedName
	base = strings.TrimSuffix(base, filepath.Ext(base))
	slug := slugify(base)
	if slug == "" {
		slug = "content"
	}

	ts := s.now().UTC().Format("20060102T150405Z")
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.%s", ts, slug, ext))

	if err := os.WriteFile(path, p.Bytes(), 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "store.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return path, nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
