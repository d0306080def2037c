// Package resources provides the displayable resource handles renderers
// allocate for binary content — the viewer's object-URL equivalent.
package resources

import (
	"os"
	"sync"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

// TempFileAllocator materializes a payload as a temporary file so a sink can
// hand the path to an external opener. Release removes the file.
type TempFileAllocator struct {
	dir string
}

// NewTempFileAllocator creates files under dir; empty means the system temp
// directory.
func NewTempFileAllocator(dir string) *TempFileAllocator {
	return &TempFileAllocator{dir: dir}
}

var _ ports.ResourceAllocator = (*TempFileAllocator)(nil)

func (a *TempFileAllocator) Allocate(p domain.Payload, mime string) (domain.Resource, error) {
	f, err := os.CreateTemp(a.dir, "ipfs-viewer-*")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "resources.create_temp",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if _, err := f.Write(p.Bytes()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, &domain.OpError{
			Op:   "resources.write_temp",
			Kind: domain.KindExecution,
			Path: f.Name(),
			Err:  err,
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, &domain.OpError{
			Op:   "resources.close_temp",
			Kind: domain.KindExecution,
			Path: f.Name(),
			Err:  err,
		}
	}

	return &fileResource{path: f.Name()}, nil
}

type fileResource struct {
	path string
	once sync.Once
	err  error
}

func (r *fileResource) Ref() string {
	return r.path
}

// Release is idempotent: a result may be released both by a superseding
// commit and by sink teardown.
func (r *fileResource) Release() error {
	r.once.Do(func() {
		r.err = os.Remove(r.path)
	})
	return r.err
}
