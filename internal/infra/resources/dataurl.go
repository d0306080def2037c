package resources

import (
	"encoding/base64"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

// DataURLAllocator encodes the payload as a data: URI, for standalone HTML
// documents that must not reference the local filesystem. Release is a no-op
// since no external resource is held.
type DataURLAllocator struct{}

var _ ports.ResourceAllocator = DataURLAllocator{}

func (DataURLAllocator) Allocate(p domain.Payload, mime string) (domain.Resource, error) {
	m := domain.CanonicalMime(mime)
	if m == "" {
		m = domain.MimeOctetStream
	}
	return dataResource("data:" + m + ";base64," + base64.StdEncoding.EncodeToString(p.Bytes())), nil
}

type dataResource string

func (r dataResource) Ref() string    { return string(r) }
func (r dataResource) Release() error { return nil }
