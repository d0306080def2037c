package ports

import "github.com/loan-mgt/ipfs-viewer/internal/domain"

// ResourceAllocator creates the displayable resource handle for binary
// content (the object-URL equivalent). Renderers allocate exactly one handle
// per render; the sink owning the result releases it.
type ResourceAllocator interface {
	Allocate(p domain.Payload, mime string) (domain.Resource, error)
}
