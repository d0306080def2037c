package render

import (
	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

// documentRenderer wraps a PDF payload as an embeddable document resource.
type documentRenderer struct {
	alloc ports.ResourceAllocator
}

func (r *documentRenderer) Render(p domain.Payload, mime string) (domain.RenderResult, error) {
	res, err := r.alloc.Allocate(p, mime)
	if err != nil {
		return domain.RenderResult{}, err
	}

	out := baseResult("PDF document", mime, p)
	out.Fragment = domain.Fragment{
		Kind:     domain.FragmentEmbed,
		Element:  "embed",
		Resource: res,
	}
	out.Download = download("pdf")
	return out, nil
}
