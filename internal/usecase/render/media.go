package render

import (
	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

// mediaRenderer covers image, video and audio: the payload is wrapped as a
// displayable media resource tagged with its MIME type.
type mediaRenderer struct {
	label   string
	element string
	table   domain.TypeTable
	alloc   ports.ResourceAllocator
}

func newMediaRenderer(label, element string, table domain.TypeTable, alloc ports.ResourceAllocator) *mediaRenderer {
	return &mediaRenderer{label: label, element: element, table: table, alloc: alloc}
}

func (r *mediaRenderer) Render(p domain.Payload, mime string) (domain.RenderResult, error) {
	res, err := r.alloc.Allocate(p, mime)
	if err != nil {
		return domain.RenderResult{}, err
	}

	out := baseResult(r.label, mime, p)
	out.Fragment = domain.Fragment{
		Kind:     domain.FragmentMedia,
		Element:  r.element,
		Resource: res,
	}
	out.Download = download(r.table.Extension(mime))
	return out, nil
}
