package render

import (
	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

const archiveWarning = "Archive contents are not available for preview. Download the file to inspect it."

// archiveRenderer never decodes or lists archive contents; it surfaces a
// warning plus a download descriptor resolved from the type table.
type archiveRenderer struct {
	table domain.TypeTable
	alloc ports.ResourceAllocator
}

func (r *archiveRenderer) Render(p domain.Payload, mime string) (domain.RenderResult, error) {
	res, err := r.alloc.Allocate(p, mime)
	if err != nil {
		return domain.RenderResult{}, err
	}

	out := baseResult("Archive", mime, p)
	out.Fragment = domain.Fragment{
		Kind:     domain.FragmentArchive,
		Warning:  archiveWarning,
		Resource: res,
	}
	out.Download = download(r.table.Extension(mime))
	return out, nil
}
