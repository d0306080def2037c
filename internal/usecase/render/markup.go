package render

import "github.com/loan-mgt/ipfs-viewer/internal/domain"

// markupRenderer embeds HTML/XHTML as an isolated document view plus an
// escaped raw-source view. Isolation is mandatory: the document must not
// execute in the host page's security context, so the embed value is
// attribute-escaped for a sandboxed srcdoc, never inlined.
type markupRenderer struct{}

func (r *markupRenderer) Render(p domain.Payload, mime string) (domain.RenderResult, error) {
	src := string(p.Bytes())

	out := baseResult("Markup document", mime, p)
	out.Fragment = domain.Fragment{
		Kind:   domain.FragmentMarkup,
		SrcDoc: escapeAttr(src),
		Source: escapeAttr(src),
	}
	return out, nil
}
