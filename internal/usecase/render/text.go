package render

import "github.com/loan-mgt/ipfs-viewer/internal/domain"

// textRenderer displays the payload as escaped preformatted text. Size is the
// encoded byte length, not the character count.
type textRenderer struct{}

func (r *textRenderer) Render(p domain.Payload, mime string) (domain.RenderResult, error) {
	out := baseResult("Plain text", mime, p)
	out.Fragment = domain.Fragment{
		Kind: domain.FragmentText,
		Text: escapeText(string(p.Bytes())),
	}
	return out, nil
}
