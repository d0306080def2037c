package render

import (
	"bytes"
	"encoding/json"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

// structuredRenderer pretty-prints JSON with stable two-space indentation.
// A malformed payload is a display concern, not a pipeline fault: it falls
// back to the raw escaped text and still returns a result.
type structuredRenderer struct{}

func (r *structuredRenderer) Render(p domain.Payload, mime string) (domain.RenderResult, error) {
	out := baseResult("Structured data", mime, p)
	out.Fragment = domain.Fragment{
		Kind: domain.FragmentStructured,
		Text: escapeText(prettyJSON(p.Bytes())),
	}
	return out, nil
}

// prettyJSON indents valid JSON and returns the input unchanged otherwise.
// json.Indent preserves key order, so re-parsing the output yields the same
// value as parsing the original bytes.
func prettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
