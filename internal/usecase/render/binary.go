package render

import (
	"encoding/hex"
	"strings"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

const (
	hexDumpMaxBytes  = 256
	hexDumpLineBytes = 24
)

// binaryRenderer shows a bounded hex dump. The generic category never infers
// a more specific extension than "bin".
type binaryRenderer struct {
	alloc ports.ResourceAllocator
}

func (r *binaryRenderer) Render(p domain.Payload, mime string) (domain.RenderResult, error) {
	res, err := r.alloc.Allocate(p, mime)
	if err != nil {
		return domain.RenderResult{}, err
	}

	out := baseResult("Binary data", mime, p)
	out.Fragment = domain.Fragment{
		Kind:     domain.FragmentHexDump,
		Text:     hexDump(p.Bytes()),
		Resource: res,
	}
	out.Download = download(domain.FallbackExtension)
	return out, nil
}

// hexDump formats at most the first 256 bytes as space-separated hex pairs,
// 24 bytes per line.
func hexDump(b []byte) string {
	if len(b) > hexDumpMaxBytes {
		b = b[:hexDumpMaxBytes]
	}

	var lines []string
	for start := 0; start < len(b); start += hexDumpLineBytes {
		end := start + hexDumpLineBytes
		if end > len(b) {
			end = len(b)
		}

		pairs := make([]string, 0, end-start)
		for _, c := range b[start:end] {
			pairs = append(pairs, hex.EncodeToString([]byte{c}))
		}
		lines = append(lines, strings.Join(pairs, " "))
	}

	return strings.Join(lines, "\n")
}
