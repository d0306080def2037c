// Package sniff implements signature detection over a payload's byte prefix.
package sniff

import (
	"net/http"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

// sniffLen matches the prefix window of the underlying detection algorithm.
const sniffLen = 512

// Detector wraps the stdlib content sniffer. The generic octet-stream answer
// means the prefix carried no recognizable signature, so it is reported as
// "no signal" and the resolver applies its own sentinel.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

var _ ports.SignatureDetector = (*Detector)(nil)

func (*Detector) Detect(prefix []byte) (string, bool) {
	if len(prefix) == 0 {
		return "", false
	}
	if len(prefix) > sniffLen {
		prefix = prefix[:sniffLen]
	}

	mime := http.DetectContentType(prefix)
	if domain.CanonicalMime(mime) == domain.MimeOctetStream {
		return "", false
	}
	return mime, true
}
