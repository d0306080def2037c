package usecase

import (
	"strings"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

// sniffPrefixLen bounds how much of the payload the detector sees.
const sniffPrefixLen = 512

// TypeResolver decides the authoritative MIME type for a payload.
//
// A present declared type is trusted over heuristic detection: a correctly
// labeled response should not be second-guessed. Sniffing only happens when
// the transport declared nothing.
type TypeResolver struct {
	detector ports.SignatureDetector
}

func NewTypeResolver(detector ports.SignatureDetector) *TypeResolver {
	return &TypeResolver{detector: detector}
}

// Resolve never returns an empty string: absence of both signals falls back
// to the octet-stream sentinel. Pure given its inputs.
func (r *TypeResolver) Resolve(declared string, p domain.Payload) string {
	if t := strings.TrimSpace(declared); t != "" {
		return t
	}

	if r.detector != nil {
		if mime, ok := r.detector.Detect(p.Prefix(sniffPrefixLen)); ok && strings.TrimSpace(mime) != "" {
			return mime
		}
	}

	return domain.MimeOctetStream
}
