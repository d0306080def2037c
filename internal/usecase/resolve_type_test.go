package usecase

import (
	"testing"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

type stubDetector struct {
	mime string
	ok   bool

	gotPrefix []byte
	calls     int
}

func (d *stubDetector) Detect(prefix []byte) (string, bool) {
	d.calls++
	d.gotPrefix = prefix
	return d.mime, d.ok
}

func TestResolveDeclaredTypeIsAuthoritative(t *testing.T) {
	det := &stubDetector{mime: "image/png", ok: true}
	r := NewTypeResolver(det)

	got := r.Resolve("text/plain", domain.NewPayload([]byte{0x89, 'P', 'N', 'G'}))
	if got != "text/plain" {
		t.Fatalf("Resolve = %q, want declared text/plain", got)
	}
	if det.calls != 0 {
		t.Fatalf("detector invoked despite declared type")
	}
}

func TestResolveFallsBackToDetector(t *testing.T) {
	det := &stubDetector{mime: "image/gif", ok: true}
	r := NewTypeResolver(det)

	for _, declared := range []string{"", "   "} {
		if got := r.Resolve(declared, domain.NewPayload([]byte("GIF89a"))); got != "image/gif" {
			t.Fatalf("Resolve(declared=%q) = %q, want image/gif", declared, got)
		}
	}
}

func TestResolveSentinelWhenNoSignal(t *testing.T) {
	det := &stubDetector{ok: false}
	r := NewTypeResolver(det)

	if got := r.Resolve("", domain.NewPayload(nil)); got != domain.MimeOctetStream {
		t.Fatalf("Resolve = %q, want %q", got, domain.MimeOctetStream)
	}
}

func TestResolveWithoutDetector(t *testing.T) {
	r := NewTypeResolver(nil)

	if got := r.Resolve("", domain.NewPayload([]byte("data"))); got != domain.MimeOctetStream {
		t.Fatalf("Resolve = %q, want %q", got, domain.MimeOctetStream)
	}
}

func TestResolveBoundsDetectorPrefix(t *testing.T) {
	det := &stubDetector{ok: false}
	r := NewTypeResolver(det)

	big := make([]byte, 4096)
	r.Resolve("", domain.NewPayload(big))

	if len(det.gotPrefix) != sniffPrefixLen {
		t.Fatalf("detector saw %d bytes, want %d", len(det.gotPrefix), sniffPrefixLen)
	}
}
