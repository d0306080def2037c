package resources

import (
	"os"
	"strings"
	"testing"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

func TestTempFileAllocateAndRelease(t *testing.T) {
	a := NewTempFileAllocator(t.TempDir())

	res, err := a.Allocate(domain.NewPayload([]byte("media bytes")), "image/png")
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	b, err := os.ReadFile(res.Ref())
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	if string(b) != "media bytes" {
		t.Fatalf("content = %q", b)
	}

	if err := res.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := os.Stat(res.Ref()); !os.IsNotExist(err) {
		t.Fatalf("file survives release")
	}

	// Idempotent: a superseding commit and sink teardown may both release.
	if err := res.Release(); err != nil {
		t.Fatalf("second Release failed: %v", err)
	}
}

func TestDataURLAllocate(t *testing.T) {
	a := DataURLAllocator{}

	res, err := a.Allocate(domain.NewPayload([]byte{0x01, 0x02}), "image/png; charset=binary")
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	ref := res.Ref()
	if !strings.HasPrefix(ref, "data:image/png;base64,") {
		t.Fatalf("ref = %q", ref)
	}
	if err := res.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
}

func TestDataURLEmptyMimeFallsBackToSentinel(t *testing.T) {
	a := DataURLAllocator{}

	res, _ := a.Allocate(domain.NewPayload(nil), "")
	if !strings.HasPrefix(res.Ref(), "data:application/octet-stream;base64,") {
		t.Fatalf("ref = %q", res.Ref())
	}
}
