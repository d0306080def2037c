package render

import (
	"testing"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

func TestArchiveWarningAndExtension(t *testing.T) {
	d, _ := newTestDispatcher()

	res, rerr := d.Render(domain.NewPayload([]byte("PK\x03\x04")), "application/zip")
	if rerr != nil {
		t.Fatalf("Render failed: %v", rerr)
	}

	if res.Category != domain.CategoryArchive {
		t.Fatalf("category = %s", res.Category)
	}
	if res.Fragment.Warning == "" {
		t.Fatalf("archive result carries no warning")
	}
	if res.Download == nil || res.Download.Extension != "zip" {
		t.Fatalf("download descriptor = %+v, want zip extension", res.Download)
	}
}

func TestArchiveExtensionVariants(t *testing.T) {
	d, _ := newTestDispatcher()

	cases := map[string]string{
		"application/gzip":            "gz",
		"application/x-tar":           "tar",
		"application/x-7z-compressed": "7z",
	}

	for mime, ext := range cases {
		res, rerr := d.Render(domain.NewPayload([]byte{0x1f}), mime)
		if rerr != nil {
			t.Fatalf("Render(%q) failed: %v", mime, rerr)
		}
		if res.Download.Extension != ext {
			t.Errorf("Render(%q) extension = %q, want %q", mime, res.Download.Extension, ext)
		}
	}
}

func TestMediaDownloadFallsBackToBin(t *testing.T) {
	d, _ := newTestDispatcher()

	res, rerr := d.Render(domain.NewPayload([]byte{0x01}), "image/x-exotic")
	if rerr != nil {
		t.Fatalf("Render failed: %v", rerr)
	}
	if res.Download.Extension != "bin" {
		t.Fatalf("extension = %q, want bin", res.Download.Extension)
	}
}
