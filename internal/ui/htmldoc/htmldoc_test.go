package htmldoc

import (
	"strings"
	"testing"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

type staticResource string

func (r staticResource) Ref() string  { return string(r) }
func (staticResource) Release() error { return nil }

func TestDocumentImage(t *testing.T) {
	res := domain.RenderResult{
		Label:     "Image (image/png)",
		Mime:      "image/png",
		Size:      3,
		SizeLabel: "3 Bytes",
		Category:  domain.CategoryImage,
		Fragment: domain.Fragment{
			Kind:     domain.FragmentMedia,
			Element:  "img",
			Resource: staticResource("data:image/png;base64,AAEC"),
		},
		Download: &domain.DownloadDescriptor{SuggestedName: "content.png", Extension: "png"},
	}

	doc := Document(res)

	if !strings.Contains(doc, `<img src="data:image/png;base64,AAEC"`) {
		t.Fatalf("missing img element:\n%s", doc)
	}
	if !strings.Contains(doc, `download="content.png"`) {
		t.Fatalf("missing download link:\n%s", doc)
	}
}

func TestDocumentMarkupIsSandboxed(t *testing.T) {
	res := domain.RenderResult{
		Label: "Markup document (text/html)",
		Mime:  "text/html",
		Fragment: domain.Fragment{
			Kind:   domain.FragmentMarkup,
			SrcDoc: "&lt;b&gt;hi&lt;/b&gt;",
			Source: "&lt;b&gt;hi&lt;/b&gt;",
		},
	}

	doc := Document(res)

	if !strings.Contains(doc, "<iframe sandbox srcdoc=\"&lt;b&gt;hi&lt;/b&gt;\">") {
		t.Fatalf("markup embed not sandboxed:\n%s", doc)
	}
	if !strings.Contains(doc, "<pre>&lt;b&gt;hi&lt;/b&gt;</pre>") {
		t.Fatalf("raw source view missing:\n%s", doc)
	}
}

func TestDocumentVideoUsesMediaElement(t *testing.T) {
	res := domain.RenderResult{
		Mime: "video/mp4",
		Fragment: domain.Fragment{
			Kind:     domain.FragmentMedia,
			Element:  "video",
			Resource: staticResource("data:video/mp4;base64,AA=="),
		},
	}

	if doc := Document(res); !strings.Contains(doc, "<video controls src=") {
		t.Fatalf("missing video element:\n%s", doc)
	}
}

func TestErrorDocumentEscapes(t *testing.T) {
	doc := ErrorDocument(`render failed: <script>"x"`)

	if strings.Contains(doc, "<script>") {
		t.Fatalf("error message not escaped:\n%s", doc)
	}
	if !strings.Contains(doc, "&lt;script&gt;") {
		t.Fatalf("escaped message missing:\n%s", doc)
	}
}
