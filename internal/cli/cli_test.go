package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/usecase"
)

func testCID(t *testing.T, data string) string {
	t.Helper()
	sum, err := multihash.Sum([]byte(data), multihash.SHA2_256, -1)
	if err != nil {
		t.Fatalf("multihash: %v", err)
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

func testGateway(t *testing.T, body string, contentType string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType == "" {
			w.Header()["Content-Type"] = nil
		} else {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestViewCommandRendersPlainText(t *testing.T) {
	srv := testGateway(t, "hello from the gateway", "text/plain; charset=utf-8")

	out, err := runCommand(t, "view", testCID(t, "hello"), "--gateway", srv.URL)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if !strings.Contains(out, "hello from the gateway") {
		t.Errorf("document missing payload text:\n%s", out)
	}
	if !strings.Contains(out, "text/plain") {
		t.Errorf("document missing resolved type label:\n%s", out)
	}
}

func TestViewCommandEscapesMarkupInText(t *testing.T) {
	srv := testGateway(t, "<script>alert(1)</script>", "text/plain")

	out, err := runCommand(t, "view", testCID(t, "xss"), "--gateway", srv.URL)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Errorf("payload markup reached the document unescaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped markup in document:\n%s", out)
	}
}

func TestViewCommandFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := runCommand(t, "view", testCID(t, "gone"), "--gateway", srv.URL)
	if err == nil {
		t.Fatal("expected an error for a gateway 404")
	}
}

func TestViewCommandRejectsBadLocator(t *testing.T) {
	_, err := runCommand(t, "view", "not-a-cid")
	if err == nil {
		t.Fatal("expected an error for an invalid locator")
	}
}

func TestInspectCommandReportsTypeAndCategory(t *testing.T) {
	srv := testGateway(t, `{"a":1}`, "application/json")

	out, err := runCommand(t, "inspect", testCID(t, "json"), "--gateway", srv.URL)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !strings.Contains(out, "application/json") {
		t.Errorf("report missing mime:\n%s", out)
	}
	if !strings.Contains(out, "structured") {
		t.Errorf("report missing category:\n%s", out)
	}
	if !strings.Contains(out, "7 Bytes") {
		t.Errorf("report missing size label:\n%s", out)
	}
}

func TestInspectReportsRenderFaultInline(t *testing.T) {
	vo := usecase.ViewOutput{
		RenderErr: domain.NewRenderError(domain.StageRendering, "media handle allocation failed"),
	}

	var out bytes.Buffer
	if err := writeInspect(&out, false, "bafy...", vo); err != nil {
		t.Fatalf("a render fault must not become a process error: %v", err)
	}
	if !strings.Contains(out.String(), "render failed at rendering") {
		t.Errorf("report missing the inline error:\n%s", out.String())
	}

	out.Reset()
	if err := writeInspect(&out, true, "bafy...", vo); err != nil {
		t.Fatalf("JSON report failed: %v", err)
	}
	if !strings.Contains(out.String(), `"stage": "rendering"`) {
		t.Errorf("JSON report missing the failure stage:\n%s", out.String())
	}
}

func TestInspectCommandJSONOutput(t *testing.T) {
	srv := testGateway(t, "\x89PNG\r\n\x1a\n", "")

	out, err := runCommand(t, "inspect", testCID(t, "png"), "--gateway", srv.URL, "--json")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !strings.Contains(out, `"mime": "image/png"`) {
		t.Errorf("sniffed type missing from JSON report:\n%s", out)
	}
	if !strings.Contains(out, `"category": "image"`) {
		t.Errorf("category missing from JSON report:\n%s", out)
	}
}
