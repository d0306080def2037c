package gateway

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

func testCID(t *testing.T, data string) string {
	t.Helper()
	sum, err := multihash.Sum([]byte(data), multihash.SHA2_256, -1)
	if err != nil {
		t.Fatalf("multihash: %v", err)
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

func TestParseLocatorSpellings(t *testing.T) {
	c := testCID(t, "hello")

	cases := []struct {
		raw      string
		wantPath string
	}{
		{c, ""},
		{"ipfs://" + c, ""},
		{"/ipfs/" + c, ""},
		{"  " + c + "  ", ""},
		{c + "/dir/file.txt", "/dir/file.txt"},
		{"ipfs://" + c + "/a", "/a"},
	}

	for _, tc := range cases {
		loc, err := ParseLocator(tc.raw)
		if err != nil {
			t.Fatalf("ParseLocator(%q) failed: %v", tc.raw, err)
		}
		if loc.CID.String() != c {
			t.Errorf("ParseLocator(%q) CID = %s, want %s", tc.raw, loc.CID, c)
		}
		if loc.Path != tc.wantPath {
			t.Errorf("ParseLocator(%q) path = %q, want %q", tc.raw, loc.Path, tc.wantPath)
		}
	}
}

func TestParseLocatorRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-cid", "ipfs://", "ipfs://nope/file"} {
		_, err := ParseLocator(raw)
		if err == nil {
			t.Errorf("ParseLocator(%q) accepted invalid locator", raw)
			continue
		}
		if !domain.IsKind(err, domain.KindLocator) {
			t.Errorf("ParseLocator(%q) kind mismatch: %v", raw, err)
		}
	}
}

func TestIPFSPath(t *testing.T) {
	c := testCID(t, "x")

	loc, err := ParseLocator("ipfs://" + c + "/readme.md")
	if err != nil {
		t.Fatalf("ParseLocator failed: %v", err)
	}
	if got := loc.IPFSPath(); got != "/ipfs/"+c+"/readme.md" {
		t.Fatalf("IPFSPath = %q", got)
	}
}
