package gateway

import (
	"strings"

	"github.com/ipfs/go-cid"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

// Locator is a parsed content-addressed identifier: a validated CID plus an
// optional sub-path under it.
type Locator struct {
	CID  cid.Cid
	Path string
}

// IPFSPath renders the canonical gateway path, e.g. "/ipfs/bafy.../dir/file".
func (l Locator) IPFSPath() string {
	return "/ipfs/" + l.CID.String() + l.Path
}

// ParseLocator accepts the spellings users paste into the viewer:
//
//	ipfs://<cid>[/path]
//	/ipfs/<cid>[/path]
//	<cid>[/path]
//
// The CID is validated; anything else is an invalid-locator error.
func ParseLocator(raw string) (Locator, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "ipfs://")
	s = strings.TrimPrefix(s, "/ipfs/")

	if s == "" {
		return Locator{}, &domain.OpError{
			Op:   "gateway.parse_locator",
			Kind: domain.KindLocator,
			Path: raw,
		}
	}

	cidPart, subPath, hasPath := strings.Cut(s, "/")

	c, err := cid.Decode(cidPart)
	if err != nil {
		return Locator{}, &domain.OpError{
			Op:   "gateway.parse_locator",
			Kind: domain.KindLocator,
			Path: raw,
			Err:  err,
		}
	}

	loc := Locator{CID: c}
	if hasPath && subPath != "" {
		loc.Path = "/" + subPath
	}
	return loc, nil
}
