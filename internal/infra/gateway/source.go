// Package gateway retrieves content-addressed payloads over an IPFS HTTP
// gateway. It is the only network-facing adapter of the pipeline; gateway
// selection, racing and trust verification live outside this viewer.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

const DefaultGateway = "https://ipfs.io"

const defaultMaxPayloadBytes = 10 << 20 // 10MiB

type Source struct {
	client          *http.Client
	base            string
	maxPayloadBytes int64
}

type Option func(*Source)

// WithMaxPayloadBytes caps how much of a response body is read. Payloads past
// the cap are truncated, not rejected.
func WithMaxPayloadBytes(n int64) Option {
	return func(s *Source) { s.maxPayloadBytes = n }
}

func NewSource(client *http.Client, gatewayURL string, opts ...Option) *Source {
	base := strings.TrimRight(strings.TrimSpace(gatewayURL), "/")
	if base == "" {
		base = DefaultGateway
	}

	s := &Source{
		client:          client,
		base:            base,
		maxPayloadBytes: defaultMaxPayloadBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ByteSource = (*Source)(nil)

func (s *Source) Fetch(ctx context.Context, locator string) (ports.FetchResult, error) {
	loc, err := ParseLocator(locator)
	if err != nil {
		return ports.FetchResult{}, err
	}

	url := s.base + loc.IPFSPath()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.FetchResult{}, &domain.OpError{
			Op:   "gateway.fetch",
			Kind: domain.KindFetch,
			Path: url,
			Err:  err,
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return ports.FetchResult{}, &domain.OpError{
			Op:   "gateway.fetch",
			Kind: domain.KindFetch,
			Path: url,
			Err:  err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ports.FetchResult{}, &domain.OpError{
			Op:   "gateway.fetch",
			Kind: domain.KindFetch,
			Path: url,
			Err:  fmt.Errorf("gateway returned status %d", resp.StatusCode),
		}
	}

	body, truncated, readErr := readBounded(resp.Body, s.maxPayloadBytes)
	if readErr != nil {
		return ports.FetchResult{}, &domain.OpError{
			Op:   "gateway.read_body",
			Kind: domain.KindFetch,
			Path: url,
			Err:  readErr,
		}
	}

	return ports.FetchResult{
		Bytes:        body,
		DeclaredType: strings.TrimSpace(resp.Header.Get("Content-Type")),
		Truncated:    truncated,
	}, nil
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}
