package ports

import "context"

// FetchResult is the raw outcome of retrieving a locator's bytes.
type FetchResult struct {
	Bytes []byte

	// DeclaredType is the content type asserted by the transport layer
	// (response header). Empty means absent.
	DeclaredType string

	// Truncated reports that the payload hit the byte-source read cap.
	Truncated bool
}

// ByteSource retrieves the payload for a content-addressed locator.
// It is the only network-facing collaborator of the pipeline.
type ByteSource interface {
	Fetch(ctx context.Context, locator string) (FetchResult, error)
}
