package usecase

import (
	"context"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
	"github.com/loan-mgt/ipfs-viewer/internal/usecase/render"
)

// Viewer is the type-resolution and rendering pipeline: fetch bytes, decide
// the authoritative MIME type, classify, render.
type Viewer struct {
	source     ports.ByteSource
	resolver   *TypeResolver
	dispatcher *render.Dispatcher
}

func NewViewer(source ports.ByteSource, resolver *TypeResolver, dispatcher *render.Dispatcher) *Viewer {
	return &Viewer{
		source:     source,
		resolver:   resolver,
		dispatcher: dispatcher,
	}
}

// ViewOutput carries either a render result or a render error, never both.
// The payload is retained so sinks can offer a download of the original bytes.
type ViewOutput struct {
	Result    domain.RenderResult
	RenderErr *domain.RenderError

	Payload   domain.Payload
	Truncated bool
}

// View runs the pipeline for one locator. Only fetch failures surface as an
// error; everything below the dispatcher boundary comes back as a typed
// RenderErr inside the output.
func (v *Viewer) View(ctx context.Context, locator string) (ViewOutput, error) {
	fetched, err := v.source.Fetch(ctx, locator)
	if err != nil {
		return ViewOutput{}, err
	}

	p := domain.NewPayload(fetched.Bytes)
	mime := v.resolver.Resolve(fetched.DeclaredType, p)

	out := ViewOutput{
		Payload:   p,
		Truncated: fetched.Truncated,
	}

	res, rerr := v.dispatcher.Render(p, mime)
	if rerr != nil {
		out.RenderErr = rerr
		return out, nil
	}

	out.Result = res
	return out, nil
}
