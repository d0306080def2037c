// Package render implements the per-category rendering strategies and the
// dispatcher that routes a classified payload to the right one.
package render

import (
	"fmt"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/ports"
)

// Renderer turns a (payload, mime) pair into a render result. Stateless and
// idempotent: the same inputs produce results with identical label, mime and
// size fields.
type Renderer interface {
	Render(p domain.Payload, mime string) (domain.RenderResult, error)
}

// Dispatcher classifies a MIME type and invokes the renderer registered for
// its category. It is the failure boundary of the pipeline: a sink always
// receives either a RenderResult or a *domain.RenderError, never a panic.
type Dispatcher struct {
	classifier *domain.Classifier
	renderers  map[domain.Category]Renderer
}

func NewDispatcher(table domain.TypeTable, alloc ports.ResourceAllocator) *Dispatcher {
	return &Dispatcher{
		classifier: domain.NewClassifier(table.ArchiveTypes),
		renderers: map[domain.Category]Renderer{
			domain.CategoryImage:            newMediaRenderer("Image", "img", table, alloc),
			domain.CategoryVideo:            newMediaRenderer("Video", "video", table, alloc),
			domain.CategoryAudio:            newMediaRenderer("Audio", "audio", table, alloc),
			domain.CategoryMarkupDocument:   &markupRenderer{},
			domain.CategoryPlainText:        &textRenderer{},
			domain.CategoryPortableDocument: &documentRenderer{alloc: alloc},
			domain.CategoryArchive:          &archiveRenderer{table: table, alloc: alloc},
			domain.CategoryStructuredData:   &structuredRenderer{},
			domain.CategoryBinary:           &binaryRenderer{alloc: alloc},
		},
	}
}

// Render returns the rendered result or a *domain.RenderError.
func (d *Dispatcher) Render(p domain.Payload, mime string) (res domain.RenderResult, rerr *domain.RenderError) {
	cat := d.classifier.Classify(mime)

	r, ok := d.renderers[cat]
	if !ok {
		// Classification is total, so this only happens on a broken registry.
		return domain.RenderResult{}, domain.NewRenderError(
			domain.StageClassification,
			fmt.Sprintf("no renderer registered for category %s", cat),
		)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = domain.RenderResult{}
			rerr = domain.NewRenderError(domain.StageRendering, fmt.Sprint(rec))
		}
	}()

	out, err := r.Render(p, mime)
	if err != nil {
		return domain.RenderResult{}, domain.NewRenderError(domain.StageRendering, err.Error())
	}

	out.Category = cat
	return out, nil
}

func baseResult(label, mime string, p domain.Payload) domain.RenderResult {
	return domain.RenderResult{
		Label:     fmt.Sprintf("%s (%s)", label, domain.CanonicalMime(mime)),
		Mime:      mime,
		Size:      p.Size(),
		SizeLabel: domain.FormatBytes(p.Size()),
	}
}

func download(ext string) *domain.DownloadDescriptor {
	return &domain.DownloadDescriptor{
		SuggestedName: "content." + ext,
		Extension:     ext,
	}
}
