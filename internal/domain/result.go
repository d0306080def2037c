package domain

// Resource is a releasable handle to displayable bytes — the object-URL
// equivalent. The sink that owns the RenderResult decides when to release it.
type Resource interface {
	// Ref is the reference a sink embeds in its display surface
	// (a file path, a data: URI, ...).
	Ref() string
	Release() error
}

// FragmentKind tags the category-specific display fragment.
type FragmentKind string

const (
	FragmentMedia      FragmentKind = "media"
	FragmentMarkup     FragmentKind = "markup"
	FragmentText       FragmentKind = "text"
	FragmentStructured FragmentKind = "structured"
	FragmentEmbed      FragmentKind = "embed"
	FragmentArchive    FragmentKind = "archive"
	FragmentHexDump    FragmentKind = "hexdump"
)

// Fragment describes what a sink should display. Only the fields relevant to
// its Kind are populated. Text, SrcDoc and Source arrive already escaped by
// the renderer that produced them; sinks insert them without re-escaping.
type Fragment struct {
	Kind FragmentKind

	// Element is the media element tag for FragmentMedia/FragmentEmbed
	// (img, video, audio, embed).
	Element string

	// Resource is set for binary-content fragments (media, embed, archive,
	// hexdump). Exactly one handle is allocated per render.
	Resource Resource

	// Text is escaped text content: preformatted text, pretty-printed
	// structured data, or a hex dump.
	Text string

	// SrcDoc is the attribute-escaped document for the sandboxed markup
	// embed; Source is the escaped raw-source view shown alongside it.
	SrcDoc string
	Source string

	// Warning is a notice shown instead of content (archives).
	Warning string
}

// DownloadDescriptor suggests how to persist the payload.
type DownloadDescriptor struct {
	SuggestedName string
	Extension     string
}

// RenderResult is the value a renderer hands to the presentation sink.
type RenderResult struct {
	Label     string
	Mime      string
	Size      int64
	SizeLabel string
	Category  Category
	Fragment  Fragment
	Download  *DownloadDescriptor
}

// Release frees the fragment's resource handle, if any. Safe to call on a
// zero result.
func (r RenderResult) Release() error {
	if r.Fragment.Resource == nil {
		return nil
	}
	return r.Fragment.Resource.Release()
}
