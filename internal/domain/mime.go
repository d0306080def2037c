package domain

import "strings"

// MimeOctetStream is the sentinel type used when neither a declared type nor
// a detector signal is available. Type resolution never yields an empty string.
const MimeOctetStream = "application/octet-stream"

// Category is the closed set of rendering strategies a MIME type maps into.
type Category string

const (
	CategoryImage            Category = "image"
	CategoryVideo            Category = "video"
	CategoryAudio            Category = "audio"
	CategoryMarkupDocument   Category = "markup"
	CategoryPlainText        Category = "text"
	CategoryPortableDocument Category = "pdf"
	CategoryArchive          Category = "archive"
	CategoryStructuredData   Category = "structured"
	CategoryBinary           Category = "binary"
)

// CanonicalMime strips MIME parameters ("; charset=utf-8") and lowercases the
// essence so classification and table lookups stay total over header values.
func CanonicalMime(m string) string {
	essence, _, _ := strings.Cut(m, ";")
	return strings.ToLower(strings.TrimSpace(essence))
}

// Classifier maps a MIME type to exactly one Category.
type Classifier struct {
	archives map[string]struct{}
}

// NewClassifier builds a classifier over the given archive MIME set
// (full MIME strings, e.g. "application/zip").
func NewClassifier(archiveTypes []string) *Classifier {
	set := make(map[string]struct{}, len(archiveTypes))
	for _, t := range archiveTypes {
		set[CanonicalMime(t)] = struct{}{}
	}
	return &Classifier{archives: set}
}

// Classify is a total, deterministic mapping. The rule order is load-bearing:
// text/html must win over the text/ prefix, and the trailing rules are
// catch-alls that must not shadow the specific ones.
func (c *Classifier) Classify(mime string) Category {
	m := CanonicalMime(mime)

	switch {
	case strings.HasPrefix(m, "image/"):
		return CategoryImage
	case strings.HasPrefix(m, "video/"):
		return CategoryVideo
	case strings.HasPrefix(m, "audio/"):
		return CategoryAudio
	case m == "text/html" || m == "application/xhtml+xml":
		return CategoryMarkupDocument
	case strings.HasPrefix(m, "text/") && m != "text/json":
		return CategoryPlainText
	case m == "application/pdf":
		return CategoryPortableDocument
	case c.isArchive(m):
		return CategoryArchive
	case m == "application/json" || m == "text/json":
		return CategoryStructuredData
	default:
		return CategoryBinary
	}
}

func (c *Classifier) isArchive(canonical string) bool {
	_, ok := c.archives[canonical]
	return ok
}
