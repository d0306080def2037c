package domain

// TypeTable holds the hand-curated MIME lookup tables: the archive set used
// by classification and the MIME→extension map used for download descriptors.
// Both are configurable (see infra/typetable) because the upstream curation
// is known to be incomplete.
type TypeTable struct {
	Extensions   map[string]string
	ArchiveTypes []string
}

// FallbackExtension is used when a MIME type has no table entry.
const FallbackExtension = "bin"

func DefaultTypeTable() TypeTable {
	return TypeTable{
		Extensions: map[string]string{
			"image/png":                    "png",
			"image/jpeg":                   "jpg",
			"image/gif":                    "gif",
			"image/webp":                   "webp",
			"image/svg+xml":                "svg",
			"image/bmp":                    "bmp",
			"image/x-icon":                 "ico",
			"video/mp4":                    "mp4",
			"video/webm":                   "webm",
			"video/ogg":                    "ogv",
			"video/quicktime":              "mov",
			"audio/mpeg":                   "mp3",
			"audio/mp3":                    "mp3",
			"audio/ogg":                    "ogg",
			"audio/wav":                    "wav",
			"audio/webm":                   "weba",
			"audio/flac":                   "flac",
			"text/plain":                   "txt",
			"text/html":                    "html",
			"text/css":                     "css",
			"text/csv":                     "csv",
			"text/markdown":                "md",
			"application/json":             "json",
			"text/json":                    "json",
			"application/xml":              "xml",
			"application/pdf":              "pdf",
			"application/zip":              "zip",
			"application/x-zip-compressed": "zip",
			"application/x-rar-compressed": "rar",
			"application/x-7z-compressed":  "7z",
			"application/gzip":             "gz",
			"application/x-gzip":           "gz",
			"application/x-tar":            "tar",
			"application/x-bzip2":          "bz2",
		},
		ArchiveTypes: []string{
			"application/zip",
			"application/x-zip-compressed",
			"application/x-rar-compressed",
			"application/x-7z-compressed",
			"application/gzip",
			"application/x-gzip",
			"application/x-tar",
			"application/x-bzip2",
		},
	}
}

// Extension returns the best-effort file extension for a MIME type,
// falling back to "bin" when unmapped.
func (t TypeTable) Extension(mime string) string {
	if ext, ok := t.Extensions[CanonicalMime(mime)]; ok && ext != "" {
		return ext
	}
	return FallbackExtension
}
