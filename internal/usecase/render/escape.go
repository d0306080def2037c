package render

import "strings"

var (
	textEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// escapeText escapes < and > so text content cannot inject markup into the
// surrounding page.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr additionally escapes double quotes, for content placed inside
// attribute values (the sandboxed srcdoc embed).
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
