// Package htmldoc is the HTML presentation sink: it wraps a render result's
// fragment into a minimal standalone document.
//
// Escaping contract: Fragment.Text, SrcDoc and Source arrive already escaped
// by the renderers and are inserted verbatim. This package only escapes the
// attribute values it interpolates itself (resource refs, download names).
package htmldoc

import (
	"fmt"
	"strings"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
)

// Document renders a full HTML page for one result.
func Document(res domain.RenderResult) string {
	var b strings.Builder

	writeHead(&b, res.Label)
	fmt.Fprintf(&b, "<p class=\"meta\">%s · %s</p>\n", attrEscape(res.Label), attrEscape(res.SizeLabel))
	writeFragment(&b, res)
	writeDownload(&b, res)
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

// ErrorDocument renders the inline error page shown in place of content.
func ErrorDocument(message string) string {
	var b strings.Builder

	writeHead(&b, "Error")
	fmt.Fprintf(&b, "<p class=\"error\">%s</p>\n", attrEscape(message))
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func writeHead(b *strings.Builder, title string) {
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(b, "<title>%s</title>\n", attrEscape(title))
	b.WriteString("</head>\n<body>\n")
}

func writeFragment(b *strings.Builder, res domain.RenderResult) {
	f := res.Fragment

	switch f.Kind {
	case domain.FragmentMedia:
		ref := attrEscape(resourceRef(f))
		switch f.Element {
		case "video", "audio":
			fmt.Fprintf(b, "<%s controls src=\"%s\"></%s>\n", f.Element, ref, f.Element)
		default:
			fmt.Fprintf(b, "<img src=\"%s\" alt=\"%s\">\n", ref, attrEscape(res.Label))
		}

	case domain.FragmentEmbed:
		fmt.Fprintf(b, "<embed src=\"%s\" type=\"%s\">\n",
			attrEscape(resourceRef(f)), attrEscape(domain.CanonicalMime(res.Mime)))

	case domain.FragmentMarkup:
		// SrcDoc is pre-escaped for attribute context; sandbox with no
		// permission tokens keeps the document out of the host page's
		// security context.
		fmt.Fprintf(b, "<iframe sandbox srcdoc=\"%s\"></iframe>\n", f.SrcDoc)
		fmt.Fprintf(b, "<details><summary>Source</summary><pre>%s</pre></details>\n", f.Source)

	case domain.FragmentText, domain.FragmentStructured:
		fmt.Fprintf(b, "<pre>%s</pre>\n", f.Text)

	case domain.FragmentHexDump:
		fmt.Fprintf(b, "<pre class=\"hexdump\">%s</pre>\n", f.Text)

	case domain.FragmentArchive:
		fmt.Fprintf(b, "<p class=\"warning\">%s</p>\n", attrEscape(f.Warning))

	default:
		fmt.Fprintf(b, "<p class=\"warning\">No view available for this content.</p>\n")
	}
}

func writeDownload(b *strings.Builder, res domain.RenderResult) {
	if res.Download == nil || res.Fragment.Resource == nil {
		return
	}
	fmt.Fprintf(b, "<p><a href=\"%s\" download=\"%s\">Download (%s)</a></p>\n",
		attrEscape(res.Fragment.Resource.Ref()),
		attrEscape(res.Download.SuggestedName),
		attrEscape(res.SizeLabel))
}

func resourceRef(f domain.Fragment) string {
	if f.Resource == nil {
		return ""
	}
	return f.Resource.Ref()
}

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func attrEscape(s string) string {
	return attrEscaper.Replace(s)
}
