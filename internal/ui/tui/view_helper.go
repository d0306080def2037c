package tui

import (
	"html"
	"strings"

	"github.com/loan-mgt/ipfs-viewer/internal/domain"
	"github.com/loan-mgt/ipfs-viewer/internal/usecase"
)

// resultView builds the viewport content for a committed result.
//
// Fragment text arrives escaped for HTML sinks; a terminal has no markup
// context, so entities are unescaped back before display.
func resultView(t Theme, out usecase.ViewOutput, width int) string {
	res := out.Result

	var b strings.Builder
	b.WriteString(t.Title.Render(res.Label) + "\n")
	b.WriteString(t.Subtitle.Render(res.SizeLabel) + "\n")
	if out.Truncated {
		b.WriteString(t.Warning.Render("Payload truncated at the fetch limit") + "\n")
	}
	b.WriteString("\n")

	f := res.Fragment
	switch f.Kind {
	case domain.FragmentMedia, domain.FragmentEmbed:
		b.WriteString("Media content cannot be previewed in the terminal.\n")
		if f.Resource != nil {
			b.WriteString("Resource: " + f.Resource.Ref() + "\n")
		}
		b.WriteString(t.Help.Render("press s to save a copy") + "\n")

	case domain.FragmentMarkup:
		b.WriteString(t.Subtitle.Render("Raw source") + "\n")
		b.WriteString(html.UnescapeString(f.Source) + "\n")

	case domain.FragmentText:
		b.WriteString(html.UnescapeString(f.Text) + "\n")

	case domain.FragmentStructured:
		b.WriteString(highlightJSON(html.UnescapeString(f.Text)) + "\n")

	case domain.FragmentHexDump:
		b.WriteString(f.Text + "\n")
		b.WriteString(t.Help.Render("press s to save a copy") + "\n")

	case domain.FragmentArchive:
		b.WriteString(t.Warning.Render(f.Warning) + "\n")
		if res.Download != nil {
			b.WriteString(t.Help.Render("press s to save as ."+res.Download.Extension) + "\n")
		}
	}

	card := t.Card
	if width > 4 {
		card = card.Width(width - 2)
	}
	return card.Render(strings.TrimRight(b.String(), "\n"))
}
