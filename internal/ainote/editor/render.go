package editor

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// RenderHTML сериализует дерево документа в HTML с data-атрибутами.
// Сериализация детерминирована: повторный разбор и рендер дают тот же байтовый
// результат.
func RenderHTML(w io.Writer, document *Document) error {
	var sb strings.Builder
	for _, block := range document.Blocks {
		renderBlock(&sb, block)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// HTML возвращает HTML-представление документа строкой.
func (d *Document) HTML() string {
	var sb strings.Builder
	for _, block := range d.Blocks {
		renderBlock(&sb, block)
	}
	return sb.String()
}

func renderBlock(sb *strings.Builder, block any) {
	switch b := block.(type) {
	case *Paragraph:
		renderParagraph(sb, b)
	case Paragraph:
		renderParagraph(sb, &b)
	case *Message:
		sb.WriteString(`<aside data-message="" data-variant="` + b.Variant + `">`)
		for _, child := range b.Content {
			renderBlock(sb, child)
		}
		sb.WriteString("</aside>")
	case *Details:
		sb.WriteString(`<details data-details=""`)
		if b.Open {
			sb.WriteString(` open=""`)
		}
		sb.WriteString("><summary>")
		renderInline(sb, b.Summary)
		sb.WriteString(`</summary><div data-details-content="">`)
		for _, child := range b.Content {
			renderBlock(sb, child)
		}
		sb.WriteString("</div></details>")
	case *CodeBlock:
		sb.WriteString(`<pre data-language="` + html.EscapeString(b.Language) + `"`)
		if b.Filename != "" {
			sb.WriteString(` data-filename="` + html.EscapeString(b.Filename) + `"`)
		}
		if b.Diff {
			sb.WriteString(` data-diff="true"`)
		}
		sb.WriteString("><code>" + html.EscapeString(b.Content) + "</code></pre>")
	case *Embed:
		renderEmbed(sb, b)
	case *Table:
		renderTable(sb, b)
	}
}

func renderParagraph(sb *strings.Builder, p *Paragraph) {
	sb.WriteString("<p>")
	renderInline(sb, p.Content)
	sb.WriteString("</p>")
}

func renderInline(sb *strings.Builder, content []any) {
	for _, node := range content {
		switch n := node.(type) {
		case Text:
			renderText(sb, n)
		case *Text:
			renderText(sb, *n)
		case *HardBreak:
			sb.WriteString("<br/>")
		case *FootnoteRef:
			fmt.Fprintf(sb, `<sup data-footnote-ref="" data-id=%q data-label=%q>%s</sup>`,
				html.EscapeString(n.ID), html.EscapeString(n.Label), html.EscapeString(n.Label))
		}
	}
}

func renderText(sb *strings.Builder, text Text) {
	var open, close string
	if text.Strong {
		open += "<strong>"
		close = "</strong>" + close
	}
	if text.Italic {
		open += "<em>"
		close = "</em>" + close
	}
	if text.Strikethrough {
		open += "<s>"
		close = "</s>" + close
	}
	if text.Code {
		open += "<code>"
		close = "</code>" + close
	}
	if text.URL != nil {
		open += `<a href="` + html.EscapeString(text.URL.String()) + `">`
		close = "</a>" + close
	}

	sb.WriteString(open + html.EscapeString(text.Content) + close)
}

func renderEmbed(sb *strings.Builder, e *Embed) {
	sb.WriteString(`<figure data-embed="" data-service="` + string(e.Service) +
		`" data-url="` + html.EscapeString(e.URL) + `">`)

	if src := e.Attributes().IframeSRC(); src != "" {
		sb.WriteString(`<iframe src="` + html.EscapeString(src) + `"></iframe>`)
	} else {
		sb.WriteString(`<a href="` + html.EscapeString(e.URL) + `">` + html.EscapeString(e.URL) + "</a>")
	}

	sb.WriteString("</figure>")
}

func renderTable(sb *strings.Builder, t *Table) {
	sb.WriteString("<table><tbody>")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			tag := "td"
			if cell.Header {
				tag = "th"
			}
			sb.WriteString("<" + tag + ">")
			renderParagraph(sb, &cell.Content)
			sb.WriteString("</" + tag + ">")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
}
