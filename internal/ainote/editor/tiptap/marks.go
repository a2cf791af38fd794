package tiptap

import (
	"log/slog"
	"net/url"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
)

// applyMarks применяет форматирование (marks) к текстовому элементу.
func applyMarks(text *editor.Text, marks []TipTapMark) {
	for _, mark := range marks {
		switch mark.Type {
		case "bold":
			text.Strong = true
		case "italic":
			text.Italic = true
		case "strike":
			text.Strikethrough = true
		case "code":
			text.Code = true
		case "link":
			applyLink(text, mark.Attrs)
		default:
			slog.Debug("Unknown mark type", "type", mark.Type)
		}
	}
}

// applyLink применяет ссылку к тексту.
func applyLink(text *editor.Text, attrs map[string]interface{}) {
	href := getAttrString(attrs, "href")
	if href != "" {
		u, err := url.Parse(href)
		if err == nil {
			text.URL = u
		}
	}
}
