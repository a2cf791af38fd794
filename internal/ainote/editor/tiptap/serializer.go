package tiptap

import (
	"encoding/json"
	"log/slog"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
)

// Serialize сериализует editor.Document в JSON редактора.
func Serialize(doc *editor.Document) ([]byte, error) {
	tipTapDoc := TipTapDocument{
		Type:    "doc",
		Content: make([]TipTapNode, 0, len(doc.Blocks)),
	}

	for _, block := range doc.Blocks {
		node := serializeBlock(block)
		if node != nil {
			tipTapDoc.Content = append(tipTapDoc.Content, *node)
		}
	}

	return json.Marshal(tipTapDoc)
}

// serializeBlock преобразует блок editor в ноду редактора.
func serializeBlock(block any) *TipTapNode {
	if block == nil {
		return nil
	}

	switch b := block.(type) {
	case *editor.Paragraph:
		return serializeParagraph(b)
	case editor.Paragraph:
		return serializeParagraph(&b)
	case *editor.Message:
		return serializeMessage(b)
	case *editor.Details:
		return serializeDetails(b)
	case *editor.CodeBlock:
		return serializeCodeBlock(b)
	case *editor.Embed:
		return serializeEmbed(b)
	case *editor.Table:
		return serializeTable(b)
	default:
		slog.Warn("Unknown block type for serialization", "type", b)
		return nil
	}
}

// serializeParagraph преобразует Paragraph в ноду paragraph.
func serializeParagraph(p *editor.Paragraph) *TipTapNode {
	node := &TipTapNode{
		Type:    "paragraph",
		Content: make([]TipTapNode, 0, len(p.Content)),
	}

	for _, content := range p.Content {
		if childNode := serializeInline(content); childNode != nil {
			node.Content = append(node.Content, *childNode)
		}
	}

	return node
}

// serializeInline преобразует inline-содержимое параграфа.
func serializeInline(content any) *TipTapNode {
	switch c := content.(type) {
	case editor.Text:
		return serializeText(&c)
	case *editor.Text:
		return serializeText(c)
	case *editor.HardBreak:
		return &TipTapNode{Type: "hardBreak"}
	case *editor.FootnoteRef:
		return &TipTapNode{
			Type: "footnoteReference",
			Attrs: map[string]interface{}{
				"id":    c.ID,
				"label": c.Label,
			},
		}
	default:
		slog.Warn("Unknown paragraph content type for serialization", "type", c)
		return nil
	}
}

// serializeText преобразует Text в текстовую ноду с marks.
func serializeText(t *editor.Text) *TipTapNode {
	node := &TipTapNode{
		Type: "text",
		Text: t.Content,
	}

	marks := make([]TipTapMark, 0)

	if t.Strong {
		marks = append(marks, TipTapMark{Type: "bold"})
	}
	if t.Italic {
		marks = append(marks, TipTapMark{Type: "italic"})
	}
	if t.Strikethrough {
		marks = append(marks, TipTapMark{Type: "strike"})
	}
	if t.Code {
		marks = append(marks, TipTapMark{Type: "code"})
	}
	if t.URL != nil {
		marks = append(marks, TipTapMark{
			Type:  "link",
			Attrs: map[string]interface{}{"href": t.URL.String()},
		})
	}

	if len(marks) > 0 {
		node.Marks = marks
	}

	return node
}

// serializeMessage преобразует Message в message-ноду.
func serializeMessage(m *editor.Message) *TipTapNode {
	node := &TipTapNode{
		Type:  "message",
		Attrs: map[string]interface{}{"variant": m.Variant},
	}

	for _, child := range m.Content {
		if childNode := serializeBlock(child); childNode != nil {
			node.Content = append(node.Content, *childNode)
		}
	}

	return node
}

// serializeDetails преобразует Details. Порядок детей фиксирован:
// detailsSummary, затем detailsContent.
func serializeDetails(d *editor.Details) *TipTapNode {
	summary := TipTapNode{Type: "detailsSummary"}
	for _, inline := range d.Summary {
		if childNode := serializeInline(inline); childNode != nil {
			summary.Content = append(summary.Content, *childNode)
		}
	}

	content := TipTapNode{Type: "detailsContent"}
	for _, block := range d.Content {
		if childNode := serializeBlock(block); childNode != nil {
			content.Content = append(content.Content, *childNode)
		}
	}

	return &TipTapNode{
		Type:    "details",
		Attrs:   map[string]interface{}{"open": d.Open},
		Content: []TipTapNode{summary, content},
	}
}

// serializeCodeBlock преобразует CodeBlock в codeBlock-ноду.
func serializeCodeBlock(c *editor.CodeBlock) *TipTapNode {
	node := &TipTapNode{
		Type: "codeBlock",
		Attrs: map[string]interface{}{
			"language": c.Language,
		},
	}
	if c.Filename != "" {
		node.Attrs["filename"] = c.Filename
	}
	if c.Diff {
		node.Attrs["diff"] = true
	}
	if c.Content != "" {
		node.Content = []TipTapNode{{Type: "text", Text: c.Content}}
	}
	return node
}

// serializeEmbed преобразует Embed в embed-ноду.
func serializeEmbed(e *editor.Embed) *TipTapNode {
	return &TipTapNode{
		Type: "embed",
		Attrs: map[string]interface{}{
			"service": string(e.Service),
			"url":     e.URL,
		},
	}
}

// serializeTable преобразует Table в table-ноду.
func serializeTable(t *editor.Table) *TipTapNode {
	node := &TipTapNode{Type: "table"}

	for _, row := range t.Rows {
		tr := TipTapNode{Type: "tableRow"}
		for _, cell := range row {
			cellType := "tableCell"
			if cell.Header {
				cellType = "tableHeader"
			}
			td := TipTapNode{Type: cellType}
			if p := serializeParagraph(&cell.Content); p != nil {
				td.Content = []TipTapNode{*p}
			}
			tr.Content = append(tr.Content, td)
		}
		node.Content = append(node.Content, tr)
	}

	return node
}
