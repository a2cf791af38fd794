package tiptap

import (
	"log/slog"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/embed"
)

// parseText преобразует текстовую ноду в editor.Text.
func parseText(node TipTapNode) editor.Text {
	text := editor.Text{
		Content: node.Text,
	}

	if len(node.Marks) > 0 {
		applyMarks(&text, node.Marks)
	}

	return text
}

// parseParagraph преобразует параграф в editor.Paragraph.
func parseParagraph(node TipTapNode) *editor.Paragraph {
	if node.Type != "paragraph" {
		return nil
	}

	p := &editor.Paragraph{
		Content: make([]any, 0),
	}

	for _, child := range node.Content {
		switch child.Type {
		case "text":
			p.Content = append(p.Content, parseText(child))
		case "hardBreak":
			p.Content = append(p.Content, &editor.HardBreak{})
		case "footnoteReference":
			if ref := parseFootnoteReference(child); ref != nil {
				p.Content = append(p.Content, ref)
			}
		default:
			slog.Warn("Unknown paragraph child type", "type", child.Type)
		}
	}

	return p
}

// parseMessage преобразует message-ноду. Неизвестный вариант приводится к info.
func parseMessage(node TipTapNode) *editor.Message {
	variant := getAttrString(node.Attrs, "variant")
	if variant != editor.MessageAlert {
		variant = editor.MessageInfo
	}

	message := &editor.Message{Variant: variant}
	for _, child := range node.Content {
		if block := parseNode(child); block != nil {
			message.Content = append(message.Content, block)
		}
	}

	return message
}

// parseDetails преобразует details-ноду с фиксированным порядком детей:
// сначала detailsSummary, затем detailsContent.
func parseDetails(node TipTapNode) *editor.Details {
	details := &editor.Details{Open: getAttrBool(node.Attrs, "open")}

	for _, child := range node.Content {
		switch child.Type {
		case "detailsSummary":
			for _, inline := range child.Content {
				switch inline.Type {
				case "text":
					details.Summary = append(details.Summary, parseText(inline))
				case "footnoteReference":
					if ref := parseFootnoteReference(inline); ref != nil {
						details.Summary = append(details.Summary, ref)
					}
				}
			}
		case "detailsContent":
			for _, block := range child.Content {
				if parsed := parseNode(block); parsed != nil {
					details.Content = append(details.Content, parsed)
				}
			}
		default:
			slog.Warn("Unknown details child type", "type", child.Type)
		}
	}

	if len(details.Summary) == 0 {
		details.Summary = []any{editor.Text{Content: editor.DefaultDetailsTitle}}
	}

	return details
}

// parseCodeBlock преобразует блок кода с атрибутами языка, имени файла и diff-режима.
func parseCodeBlock(node TipTapNode) *editor.CodeBlock {
	if node.Type != "codeBlock" {
		return nil
	}

	var text string
	for _, child := range node.Content {
		if child.Type == "text" {
			text += child.Text
		}
	}

	code := editor.NewCodeBlock(
		getAttrString(node.Attrs, "language"),
		getAttrString(node.Attrs, "filename"),
		getAttrBool(node.Attrs, "diff"),
	)
	code.Content = text
	return code
}

// parseEmbed преобразует embed-ноду. Ноды с невалидным URL отбрасываются.
func parseEmbed(node TipTapNode) *editor.Embed {
	rawURL := embed.Sanitize(getAttrString(node.Attrs, "url"))
	if rawURL == "" {
		slog.Warn("Embed node with invalid url dropped", "url", getAttrString(node.Attrs, "url"))
		return nil
	}

	service := embed.NormalizeServiceName(getAttrString(node.Attrs, "service"))
	if service == embed.ServiceNone {
		service = embed.ServiceLink
	}

	return &editor.Embed{Service: service, URL: rawURL}
}

// parseFootnoteReference преобразует ссылку на сноску; пустая метка наследуется от id.
func parseFootnoteReference(node TipTapNode) *editor.FootnoteRef {
	id := getAttrString(node.Attrs, "id")
	if id == "" {
		return nil
	}
	return editor.NewFootnoteRef(id, getAttrString(node.Attrs, "label"))
}

// parseTable преобразует таблицу. Первая строка всегда заголовочная,
// ячейка держит ровно один параграф.
func parseTable(node TipTapNode) *editor.Table {
	table := new(editor.Table)

	for _, tr := range node.Content {
		if tr.Type != "tableRow" {
			continue
		}

		var row []editor.TableCell
		for _, td := range tr.Content {
			if td.Type != "tableCell" && td.Type != "tableHeader" {
				continue
			}

			cell := editor.TableCell{Header: td.Type == "tableHeader"}
			for _, child := range td.Content {
				if p := parseParagraph(child); p != nil {
					cell.Content = *p
					break
				}
			}
			row = append(row, cell)
		}

		table.Rows = append(table.Rows, row)
	}

	if len(table.Rows) == 0 {
		return nil
	}

	for c := range table.Rows[0] {
		table.Rows[0][c].Header = true
	}

	return table
}
