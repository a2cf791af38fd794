package editor

import (
	"io"
	"strings"

	md "github.com/nao1215/markdown"
)

// WriteMarkdown записывает markdown-проекцию документа. Проекция хранится
// рядом с деревом документа и используется для экспорта и поиска.
func WriteMarkdown(w io.Writer, document *Document) error {
	builder := md.NewMarkdown(w)
	for _, block := range document.Blocks {
		markdownBlock(builder, block)
	}
	return builder.Build()
}

// Markdown возвращает markdown-проекцию документа строкой.
func (d *Document) Markdown() string {
	var sb strings.Builder
	if err := WriteMarkdown(&sb, d); err != nil {
		return ""
	}
	return sb.String()
}

func markdownBlock(builder *md.Markdown, block any) {
	switch b := block.(type) {
	case *Paragraph:
		builder.PlainText(inlineMarkdown(b.Content))
	case Paragraph:
		builder.PlainText(inlineMarkdown(b.Content))
	case *Message:
		builder.PlainText(":::message" + messageSuffix(b.Variant))
		for _, child := range b.Content {
			markdownBlock(builder, child)
		}
		builder.PlainText(":::")
	case *Details:
		var content strings.Builder
		for _, child := range b.Content {
			content.WriteString(blockPlainText(child) + "\n")
		}
		builder.Details(plainText(b.Summary), strings.TrimRight(content.String(), "\n"))
	case *CodeBlock:
		builder.CodeBlocks(md.SyntaxHighlight(fenceToken(b)), b.Content)
	case *Embed:
		builder.PlainText("@[" + string(b.Service) + "](" + b.URL + ")")
	case *Table:
		markdownTable(builder, b)
	}
}

// fenceToken собирает инфо-строку ограждения: язык, опционально имя файла
// через двоеточие и маркер diff-режима.
func fenceToken(b *CodeBlock) string {
	token := b.Language
	if b.Filename != "" {
		token += ":" + b.Filename
	}
	if b.Diff {
		token += "[diff]"
	}
	return token
}

func messageSuffix(variant string) string {
	if variant == MessageAlert {
		return " alert"
	}
	return ""
}

func markdownTable(builder *md.Markdown, t *Table) {
	if len(t.Rows) == 0 {
		return
	}

	set := md.TableSet{}
	for _, cell := range t.Rows[0] {
		set.Header = append(set.Header, inlineMarkdown(cell.Content.Content))
	}
	for _, row := range t.Rows[1:] {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, inlineMarkdown(cell.Content.Content))
		}
		set.Rows = append(set.Rows, cells)
	}

	builder.CustomTable(set, md.TableOptions{AutoWrapText: false})
}

func inlineMarkdown(content []any) string {
	var sb strings.Builder
	for _, node := range content {
		switch n := node.(type) {
		case Text:
			sb.WriteString(textMarkdown(n))
		case *Text:
			sb.WriteString(textMarkdown(*n))
		case *HardBreak:
			sb.WriteString("\n")
		case *FootnoteRef:
			sb.WriteString("[^" + n.ID + "]")
		}
	}
	return sb.String()
}

func textMarkdown(text Text) string {
	out := text.Content
	if text.Code {
		out = md.Code(out)
	}
	if text.Strong {
		out = md.Bold(out)
	}
	if text.Italic {
		out = md.Italic(out)
	}
	if text.Strikethrough {
		out = md.Strikethrough(out)
	}
	if text.URL != nil {
		out = md.Link(out, text.URL.String())
	}
	return out
}

func blockPlainText(block any) string {
	switch b := block.(type) {
	case *Paragraph:
		return plainText(b.Content)
	case Paragraph:
		return plainText(b.Content)
	case *CodeBlock:
		return b.Content
	case *Embed:
		return b.URL
	}
	return ""
}
