package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/embed"
)

func sampleDocument() *Document {
	return &Document{Blocks: []any{
		&Paragraph{Content: []any{
			Text{Content: "Hello "},
			Text{Content: "bold", Strong: true},
			&HardBreak{},
			NewFootnoteRef("1", ""),
		}},
		&Message{Variant: MessageAlert, Content: []any{
			&Paragraph{Content: []any{Text{Content: "warning"}}},
		}},
		&Details{Open: true,
			Summary: []any{Text{Content: "Подробности"}},
			Content: []any{&Paragraph{Content: []any{Text{Content: "hidden"}}}},
		},
		NewCodeBlock("go", "main.go", true),
		&Embed{Service: embed.ServiceYoutube, URL: "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"},
		NewTable(2, 2),
	}}
}

func TestRenderParseFixpoint(t *testing.T) {
	first := sampleDocument().HTML()

	parsed, err := ParseDocument(strings.NewReader(first))
	require.NoError(t, err)

	second := parsed.HTML()
	require.Equal(t, first, second)

	reparsed, err := ParseDocument(strings.NewReader(second))
	require.NoError(t, err)
	require.Equal(t, second, reparsed.HTML())
}

func TestParseUnknownMessageVariant(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(
		`<aside data-message="" data-variant="warning"><p>text</p></aside>`))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)

	message, ok := doc.Blocks[0].(*Message)
	require.True(t, ok)
	require.Equal(t, MessageInfo, message.Variant)
}

func TestParseEmbedBadURLDropped(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(
		`<figure data-embed="" data-service="youtube" data-url="ftp://example.com/x"></figure>`))
	require.NoError(t, err)
	require.Empty(t, doc.Blocks)
}

func TestParseFootnoteLabelDefaultsToID(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(
		`<p><sup data-footnote-ref="" data-id="7"></sup></p>`))
	require.NoError(t, err)

	p := doc.Blocks[0].(*Paragraph)
	ref := p.Content[0].(*FootnoteRef)
	require.Equal(t, "7", ref.ID)
	require.Equal(t, "7", ref.Label)
}

func TestNewDetailsDefaults(t *testing.T) {
	d := NewDetails("")
	require.False(t, d.Open)
	require.Equal(t, DefaultDetailsTitle, plainText(d.Summary))
	require.Len(t, d.Content, 1)
}

func TestNewTableClampsAndHeader(t *testing.T) {
	table := NewTable(0, 3)
	require.Len(t, table.Rows, 1)
	require.Len(t, table.Rows[0], 3)
	for _, cell := range table.Rows[0] {
		require.True(t, cell.Header)
	}

	table = NewTable(3, 2)
	require.Len(t, table.Rows, 3)
	require.True(t, table.Rows[0][0].Header)
	require.False(t, table.Rows[1][0].Header)
}

func TestToggleKeepsContent(t *testing.T) {
	d := NewDetails("note")
	d.Content = []any{&Paragraph{Content: []any{Text{Content: "body"}}}}

	d.Toggle()
	require.True(t, d.Open)
	require.Len(t, d.Content, 1)

	d.Toggle()
	require.False(t, d.Open)
	require.Len(t, d.Content, 1)
}

func TestDissolveDetails(t *testing.T) {
	doc := &Document{Blocks: []any{
		&Details{
			Summary: []any{Text{Content: "T"}},
			Content: []any{
				&Paragraph{Content: []any{Text{Content: "A"}}},
				&Paragraph{Content: []any{Text{Content: "B"}}},
			},
		},
	}}

	require.True(t, doc.DissolveDetails(0))
	require.Len(t, doc.Blocks, 3)
	require.Equal(t, "T", plainText(doc.Blocks[0].(*Paragraph).Content))
	require.Equal(t, "A", plainText(doc.Blocks[1].(*Paragraph).Content))
	require.Equal(t, "B", plainText(doc.Blocks[2].(*Paragraph).Content))
}

func TestDissolveDetailsEmptySummary(t *testing.T) {
	doc := &Document{Blocks: []any{
		&Details{
			Summary: []any{Text{Content: ""}},
			Content: []any{&Paragraph{Content: []any{Text{Content: "A"}}}},
		},
	}}

	require.True(t, doc.DissolveDetails(0))
	require.Len(t, doc.Blocks, 1)
	require.Equal(t, "A", plainText(doc.Blocks[0].(*Paragraph).Content))
}

func TestDissolveDetailsCollapsedKeepsContent(t *testing.T) {
	doc := &Document{Blocks: []any{
		&Details{
			Open:    false,
			Summary: []any{Text{Content: "closed"}},
			Content: []any{&Paragraph{Content: []any{Text{Content: "still here"}}}},
		},
	}}

	require.True(t, doc.DissolveDetails(0))
	require.Len(t, doc.Blocks, 2)
	require.Equal(t, "still here", plainText(doc.Blocks[1].(*Paragraph).Content))
}

func TestDissolveDetailsNotDetails(t *testing.T) {
	doc := &Document{Blocks: []any{&Paragraph{}}}
	require.False(t, doc.DissolveDetails(0))
	require.False(t, doc.DissolveDetails(5))
}

func TestClampSelection(t *testing.T) {
	doc := &Document{Blocks: []any{
		&Details{
			Open:    false,
			Summary: []any{Text{Content: "head"}},
			Content: []any{&Paragraph{Content: []any{Text{Content: "hidden"}}}},
		},
	}}

	clamped := doc.ClampSelection(Selection{Block: 0, Anchor: 9, Head: 9})
	require.Equal(t, Selection{Block: 0, Anchor: 4, Head: 4}, clamped)

	inside := doc.ClampSelection(Selection{Block: 0, Anchor: 2, Head: 2})
	require.Equal(t, Selection{Block: 0, Anchor: 2, Head: 2}, inside)

	doc.Blocks[0].(*Details).Open = true
	open := doc.ClampSelection(Selection{Block: 0, Anchor: 9, Head: 9})
	require.Equal(t, Selection{Block: 0, Anchor: 9, Head: 9}, open)
}

func TestInterceptPaste(t *testing.T) {
	base := PasteContext{SelectionEmpty: true, InPlainBlock: true}

	t.Run("youtube url", func(t *testing.T) {
		ctx := base
		ctx.ClipboardText = "https://youtu.be/dQw4w9WgXcQ\n"
		node := InterceptPaste(ctx)
		require.NotNil(t, node)
		require.Equal(t, embed.ServiceYoutube, node.Service)
		require.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", node.URL)
	})

	t.Run("clipboard preferred over slice", func(t *testing.T) {
		ctx := base
		ctx.ClipboardText = "https://youtu.be/dQw4w9WgXcQ"
		ctx.SliceText = "plain text"
		require.NotNil(t, InterceptPaste(ctx))
	})

	t.Run("slice fallback", func(t *testing.T) {
		ctx := base
		ctx.SliceText = "https://youtu.be/dQw4w9WgXcQ"
		require.NotNil(t, InterceptPaste(ctx))
	})

	t.Run("interior whitespace", func(t *testing.T) {
		ctx := base
		ctx.ClipboardText = "see https://youtu.be/dQw4w9WgXcQ"
		require.Nil(t, InterceptPaste(ctx))
	})

	t.Run("unknown host stays plain", func(t *testing.T) {
		ctx := base
		ctx.ClipboardText = "https://example.com/page"
		require.Nil(t, InterceptPaste(ctx))
	})

	t.Run("selection not empty", func(t *testing.T) {
		ctx := base
		ctx.SelectionEmpty = false
		ctx.ClipboardText = "https://youtu.be/dQw4w9WgXcQ"
		require.Nil(t, InterceptPaste(ctx))
	})

	t.Run("code block", func(t *testing.T) {
		ctx := base
		ctx.InPlainBlock = false
		ctx.ClipboardText = "https://youtu.be/dQw4w9WgXcQ"
		require.Nil(t, InterceptPaste(ctx))
	})
}

func TestMarkdownProjection(t *testing.T) {
	doc := &Document{Blocks: []any{
		&Paragraph{Content: []any{Text{Content: "intro"}}},
		&Message{Variant: MessageAlert, Content: []any{
			&Paragraph{Content: []any{Text{Content: "danger"}}},
		}},
		&CodeBlock{Language: "go", Filename: "main.go", Diff: true, Content: "package main"},
		&Embed{Service: embed.ServiceTweet, URL: "https://twitter.com/a/status/1"},
	}}

	out := doc.Markdown()
	require.Contains(t, out, "intro")
	require.Contains(t, out, ":::message alert")
	require.Contains(t, out, ":::")
	require.Contains(t, out, "```go:main.go[diff]")
	require.Contains(t, out, "package main")
	require.Contains(t, out, "@[tweet](https://twitter.com/a/status/1)")
}
