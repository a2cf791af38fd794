package tiptap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/embed"
)

const articleJSON = `{
  "type": "doc",
  "content": [
    {
      "type": "paragraph",
      "content": [
        {"type": "text", "text": "Hello "},
        {"type": "text", "text": "world", "marks": [{"type": "bold"}, {"type": "italic"}]},
        {"type": "hardBreak"},
        {"type": "footnoteReference", "attrs": {"id": "1"}}
      ]
    },
    {
      "type": "message",
      "attrs": {"variant": "alert"},
      "content": [
        {"type": "paragraph", "content": [{"type": "text", "text": "warning"}]}
      ]
    },
    {
      "type": "details",
      "attrs": {"open": true},
      "content": [
        {"type": "detailsSummary", "content": [{"type": "text", "text": "More"}]},
        {"type": "detailsContent", "content": [
          {"type": "paragraph", "content": [{"type": "text", "text": "hidden"}]}
        ]}
      ]
    },
    {
      "type": "codeBlock",
      "attrs": {"language": "go", "filename": "main.go", "diff": true},
      "content": [{"type": "text", "text": "package main"}]
    },
    {
      "type": "embed",
      "attrs": {"service": "youtube", "url": "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"}
    },
    {
      "type": "table",
      "content": [
        {"type": "tableRow", "content": [
          {"type": "tableHeader", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "h1"}]}]},
          {"type": "tableHeader", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "h2"}]}]}
        ]},
        {"type": "tableRow", "content": [
          {"type": "tableCell", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "a"}]}]},
          {"type": "tableCell", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "b"}]}]}
        ]}
      ]
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	doc, err := ParseJSON(strings.NewReader(articleJSON))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 6)

	p, ok := doc.Blocks[0].(*editor.Paragraph)
	require.True(t, ok)
	require.Len(t, p.Content, 4)

	bold := p.Content[1].(editor.Text)
	require.Equal(t, "world", bold.Content)
	require.True(t, bold.Strong)
	require.True(t, bold.Italic)

	ref := p.Content[3].(*editor.FootnoteRef)
	require.Equal(t, "1", ref.ID)
	require.Equal(t, "1", ref.Label)

	message := doc.Blocks[1].(*editor.Message)
	require.Equal(t, editor.MessageAlert, message.Variant)
	require.Len(t, message.Content, 1)

	details := doc.Blocks[2].(*editor.Details)
	require.True(t, details.Open)
	require.Len(t, details.Content, 1)

	code := doc.Blocks[3].(*editor.CodeBlock)
	require.Equal(t, "go", code.Language)
	require.Equal(t, "main.go", code.Filename)
	require.True(t, code.Diff)
	require.Equal(t, "package main", code.Content)

	embedNode := doc.Blocks[4].(*editor.Embed)
	require.Equal(t, embed.ServiceYoutube, embedNode.Service)

	table := doc.Blocks[5].(*editor.Table)
	require.Len(t, table.Rows, 2)
	require.True(t, table.Rows[0][0].Header)
	require.False(t, table.Rows[1][0].Header)
}

func TestParseJSONRejectsNonDocument(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`{"type": "paragraph"}`))
	require.ErrorIs(t, err, ErrNotDocument)
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`{not json`))
	require.Error(t, err)
}

func TestParseUnknownNodeSkipped(t *testing.T) {
	doc, err := ParseJSON(strings.NewReader(`{
		"type": "doc",
		"content": [
			{"type": "horizontalRule"},
			{"type": "paragraph", "content": [{"type": "text", "text": "kept"}]}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
}

func TestParseMessageUnknownVariant(t *testing.T) {
	doc, err := ParseJSON(strings.NewReader(`{
		"type": "doc",
		"content": [{"type": "message", "attrs": {"variant": "warning"}}]
	}`))
	require.NoError(t, err)

	message := doc.Blocks[0].(*editor.Message)
	require.Equal(t, editor.MessageInfo, message.Variant)
}

func TestParseCodeBlockDefaults(t *testing.T) {
	doc, err := ParseJSON(strings.NewReader(`{
		"type": "doc",
		"content": [{"type": "codeBlock"}]
	}`))
	require.NoError(t, err)

	code := doc.Blocks[0].(*editor.CodeBlock)
	require.Equal(t, "text", code.Language)
	require.Empty(t, code.Filename)
	require.False(t, code.Diff)
}

func TestParseEmbedInvalidURLDropped(t *testing.T) {
	doc, err := ParseJSON(strings.NewReader(`{
		"type": "doc",
		"content": [{"type": "embed", "attrs": {"service": "youtube", "url": "javascript:alert(1)"}}]
	}`))
	require.NoError(t, err)
	require.Empty(t, doc.Blocks)
}
