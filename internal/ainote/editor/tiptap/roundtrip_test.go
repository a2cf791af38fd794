package tiptap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Сериализация после разбора и повторный разбор должны давать то же дерево.
func TestRoundtrip(t *testing.T) {
	doc, err := ParseJSON(strings.NewReader(articleJSON))
	require.NoError(t, err)

	data, err := Serialize(doc)
	require.NoError(t, err)

	again, err := ParseJSON(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, doc, again)

	dataAgain, err := Serialize(again)
	require.NoError(t, err)
	require.JSONEq(t, string(data), string(dataAgain))
}
