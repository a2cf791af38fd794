package palette

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
)

func TestOpenCloseLifecycle(t *testing.T) {
	p := New(DefaultCatalog(func(Range, any) {}))
	require.False(t, p.IsOpen())

	p.Open(Range{From: 0, To: 1})
	require.True(t, p.IsOpen())
	require.NotEmpty(t, p.Results())

	p.Close()
	require.False(t, p.IsOpen())
	require.Empty(t, p.Results())
}

func TestFilterNarrowsToTable(t *testing.T) {
	p := New(DefaultCatalog(func(Range, any) {}))
	p.Open(Range{From: 0, To: 1})

	p.SetQuery("tab")
	results := p.Results()
	require.Len(t, results, 1)
	require.Equal(t, "table", results[0].ID)
}

func TestFilterCaseInsensitiveKeywords(t *testing.T) {
	p := New(DefaultCatalog(func(Range, any) {}))
	p.Open(Range{From: 0, To: 1})

	p.SetQuery("SPOILER")
	results := p.Results()
	require.Len(t, results, 1)
	require.Equal(t, "details", results[0].ID)
}

func TestExecuteInsertsTable(t *testing.T) {
	var inserted any
	var gotTrigger Range

	p := New(DefaultCatalog(func(trigger Range, node any) {
		gotTrigger = trigger
		inserted = node
	}))

	p.Open(Range{From: 5, To: 6})
	p.SetQuery("tab")
	require.True(t, p.Execute())
	require.False(t, p.IsOpen())

	require.Equal(t, Range{From: 5, To: 9}, gotTrigger)

	table, ok := inserted.(*editor.Table)
	require.True(t, ok)
	require.Len(t, table.Rows, 2)
	require.Len(t, table.Rows[0], 2)
	require.True(t, table.Rows[0][0].Header)
	require.True(t, table.Rows[0][1].Header)
}

func TestSelectionClampedOnRefilter(t *testing.T) {
	p := New(DefaultCatalog(func(Range, any) {}))
	p.Open(Range{From: 0, To: 1})

	for i := 0; i < 4; i++ {
		p.MoveDown()
	}
	require.Equal(t, 4, p.Selected())

	// "сообщение" встречается у message (keyword) и alert (описание).
	p.SetQuery("сообщение")
	require.Len(t, p.Results(), 2)
	require.Equal(t, 1, p.Selected())

	p.SetQuery("tab")
	require.Len(t, p.Results(), 1)
	require.Equal(t, 0, p.Selected())
}

func TestResultsStableAcrossRefilter(t *testing.T) {
	p := New(DefaultCatalog(func(Range, any) {}))
	p.Open(Range{From: 0, To: 1})

	p.SetQuery("tab")
	snapshot := p.Results()
	require.Len(t, snapshot, 1)
	require.Equal(t, "table", snapshot[0].ID)

	p.SetQuery("")
	require.Greater(t, len(p.Results()), 1)
	require.Len(t, snapshot, 1)
	require.Equal(t, "table", snapshot[0].ID)
}

func TestCircularNavigation(t *testing.T) {
	p := New(DefaultCatalog(func(Range, any) {}))
	p.Open(Range{From: 0, To: 1})

	total := len(p.Results())
	require.Greater(t, total, 1)

	p.MoveUp()
	require.Equal(t, total-1, p.Selected())

	p.MoveDown()
	require.Equal(t, 0, p.Selected())
}

func TestMaxResults(t *testing.T) {
	catalog := make([]Item, 0, 12)
	for i := 0; i < 12; i++ {
		catalog = append(catalog, Item{ID: "x", Title: "command"})
	}

	p := New(catalog)
	p.Open(Range{From: 0, To: 1})
	require.Len(t, p.Results(), DefaultMaxResults)

	p.SetMaxResults(3)
	require.Len(t, p.Results(), 3)
}

func TestExecuteWithNoResults(t *testing.T) {
	p := New(DefaultCatalog(func(Range, any) {}))
	p.Open(Range{From: 0, To: 1})
	p.SetQuery("nothing matches this")
	require.Empty(t, p.Results())
	require.False(t, p.Execute())
}
