// Пакет editor определяет модель документа статьи: замкнутый набор типов нод
// (параграфы, сообщения, сворачиваемые details, блоки кода, таблицы, сноски,
// embed-ноды), правила их сериализации в HTML и обратного разбора, а также
// поведенческие операции редактора (растворение details, перехват вставки,
// markdown-проекция).
//
// Основные возможности:
//   - Замкнутое перечисление видов нод с исчерпывающим switch при обработке.
//   - Рендеринг дерева документа в HTML с data-атрибутами.
//   - Разбор HTML обратно в дерево с восстановлением атрибутов.
//   - Операции над details-нодой: переключение, растворение, коррекция выделения.
//   - Перехват вставки URL из буфера обмена.
//   - Проекция дерева в markdown.
package editor

import (
	"net/url"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/embed"
)

// DefaultDetailsTitle - заголовок details-ноды по умолчанию.
const DefaultDetailsTitle = "Details"

// Варианты message-ноды.
const (
	MessageInfo  = "info"
	MessageAlert = "alert"
)

// Document - дерево документа статьи. Блоки верхнего уровня обрабатываются
// через type switch по замкнутому набору типов.
type Document struct {
	Blocks []any
}

// Text - текстовый фрагмент с форматированием.
type Text struct {
	Content string

	Strong        bool
	Italic        bool
	Strikethrough bool
	Code          bool

	URL *url.URL
}

// HardBreak - перенос строки внутри параграфа.
type HardBreak struct{}

// Paragraph - параграф. Content содержит Text, *HardBreak и *FootnoteRef.
type Paragraph struct {
	Content []any
}

// Message - блок-сообщение (callout). Неизвестный вариант при разборе
// HTML приводится к MessageInfo.
type Message struct {
	Variant string
	Content []any
}

// Details - сворачиваемый блок. Порядок детей фиксирован: сначала
// inline-заголовок Summary, затем блочное содержимое Content.
// Переключение Open не затрагивает содержимое.
type Details struct {
	Open    bool
	Summary []any
	Content []any
}

// CodeBlock - блок кода с подсветкой, именем файла и diff-режимом.
type CodeBlock struct {
	Language string // по умолчанию "text"
	Filename string // по умолчанию ""
	Diff     bool   // по умолчанию false
	Content  string
}

// Embed - встраиваемый внешний ресурс. URL всегда санитизирован,
// Service - известный провайдер либо fallback "link". Атрибуты неизменяемы:
// правка возможна только полной заменой ноды.
type Embed struct {
	Service embed.Service
	URL     string
}

// Attributes возвращает атрибуты ноды для построения iframe.
func (e *Embed) Attributes() embed.Attributes {
	return embed.Attributes{Service: e.Service, URL: e.URL}
}

// FootnoteRef - inline-ссылка на сноску, атомарная (без редактируемых детей).
type FootnoteRef struct {
	ID    string
	Label string // по умолчанию совпадает с ID
}

// TableCell - ячейка таблицы, держит ровно один параграф.
type TableCell struct {
	Header  bool
	Content Paragraph
}

// Table - таблица с обязательной строкой заголовков (Rows[0]).
type Table struct {
	Rows [][]TableCell
}

// NewMessage создает message-ноду с одним пустым параграфом.
func NewMessage(variant string) *Message {
	if variant != MessageAlert {
		variant = MessageInfo
	}
	return &Message{
		Variant: variant,
		Content: []any{&Paragraph{}},
	}
}

// NewDetails создает details-ноду с заголовком title и пустым параграфом
// в содержимом. Пустой title заменяется заголовком по умолчанию.
func NewDetails(title string) *Details {
	if title == "" {
		title = DefaultDetailsTitle
	}
	return &Details{
		Summary: []any{Text{Content: title}},
		Content: []any{&Paragraph{}},
	}
}

// NewTable создает таблицу rows x cols с обязательной строкой заголовков.
// Минимальный размер - 1x1; первая строка всегда заголовочная.
func NewTable(rows, cols int) *Table {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	t := &Table{Rows: make([][]TableCell, rows)}
	for r := range t.Rows {
		t.Rows[r] = make([]TableCell, cols)
		for c := range t.Rows[r] {
			t.Rows[r][c] = TableCell{Header: r == 0}
		}
	}
	return t
}

// NewCodeBlock создает блок кода, подставляя язык по умолчанию.
func NewCodeBlock(language, filename string, diff bool) *CodeBlock {
	if language == "" {
		language = "text"
	}
	return &CodeBlock{Language: language, Filename: filename, Diff: diff}
}

// NewFootnoteRef создает ссылку на сноску; пустая метка наследуется от id.
func NewFootnoteRef(id, label string) *FootnoteRef {
	if label == "" {
		label = id
	}
	return &FootnoteRef{ID: id, Label: label}
}

// plainText собирает чистый текст inline-содержимого.
func plainText(content []any) string {
	var out string
	for _, c := range content {
		switch v := c.(type) {
		case Text:
			out += v.Content
		case *Text:
			out += v.Content
		case *FootnoteRef:
			out += "[" + v.Label + "]"
		case *HardBreak:
			out += "\n"
		}
	}
	return out
}
