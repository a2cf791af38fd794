package palette

import (
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
)

// InsertFunc вставляет ноду на место диапазона триггера.
type InsertFunc func(trigger Range, node any)

// DefaultCatalog - стандартный набор команд вставки нод.
func DefaultCatalog(insert InsertFunc) []Item {
	return []Item{
		{
			ID:          "message",
			Title:       "Message",
			Description: "Блок-сообщение",
			Icon:        "info",
			Keywords:    []string{"callout", "note", "сообщение"},
			Command: func(trigger Range) {
				insert(trigger, editor.NewMessage(editor.MessageInfo))
			},
		},
		{
			ID:          "alert",
			Title:       "Alert",
			Description: "Предупреждающее сообщение",
			Icon:        "warning",
			Keywords:    []string{"warning", "danger", "предупреждение"},
			Command: func(trigger Range) {
				insert(trigger, editor.NewMessage(editor.MessageAlert))
			},
		},
		{
			ID:          "details",
			Title:       "Details",
			Description: "Сворачиваемый блок",
			Icon:        "chevron-down",
			Keywords:    []string{"spoiler", "collapse", "аккордеон"},
			Command: func(trigger Range) {
				insert(trigger, editor.NewDetails(""))
			},
		},
		{
			ID:          "table",
			Title:       "Table",
			Description: "Таблица со строкой заголовков",
			Icon:        "table",
			Keywords:    []string{"grid", "rows", "таблица"},
			Command: func(trigger Range) {
				insert(trigger, editor.NewTable(2, 2))
			},
		},
		{
			ID:          "code",
			Title:       "Code block",
			Description: "Блок кода с подсветкой",
			Icon:        "code",
			Keywords:    []string{"fence", "snippet", "код"},
			Command: func(trigger Range) {
				insert(trigger, editor.NewCodeBlock("", "", false))
			},
		},
	}
}
