package tiptap

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
)

// ErrNotDocument возвращается, когда корневая нода JSON не является документом.
var ErrNotDocument = errors.New("root node is not a doc")

// ParseJSON парсит JSON контент редактора в структуру editor.Document.
// Принимает io.Reader с JSON данными и возвращает распарсенный документ.
// Неизвестные типы нод пропускаются с предупреждением в лог.
func ParseJSON(r io.Reader) (*editor.Document, error) {
	var tipTapDoc TipTapDocument
	if err := json.NewDecoder(r).Decode(&tipTapDoc); err != nil {
		return nil, err
	}

	if tipTapDoc.Type != "doc" {
		return nil, ErrNotDocument
	}

	doc := &editor.Document{
		Blocks: make([]any, 0),
	}

	for _, node := range tipTapDoc.Content {
		block := parseNode(node)
		if block != nil {
			doc.Blocks = append(doc.Blocks, block)
		}
	}

	return doc, nil
}

// parseNode парсит отдельную ноду и возвращает соответствующий блок editor.
func parseNode(node TipTapNode) any {
	switch node.Type {
	case "paragraph":
		if p := parseParagraph(node); p != nil {
			return p
		}
		return nil
	case "message":
		return parseMessage(node)
	case "details":
		return parseDetails(node)
	case "codeBlock":
		if code := parseCodeBlock(node); code != nil {
			return code
		}
		return nil
	case "embed":
		if e := parseEmbed(node); e != nil {
			return e
		}
		return nil
	case "table":
		if t := parseTable(node); t != nil {
			return t
		}
		return nil
	default:
		slog.Warn("Unknown node type", "type", node.Type)
		return nil
	}
}
