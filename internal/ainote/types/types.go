// Пакет types содержит типы данных, сохраняемые в БД: санитизируемый HTML
// статьи и структурированное JSON-дерево документа с валидацией на входе.
package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/tiptap"
	policy "github.com/aisa-it/ainote/ainote.go/internal/ainote/redactor-policy"
)

// RedactorHTML - HTML-тело статьи. Санитизируется при десериализации из JSON
// и при записи в БД, если санитизация еще не выполнялась.
type RedactorHTML struct {
	Body             string
	stripped         string
	AlreadySanitized bool
}

func (r RedactorHTML) Value() (driver.Value, error) {
	if !r.AlreadySanitized {
		return policy.UgcPolicy.Sanitize(r.Body), nil
	}
	return r.Body, nil
}

func (r *RedactorHTML) Scan(value interface{}) error {
	if s, ok := value.(string); ok {
		r.Body = s
		return nil
	}
	return errors.New("unsupported type")
}

func (r RedactorHTML) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(r.Body); err != nil {
		return nil, err
	}

	return bytes.TrimSpace(buf.Bytes()), nil
}

func (r *RedactorHTML) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Body); err != nil {
		return err
	}
	r.Body = policy.UgcPolicy.Sanitize(r.Body)
	r.Body = RemoveInvisibleChars(r.Body)
	r.AlreadySanitized = true

	return nil
}

// StripTags возвращает текст без HTML-тегов для поиска.
func (r *RedactorHTML) StripTags() string {
	if r.stripped == "" {
		r.stripped = policy.StripTagsPolicy.Sanitize(r.Body)
	}
	return r.stripped
}

func (r RedactorHTML) String() string {
	return r.Body
}

func (RedactorHTML) GormDataType() string {
	return "text"
}

// EditorDocument - структурированное JSON-дерево документа. Невалидный
// payload отклоняется при десериализации, до записи в хранилище.
type EditorDocument struct {
	Raw []byte

	doc *editor.Document
}

// NewEditorDocument строит сохраняемое дерево из документа редактора.
func NewEditorDocument(doc *editor.Document) (EditorDocument, error) {
	raw, err := tiptap.Serialize(doc)
	if err != nil {
		return EditorDocument{}, err
	}
	return EditorDocument{Raw: raw, doc: doc}, nil
}

// Document возвращает распарсенное дерево документа.
func (d *EditorDocument) Document() (*editor.Document, error) {
	if d.doc != nil {
		return d.doc, nil
	}
	if len(d.Raw) == 0 {
		return &editor.Document{}, nil
	}

	doc, err := tiptap.ParseJSON(bytes.NewReader(d.Raw))
	if err != nil {
		return nil, err
	}
	d.doc = doc
	return doc, nil
}

func (d EditorDocument) Value() (driver.Value, error) {
	if len(d.Raw) == 0 {
		return nil, nil
	}
	return string(d.Raw), nil
}

func (d *EditorDocument) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Raw = nil
	case []byte:
		d.Raw = bytes.Clone(v)
	case string:
		d.Raw = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to scan editor document value:", value))
	}
	d.doc = nil
	return nil
}

func (d EditorDocument) MarshalJSON() ([]byte, error) {
	if len(d.Raw) == 0 {
		return []byte("null"), nil
	}
	return d.Raw, nil
}

// UnmarshalJSON валидирует дерево при приеме: битый JSON или не-doc корень
// отклоняются и не попадают в хранилище.
func (d *EditorDocument) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Raw = nil
		d.doc = nil
		return nil
	}

	doc, err := tiptap.ParseJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}

	d.Raw = bytes.Clone(data)
	d.doc = doc
	return nil
}

func (EditorDocument) GormDataType() string {
	return "jsonb"
}

// RemoveInvisibleChars удаляет невидимые символы из пользовательского текста.
func RemoveInvisibleChars(s string) string {
	invisible := []string{
		"​",
		"‌",
		"‍",
		"\uFEFF",
	}

	for _, ch := range invisible {
		s = strings.ReplaceAll(s, ch, "")
	}
	return s
}
