package editor

import (
	"strings"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/embed"
)

// PasteContext - состояние редактора в момент вставки из буфера обмена.
type PasteContext struct {
	// SelectionEmpty - выделение схлопнуто в курсор.
	SelectionEmpty bool
	// InPlainBlock - курсор находится в обычном параграфе, а не в коде,
	// таблице или другой специальной ноде.
	InPlainBlock bool
	// ClipboardText - текстовое содержимое буфера обмена.
	ClipboardText string
	// SliceText - текстовая проекция вставляемого фрагмента документа.
	SliceText string
}

// InterceptPaste решает, превращается ли вставка в embed-ноду.
// Перехват срабатывает только при схлопнутом выделении в обычном блоке,
// когда вставляемый текст - одиночный URL известного провайдера. Во всех
// остальных случаях возвращается nil и вставка идет обычным путем.
func InterceptPaste(ctx PasteContext) *Embed {
	if !ctx.SelectionEmpty || !ctx.InPlainBlock {
		return nil
	}

	payload := ctx.ClipboardText
	if payload == "" {
		payload = ctx.SliceText
	}

	// Хвостовые переводы строки от копирования адресной строки не мешают,
	// пробелы внутри означают, что вставляется не URL.
	payload = strings.TrimRight(payload, " \t\r\n")
	if payload == "" || strings.ContainsAny(payload, " \t\r\n") {
		return nil
	}

	attrs, ok := embed.Resolve("", payload)
	if !ok || attrs.Service == embed.ServiceLink {
		return nil
	}

	return &Embed{Service: attrs.Service, URL: attrs.URL}
}
