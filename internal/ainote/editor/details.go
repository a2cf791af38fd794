package editor

// Selection - диапазон выделения в координатах блоков документа:
// индекс блока верхнего уровня и смещения внутри него.
type Selection struct {
	Block  int
	Anchor int
	Head   int
}

// Toggle переключает состояние details-ноды. Содержимое не изменяется:
// сворачивание только скрывает его.
func (d *Details) Toggle() {
	d.Open = !d.Open
}

// DissolveDetails растворяет details-ноду по индексу блока: заголовок
// становится обычным параграфом (если непустой), содержимое поднимается
// на верхний уровень. Содержимое никогда не теряется, даже у свернутой ноды.
// Возвращает false, если блок по индексу не details.
func (doc *Document) DissolveDetails(index int) bool {
	if index < 0 || index >= len(doc.Blocks) {
		return false
	}
	details, ok := doc.Blocks[index].(*Details)
	if !ok {
		return false
	}

	replacement := make([]any, 0, len(details.Content)+1)
	if plainText(details.Summary) != "" {
		replacement = append(replacement, &Paragraph{Content: details.Summary})
	}
	replacement = append(replacement, details.Content...)

	doc.Blocks = append(doc.Blocks[:index], append(replacement, doc.Blocks[index+1:]...)...)
	return true
}

// ClampSelection корректирует выделение, попавшее внутрь содержимого
// свернутой details-ноды: курсор переносится сразу за заголовок, чтобы
// невидимый текст нельзя было редактировать вслепую.
func (doc *Document) ClampSelection(sel Selection) Selection {
	if sel.Block < 0 || sel.Block >= len(doc.Blocks) {
		return sel
	}
	details, ok := doc.Blocks[sel.Block].(*Details)
	if !ok || details.Open {
		return sel
	}

	summaryEnd := len(plainText(details.Summary))
	if sel.Anchor > summaryEnd || sel.Head > summaryEnd {
		sel.Anchor = summaryEnd
		sel.Head = summaryEnd
	}
	return sel
}
