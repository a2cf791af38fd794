// Пакет palette реализует палитру slash-команд редактора: машину состояний
// открытия, фильтрацию команд по подстроке и клавиатурную навигацию.
package palette

import "strings"

// Range - диапазон текста, вызвавшего палитру. Передается команде, чтобы
// она могла удалить триггер перед вставкой содержимого.
type Range struct {
	From int
	To   int
}

// Item - команда палитры.
type Item struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Keywords    []string
	Command     func(trigger Range)
}

// DefaultMaxResults - ограничение списка результатов по умолчанию.
const DefaultMaxResults = 8

// Palette - машина состояний палитры. closed -> open (по "/" в начале строки)
// -> filtering -> closed (Escape, выполнение команды, потеря триггера).
type Palette struct {
	catalog    []Item
	maxResults int

	open     bool
	query    string
	trigger  Range
	filtered []Item
	selected int
}

// New создает палитру над каталогом команд.
func New(catalog []Item) *Palette {
	return &Palette{
		catalog:    catalog,
		maxResults: DefaultMaxResults,
	}
}

// SetMaxResults меняет ограничение списка результатов.
func (p *Palette) SetMaxResults(n int) {
	if n < 1 {
		n = 1
	}
	p.maxResults = n
	if p.open {
		p.refilter()
	}
}

// Open открывает палитру по вводу "/" в начале строки.
func (p *Palette) Open(trigger Range) {
	p.open = true
	p.query = ""
	p.trigger = trigger
	p.selected = 0
	p.refilter()
}

// Close закрывает палитру: по Escape либо при потере триггера.
func (p *Palette) Close() {
	p.open = false
	p.query = ""
	p.filtered = nil
	p.selected = 0
}

// IsOpen сообщает, открыта ли палитра.
func (p *Palette) IsOpen() bool {
	return p.open
}

// SetQuery обновляет строку фильтра при дальнейшем вводе.
func (p *Palette) SetQuery(query string) {
	if !p.open {
		return
	}
	p.query = query
	p.trigger.To = p.trigger.From + 1 + len(query)
	p.refilter()
}

// Results возвращает текущий отфильтрованный список.
func (p *Palette) Results() []Item {
	return p.filtered
}

// Selected возвращает индекс выбранного элемента.
func (p *Palette) Selected() int {
	return p.selected
}

// MoveDown переводит выбор на следующий элемент, циклически.
func (p *Palette) MoveDown() {
	if len(p.filtered) == 0 {
		return
	}
	p.selected = (p.selected + 1) % len(p.filtered)
}

// MoveUp переводит выбор на предыдущий элемент, циклически.
func (p *Palette) MoveUp() {
	if len(p.filtered) == 0 {
		return
	}
	p.selected = (p.selected - 1 + len(p.filtered)) % len(p.filtered)
}

// Execute выполняет выбранную команду с диапазоном триггера и закрывает
// палитру. Возвращает false, если выполнять нечего.
func (p *Palette) Execute() bool {
	if !p.open || p.selected >= len(p.filtered) {
		return false
	}

	item := p.filtered[p.selected]
	trigger := p.trigger
	p.Close()

	if item.Command != nil {
		item.Command(trigger)
	}
	return true
}

// refilter пересчитывает список и удерживает выбор в его границах.
// Список строится заново, чтобы срезы из прошлых Results() не менялись
// под читателем при дальнейшем вводе.
func (p *Palette) refilter() {
	query := strings.ToLower(p.query)

	filtered := make([]Item, 0, p.maxResults)
	for _, item := range p.catalog {
		if query == "" || strings.Contains(searchText(item), query) {
			filtered = append(filtered, item)
			if len(filtered) == p.maxResults {
				break
			}
		}
	}
	p.filtered = filtered

	if len(p.filtered) == 0 {
		p.selected = 0
	} else if p.selected >= len(p.filtered) {
		p.selected = len(p.filtered) - 1
	}
}

func searchText(item Item) string {
	parts := append([]string{item.Title, item.Description}, item.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}
