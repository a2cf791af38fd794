// Пакет inputrules распознает текстовые шаблоны, набираемые в начале строки
// и завершаемые пробелом, и заменяет их нодами документа: сообщения, details,
// таблицы, блоки кода и embed-ноды.
package inputrules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/editor/embed"
)

// Match - результат срабатывания правила: заменяемый диапазон строки
// и созданная нода.
type Match struct {
	Start int
	End   int
	Node  any
}

// Rule - одно правило ввода. Handler возвращает nil, если совпавший текст
// не должен заменяться (например, embed не разрешился).
type Rule struct {
	Pattern *regexp.Regexp
	Handler func(groups []string) any
}

var (
	messageReg = regexp.MustCompile(`^:::(message|alert) $`)
	detailsReg = regexp.MustCompile(`^:::details(?: +(.+?))? $`)
	tableReg   = regexp.MustCompile(`^:::table(?: +(\d+)[x×-](\d+))? $`)
	fenceReg   = regexp.MustCompile("^```([A-Za-z0-9_+-]*)(?::([^\\s\\[]+))?(\\[diff\\])? $")
	embedReg   = regexp.MustCompile(`^@\[([^\]]*)\]\(([^)\s]+)\) $`)
)

// Rules - правила распознавания в порядке приоритета.
var Rules = []Rule{
	{messageReg, func(groups []string) any {
		return editor.NewMessage(groups[1])
	}},
	{detailsReg, func(groups []string) any {
		return editor.NewDetails(groups[1])
	}},
	{tableReg, func(groups []string) any {
		rows, cols := 2, 2
		if groups[1] != "" {
			rows, _ = strconv.Atoi(groups[1])
			cols, _ = strconv.Atoi(groups[2])
		}
		return editor.NewTable(rows, cols)
	}},
	{fenceReg, func(groups []string) any {
		return editor.NewCodeBlock(groups[1], groups[2], groups[3] != "")
	}},
	{embedReg, func(groups []string) any {
		attrs, ok := embed.Resolve(groups[1], groups[2])
		if !ok {
			return nil
		}
		return &editor.Embed{Service: attrs.Service, URL: attrs.URL}
	}},
}

// MatchLine проверяет строку от начала до курсора по всем правилам.
// Возвращает nil, если ни одно правило не сработало либо сработавшее правило
// отказалось от замены.
func MatchLine(line string) *Match {
	for _, rule := range Rules {
		groups := rule.Pattern.FindStringSubmatch(line)
		if groups == nil {
			continue
		}

		node := rule.Handler(groups)
		if node == nil {
			return nil
		}

		return &Match{
			Start: 0,
			End:   len(groups[0]),
			Node:  node,
		}
	}

	return nil
}

// TrailingSpace сообщает, завершен ли ввод триггером правила.
func TrailingSpace(line string) bool {
	return strings.HasSuffix(line, " ")
}
