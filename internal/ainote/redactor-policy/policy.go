// Определяет политики безопасности для обработки HTML статей. Политики
// разрешают только элементы и data-атрибуты нод редактора, чтобы
// предотвратить XSS при сохранении и отдаче контента.
//
// Основные возможности:
//   - Разрешение data-атрибутов нод документа (message, details, code, embed, сноски).
//   - Ограничение допустимых значений атрибутов регулярными выражениями.
//   - Разрешение iframe только для хостов embed-провайдеров.
//   - Политика полной очистки тегов для текстового поиска.
package policy

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var StripTagsPolicy *bluemonday.Policy = bluemonday.StrictPolicy()
var UgcPolicy *bluemonday.Policy = bluemonday.UGCPolicy()

// iframeSrcRegexp перечисляет хосты, с которых разрешено встраивание.
var iframeSrcRegexp = regexp.MustCompile(`^https://(www\.youtube-nocookie\.com|platform\.twitter\.com|codepen\.io|codesandbox\.io|stackblitz\.com|www\.figma\.com|www\.docswell\.com|speakerdeck\.com|www\.slideshare\.net)/`)

func init() {
	variantRegexp := regexp.MustCompile(`^(info|alert)$`)
	boolRegexp := regexp.MustCompile(`^(true|false)$`)
	serviceRegexp := regexp.MustCompile(`^[a-z]+$`)

	UgcPolicy.AllowElements("aside", "details", "summary", "figure", "iframe", "sup")

	UgcPolicy.AllowAttrs("data-message").OnElements("aside")
	UgcPolicy.AllowAttrs("data-variant").Matching(variantRegexp).OnElements("aside")

	UgcPolicy.AllowAttrs("data-details", "open").OnElements("details")
	UgcPolicy.AllowAttrs("data-details-content").OnElements("div")

	UgcPolicy.AllowAttrs("data-language", "data-filename").OnElements("pre")
	UgcPolicy.AllowAttrs("data-diff").Matching(boolRegexp).OnElements("pre")

	UgcPolicy.AllowAttrs("data-embed").OnElements("figure")
	UgcPolicy.AllowAttrs("data-service").Matching(serviceRegexp).OnElements("figure")
	UgcPolicy.AllowAttrs("data-url").OnElements("figure")
	UgcPolicy.AllowAttrs("src").Matching(iframeSrcRegexp).OnElements("iframe")

	UgcPolicy.AllowAttrs("data-footnote-ref", "data-id", "data-label").OnElements("sup")
}
