package embed

import (
	"net/url"
	"strings"
)

// figmaTransformer оборачивает любой URL на хосте провайдера в фиксированный
// embed-эндпоинт, исходный адрес уходит percent-encoded параметром запроса.
type figmaTransformer struct{}

func (figmaTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !matchHost(strings.ToLower(u.Hostname()), "figma.com") {
		return ""
	}

	// Уже обернутый URL не оборачивается повторно.
	if u.Path == "/embed" {
		return rawURL
	}

	q := url.Values{}
	q.Set("embed_host", "ainote")
	q.Set("url", rawURL)
	return "https://www.figma.com/embed?" + q.Encode()
}

func (figmaTransformer) IframeSRC(canonicalURL string) string { return canonicalURL }
