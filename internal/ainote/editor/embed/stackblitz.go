package embed

import (
	"net/url"
	"strings"
)

// stackblitzTransformer принимает любой URL на хосте провайдера: выставляет
// embed=1 и подставляет file=README.md, если файл не указан.
type stackblitzTransformer struct{}

func (stackblitzTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !matchHost(strings.ToLower(u.Hostname()), "stackblitz.com") {
		return ""
	}

	q := u.Query()
	q.Set("embed", "1")
	if q.Get("file") == "" {
		q.Set("file", "README.md")
	}
	u.RawQuery = q.Encode()

	return u.String()
}

func (stackblitzTransformer) IframeSRC(canonicalURL string) string { return canonicalURL }
