package embed

import (
	"net/url"
	"strings"
)

// codepenTransformer переписывает ссылки на пены в embed-форму:
// /{user}/(pen|full|details|debug)/{slug} -> /{user}/embed/{slug}.
// Уже канонические /{user}/embed/... проходят без изменений.
type codepenTransformer struct{}

func (codepenTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !matchHost(strings.ToLower(u.Hostname()), "codepen.io") {
		return ""
	}

	segs := splitPath(u.Path)
	if len(segs) < 3 {
		return ""
	}

	if segs[1] == "embed" {
		return rawURL
	}

	switch segs[1] {
	case "pen", "full", "details", "debug":
	default:
		return ""
	}

	out := &url.URL{
		Scheme:   "https",
		Host:     "codepen.io",
		Path:     "/" + segs[0] + "/embed/" + segs[2],
		Fragment: u.Fragment,
	}

	// Запрос сохраняется, при отсутствии подставляется вкладка по умолчанию.
	if u.RawQuery != "" {
		out.RawQuery = u.RawQuery
	} else {
		q := url.Values{}
		q.Set("default-tab", "html,result")
		out.RawQuery = q.Encode()
	}

	return out.String()
}

func (codepenTransformer) IframeSRC(canonicalURL string) string { return canonicalURL }
