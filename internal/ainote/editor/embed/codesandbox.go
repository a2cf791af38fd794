package embed

import (
	"net/url"
	"strings"
)

// codesandboxTransformer распознает /embed/{id} (без изменений), /s/{id}
// (переписывается в embed-форму) и /p/sandbox/{slug}, где идентификатор -
// последний сегмент slug после дефиса. Запрос и фрагмент сохраняются.
type codesandboxTransformer struct{}

func (codesandboxTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !matchHost(strings.ToLower(u.Hostname()), "codesandbox.io") {
		return ""
	}

	segs := splitPath(u.Path)
	if len(segs) < 2 {
		return ""
	}

	var id string
	switch segs[0] {
	case "embed":
		return rawURL
	case "s":
		id = segs[1]
	case "p":
		if len(segs) < 3 || segs[1] != "sandbox" {
			return ""
		}
		slug := segs[2]
		if i := strings.LastIndex(slug, "-"); i >= 0 {
			id = slug[i+1:]
		} else {
			id = slug
		}
	default:
		return ""
	}

	if id == "" {
		return ""
	}

	out := &url.URL{
		Scheme:   "https",
		Host:     "codesandbox.io",
		Path:     "/embed/" + id,
		RawQuery: u.RawQuery,
		Fragment: u.Fragment,
	}
	return out.String()
}

func (codesandboxTransformer) IframeSRC(canonicalURL string) string { return canonicalURL }
