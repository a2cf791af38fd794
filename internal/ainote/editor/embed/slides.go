package embed

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	docswellPageReg = regexp.MustCompile(`^p\d+$`)
	slideNumReg     = regexp.MustCompile(`slide[=/](\d+)`)
	digitsReg       = regexp.MustCompile(`^\d+$`)
)

// docswellTransformer. Каноническая форма /slide/{id}/embed проходит без
// изменений с сохранением страничного фрагмента #p{n}. Форма
// /s/{user}/{id-slug} переписывается: идентификатор - часть сегмента до
// первого дефиса, страница берется из фрагмента или четвертого сегмента пути.
type docswellTransformer struct{}

func (docswellTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !matchHost(strings.ToLower(u.Hostname()), "docswell.com") {
		return ""
	}

	segs := splitPath(u.Path)
	if len(segs) >= 3 && segs[0] == "slide" && segs[2] == "embed" {
		return rawURL
	}

	if len(segs) < 3 || segs[0] != "s" {
		return ""
	}

	id := segs[2]
	if i := strings.Index(id, "-"); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return ""
	}

	page := ""
	if docswellPageReg.MatchString(u.Fragment) {
		page = u.Fragment
	} else if len(segs) >= 4 && digitsReg.MatchString(segs[3]) {
		page = "p" + segs[3]
	}

	out := "https://www.docswell.com/slide/" + id + "/embed"
	if page != "" {
		out += "#" + page
	}
	return out
}

func (docswellTransformer) IframeSRC(canonicalURL string) string { return canonicalURL }

// speakerdeckTransformer. Каноническая форма /player/... проходит с
// принудительными схемой и хостом. Форма /{user}/{slug} переписывается в
// /player/{user}/{slug}, номер слайда копируется из запроса либо из
// шаблонов slide=N / slide/N во фрагменте, по умолчанию 1.
type speakerdeckTransformer struct{}

func (speakerdeckTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !matchHost(strings.ToLower(u.Hostname()), "speakerdeck.com") {
		return ""
	}

	segs := splitPath(u.Path)
	if len(segs) == 0 {
		return ""
	}

	if segs[0] == "player" {
		u.Scheme = "https"
		u.Host = "speakerdeck.com"
		return u.String()
	}

	if len(segs) != 2 {
		return ""
	}

	slide := u.Query().Get("slide")
	if slide == "" {
		if m := slideNumReg.FindStringSubmatch(u.Fragment); m != nil {
			slide = m[1]
		}
	}
	if slide == "" {
		slide = "1"
	}

	out := &url.URL{
		Scheme:   "https",
		Host:     "speakerdeck.com",
		Path:     "/player/" + segs[0] + "/" + segs[1],
		RawQuery: "slide=" + slide,
	}
	return out.String()
}

func (speakerdeckTransformer) IframeSRC(canonicalURL string) string { return canonicalURL }

// slideshareTransformer принимает только уже каноническую embed-форму
// /slideshow/embed_code/...; generic-перезапись провайдером не поддерживается.
type slideshareTransformer struct{}

func (slideshareTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	if !matchHost(strings.ToLower(u.Hostname()), "slideshare.net") {
		return ""
	}
	if !strings.HasPrefix(u.Path, "/slideshow/embed_code/") {
		return ""
	}
	return rawURL
}

func (slideshareTransformer) IframeSRC(canonicalURL string) string { return canonicalURL }
