package embed

import (
	"net/url"
	"regexp"
	"strings"
)

var tweetPathReg = regexp.MustCompile(`^/([A-Za-z0-9_]+)/status(?:es)?/(\d+)/?$`)

// tweetTransformer канонизирует ссылки на посты микроблога: принимаются
// только известные домены и путь /{user}/status/{numericId}. Канонической
// формой всегда становится twitter.com, независимо от исходного домена.
type tweetTransformer struct{}

func (tweetTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	if !matchHost(host, "twitter.com") && !matchHost(host, "x.com") {
		return ""
	}

	m := tweetPathReg.FindStringSubmatch(u.Path)
	if m == nil {
		return ""
	}

	return "https://twitter.com/" + m[1] + "/status/" + m[2]
}

// IframeSRC собирает embed-адрес платформы, несущий только численный
// идентификатор поста и фиксированные do-not-track/theme параметры.
// Если идентификатор не извлекается, возвращается пустая строка и
// пост рисуется обычной карточкой-ссылкой.
func (tweetTransformer) IframeSRC(canonicalURL string) string {
	u, err := url.Parse(canonicalURL)
	if err != nil {
		return ""
	}

	m := tweetPathReg.FindStringSubmatch(u.Path)
	if m == nil {
		return ""
	}

	q := url.Values{}
	q.Set("id", m[2])
	q.Set("dnt", "true")
	q.Set("theme", "light")
	return "https://platform.twitter.com/embed/Tweet.html?" + q.Encode()
}
