package embed

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Максимальное смещение старта видео - 48 часов в секундах.
	youtubeMaxStart = 172800

	youtubeEmbedBase = "https://www.youtube-nocookie.com/embed/"
)

var (
	youtubeIDReg    = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	youtubeTimeReg  = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s?)?$`)
	youtubeDigitReg = regexp.MustCompile(`^\d+$`)
)

// youtubeTransformer распознает короткие ссылки, watch-, embed- и shorts-формы,
// извлекает 11-символьный идентификатор видео и опциональное смещение старта.
type youtubeTransformer struct{}

func (youtubeTransformer) Transform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	segs := splitPath(u.Path)

	var id string
	switch {
	case host == "youtu.be":
		if len(segs) >= 1 {
			id = segs[0]
		}
	case matchHost(host, "youtube.com"):
		if len(segs) == 0 {
			return ""
		}
		switch segs[0] {
		case "watch":
			id = u.Query().Get("v")
		case "embed", "shorts":
			if len(segs) >= 2 {
				id = segs[1]
			}
		}
	default:
		return ""
	}

	if !youtubeIDReg.MatchString(id) {
		return ""
	}

	embedURL := youtubeEmbedBase + id
	if start := youtubeStart(u); start > 0 {
		embedURL += "?start=" + strconv.Itoa(start)
	}
	return embedURL
}

func (youtubeTransformer) IframeSRC(canonicalURL string) string { return canonicalURL }

// youtubeStart извлекает смещение старта из start=, t= или фрагмента #t=.
// Поддерживаются чистые секунды и составная форма NhNmNs.
// Результат ограничивается диапазоном [0, youtubeMaxStart].
func youtubeStart(u *url.URL) int {
	raw := u.Query().Get("start")
	if raw == "" {
		raw = u.Query().Get("t")
	}
	if raw == "" {
		if frag, err := url.ParseQuery(u.Fragment); err == nil {
			raw = frag.Get("t")
		}
	}
	if raw == "" {
		return 0
	}

	seconds, ok := parseOffset(raw)
	if !ok {
		return 0
	}
	if seconds < 0 {
		return 0
	}
	if seconds > youtubeMaxStart {
		return youtubeMaxStart
	}
	return seconds
}

// parseOffset парсит "90", "1m30s", "1h2m3s" и подобные формы в секунды.
func parseOffset(raw string) (int, bool) {
	if youtubeDigitReg.MatchString(raw) {
		v, err := strconv.Atoi(raw)
		return v, err == nil
	}

	m := youtubeTimeReg.FindStringSubmatch(raw)
	if m == nil || (m[1] == "" && m[2] == "" && m[3] == "") {
		return 0, false
	}

	seconds := 0
	if m[1] != "" {
		v, _ := strconv.Atoi(m[1])
		seconds += v * 3600
	}
	if m[2] != "" {
		v, _ := strconv.Atoi(m[2])
		seconds += v * 60
	}
	if m[3] != "" {
		v, _ := strconv.Atoi(m[3])
		seconds += v
	}
	return seconds, true
}
