package embed

import (
	"net/url"
	"strings"
)

// Sanitize валидирует и канонизирует URL. Возвращает пустую строку, если
// строка не парсится как абсолютный URL или схема отличается от http/https.
// Хост приводится к нижнему регистру, стандартные порты отбрасываются.
// Идемпотентна: Sanitize(Sanitize(u)) == Sanitize(u).
func Sanitize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Hostname() == "" {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if port == "" || (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
		u.Host = host
	} else {
		u.Host = host + ":" + port
	}

	return u.String()
}
