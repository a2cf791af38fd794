// Пакет embed реализует конвейер нормализации URL для встраиваемых сервисов:
// валидацию и канонизацию исходного URL, определение сервиса по хосту,
// преобразование произвольного URL провайдера в канонический embed-URL и
// подбор атрибутов embed-ноды по подсказке сервиса с fallback на обычную ссылку.
//
// Основные возможности:
//   - Санитизация URL (только абсолютные http/https адреса).
//   - Определение провайдера по таблице хостов.
//   - Нормализация имен сервисов и их алиасов.
//   - Провайдер-специфичные преобразования URL (~10 провайдеров).
//   - Подбор атрибутов embed-ноды: подсказка -> детект -> fallback.
package embed

import (
	"net/url"
	"strings"
)

// Service - идентификатор провайдера встраиваемого контента.
type Service string

const (
	ServiceNone        Service = ""
	ServiceYoutube     Service = "youtube"
	ServiceTweet       Service = "tweet"
	ServiceCodepen     Service = "codepen"
	ServiceCodesandbox Service = "codesandbox"
	ServiceStackblitz  Service = "stackblitz"
	ServiceFigma       Service = "figma"
	ServiceDocswell    Service = "docswell"
	ServiceSpeakerdeck Service = "speakerdeck"
	ServiceSlideshare  Service = "slideshare"
	ServiceLink        Service = "link"
)

// Таблица хостов провайдеров. Порядок проверки - порядок объявления,
// первый совпавший побеждает; хосты не пересекаются.
var hostTable = []struct {
	host    string
	service Service
}{
	{"youtu.be", ServiceYoutube},
	{"youtube.com", ServiceYoutube},
	{"twitter.com", ServiceTweet},
	{"x.com", ServiceTweet},
	{"codepen.io", ServiceCodepen},
	{"codesandbox.io", ServiceCodesandbox},
	{"stackblitz.com", ServiceStackblitz},
	{"figma.com", ServiceFigma},
	{"docswell.com", ServiceDocswell},
	{"speakerdeck.com", ServiceSpeakerdeck},
	{"slideshare.net", ServiceSlideshare},
}

// Алиасы имен сервисов: исторические и сокращенные формы.
var serviceAliases = map[string]Service{
	"twitter":  ServiceTweet,
	"x":        ServiceTweet,
	"yt":       ServiceYoutube,
	"codesand": ServiceCodesandbox,
	"stack":    ServiceStackblitz,
	"links":    ServiceLink,
	"card":     ServiceLink,
	"github":   ServiceLink,
	"gist":     ServiceLink,
	"mermaid":  ServiceLink,
}

// Detect определяет провайдера по хосту URL. Возвращает ServiceNone,
// если URL не парсится или хост не входит в таблицу.
func Detect(rawURL string) Service {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ServiceNone
	}

	host := strings.ToLower(u.Hostname())
	for _, entry := range hostTable {
		if matchHost(host, entry.host) {
			return entry.service
		}
	}
	return ServiceNone
}

// NormalizeServiceName приводит имя сервиса к каноническому идентификатору.
// Пустая строка означает "нет мнения": auto/embed/default и пустое значение
// нормализуются в нее. Неизвестные непустые значения проходят без изменений.
func NormalizeServiceName(name string) Service {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "", "auto", "embed", "default":
		return ServiceNone
	}

	if alias, ok := serviceAliases[name]; ok {
		return alias
	}
	return Service(name)
}

// matchHost проверяет точное совпадение хоста или совпадение по суффиксу домена.
func matchHost(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// splitPath разбивает path URL на непустые сегменты.
func splitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
