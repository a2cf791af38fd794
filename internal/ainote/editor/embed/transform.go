package embed

// Transformer преобразует URL провайдера в канонический embed-URL и выдает
// адрес iframe для отрисовки. Transform возвращает пустую строку, если URL
// не соответствует ожидаемой форме провайдера: подсказке сервиса не доверяем,
// окончательную проверку всегда делает сам провайдер.
type Transformer interface {
	// Transform преобразует уже санитизированный URL в канонический.
	// Пустая строка - URL провайдеру не подходит.
	Transform(rawURL string) string
	// IframeSRC возвращает адрес iframe для канонического URL.
	// Пустая строка - провайдер рисуется карточкой-ссылкой, без iframe.
	IframeSRC(canonicalURL string) string
}

// Статическая таблица преобразователей. Провайдеры перечислимы и фиксированы
// на этапе сборки, динамическая регистрация не поддерживается.
var transformers = map[Service]Transformer{
	ServiceYoutube:     youtubeTransformer{},
	ServiceTweet:       tweetTransformer{},
	ServiceCodepen:     codepenTransformer{},
	ServiceCodesandbox: codesandboxTransformer{},
	ServiceStackblitz:  stackblitzTransformer{},
	ServiceFigma:       figmaTransformer{},
	ServiceDocswell:    docswellTransformer{},
	ServiceSpeakerdeck: speakerdeckTransformer{},
	ServiceSlideshare:  slideshareTransformer{},
	ServiceLink:        linkTransformer{},
}

// TransformerFor возвращает преобразователь провайдера, если он зарегистрирован.
func TransformerFor(service Service) (Transformer, bool) {
	t, ok := transformers[service]
	return t, ok
}

// Attributes - атрибуты embed-ноды документа.
type Attributes struct {
	Service Service `json:"service"`
	URL     string  `json:"url"`
}

// ResolveOptions - параметры подбора атрибутов.
type ResolveOptions struct {
	// DetectService определяет сервис по санитизированному URL.
	DetectService func(string) Service
	// FallbackService используется последним кандидатом.
	FallbackService Service
}

// Resolve подбирает атрибуты embed-ноды по подсказке сервиса и URL со
// стандартными параметрами: детект по таблице хостов, fallback - "link".
func Resolve(serviceHint, rawURL string) (Attributes, bool) {
	return ResolveWith(serviceHint, rawURL, ResolveOptions{
		DetectService:   Detect,
		FallbackService: ServiceLink,
	})
}

// ResolveWith подбирает атрибуты embed-ноды. Кандидаты пробуются по порядку
// без повторов: нормализованная подсказка, затем детект по URL, затем
// fallback. Первый кандидат, чей преобразователь принял URL, побеждает.
// Ошибочная подсказка спасается детектом, а мусорный URL с валидной
// подсказкой отбрасывается на шаге преобразования.
func ResolveWith(serviceHint, rawURL string, opts ResolveOptions) (Attributes, bool) {
	sanitized := Sanitize(rawURL)
	if sanitized == "" {
		return Attributes{}, false
	}

	candidates := make([]Service, 0, 3)
	add := func(s Service) {
		if s == ServiceNone {
			return
		}
		for _, c := range candidates {
			if c == s {
				return
			}
		}
		candidates = append(candidates, s)
	}

	add(NormalizeServiceName(serviceHint))
	if opts.DetectService != nil {
		add(opts.DetectService(sanitized))
	}
	add(opts.FallbackService)

	for _, candidate := range candidates {
		t, ok := transformers[candidate]
		if !ok {
			continue
		}
		out := t.Transform(sanitized)
		if out == "" {
			continue
		}
		if out = Sanitize(out); out == "" {
			continue
		}
		return Attributes{Service: candidate, URL: out}, true
	}

	return Attributes{}, false
}

// IframeSRC возвращает адрес iframe для атрибутов embed-ноды.
func (a Attributes) IframeSRC() string {
	t, ok := transformers[a.Service]
	if !ok {
		return ""
	}
	return t.IframeSRC(a.URL)
}

// linkTransformer - generic-провайдер "карточка-ссылка": принимает любой
// санитизированный URL без изменений.
type linkTransformer struct{}

func (linkTransformer) Transform(rawURL string) string { return rawURL }

func (linkTransformer) IframeSRC(string) string { return "" }
