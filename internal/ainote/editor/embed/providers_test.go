package embed

import (
	"strings"
	"testing"
)

func transform(t *testing.T, s Service, rawURL string) string {
	t.Helper()
	tr, ok := TransformerFor(s)
	if !ok {
		t.Fatalf("no transformer for %q", s)
	}
	return tr.Transform(rawURL)
}

func TestYoutubeTransform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"},
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"},
		{"start seconds", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&start=90", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?start=90"},
		{"t compound", "https://youtu.be/dQw4w9WgXcQ?t=1m30s", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?start=90"},
		{"t hours", "https://youtu.be/dQw4w9WgXcQ?t=1h2m3s", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?start=3723"},
		{"fragment t", "https://youtu.be/dQw4w9WgXcQ#t=45", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?start=45"},
		{"start clamped to 48h", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&start=999999999", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?start=172800"},
		{"zero start omitted", "https://youtu.be/dQw4w9WgXcQ?t=0", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"},
		{"short id rejected", "https://youtu.be/short", ""},
		{"watch without v", "https://www.youtube.com/watch", ""},
		{"wrong host", "https://vimeo.com/12345678901", ""},
		{"channel path", "https://www.youtube.com/c/somechannel", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform(t, ServiceYoutube, tt.url); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestTweetTransform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"twitter.com", "https://twitter.com/user/status/12345", "https://twitter.com/user/status/12345"},
		{"x.com", "https://x.com/user/status/12345", "https://twitter.com/user/status/12345"},
		{"mobile", "https://mobile.twitter.com/user/status/12345", "https://twitter.com/user/status/12345"},
		{"statuses form", "https://twitter.com/user/statuses/12345", "https://twitter.com/user/status/12345"},
		{"non-numeric id", "https://twitter.com/user/status/abc", ""},
		{"profile only", "https://twitter.com/user", ""},
		{"wrong host", "https://example.com/user/status/12345", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform(t, ServiceTweet, tt.url); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestTweetIframeSRC(t *testing.T) {
	tr, _ := TransformerFor(ServiceTweet)

	src := tr.IframeSRC("https://twitter.com/user/status/12345")
	for _, part := range []string{"platform.twitter.com", "id=12345", "dnt=true", "theme=light"} {
		if !strings.Contains(src, part) {
			t.Errorf("IframeSRC = %q, missing %q", src, part)
		}
	}

	// Без извлекаемого идентификатора - карточка-ссылка.
	if src := tr.IframeSRC("https://twitter.com/user"); src != "" {
		t.Errorf("IframeSRC for profile = %q, want empty", src)
	}
}

func TestCodepenTransform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"pen", "https://codepen.io/alice/pen/abcXYZ", "https://codepen.io/alice/embed/abcXYZ?default-tab=html%2Cresult"},
		{"full", "https://codepen.io/alice/full/abcXYZ", "https://codepen.io/alice/embed/abcXYZ?default-tab=html%2Cresult"},
		{"details", "https://codepen.io/alice/details/abcXYZ", "https://codepen.io/alice/embed/abcXYZ?default-tab=html%2Cresult"},
		{"debug", "https://codepen.io/alice/debug/abcXYZ", "https://codepen.io/alice/embed/abcXYZ?default-tab=html%2Cresult"},
		{"query preserved", "https://codepen.io/alice/pen/abcXYZ?default-tab=js", "https://codepen.io/alice/embed/abcXYZ?default-tab=js"},
		{"fragment preserved", "https://codepen.io/alice/pen/abcXYZ#section", "https://codepen.io/alice/embed/abcXYZ?default-tab=html%2Cresult#section"},
		{"embed passthrough", "https://codepen.io/alice/embed/abcXYZ?default-tab=js", "https://codepen.io/alice/embed/abcXYZ?default-tab=js"},
		{"profile rejected", "https://codepen.io/alice", ""},
		{"collection rejected", "https://codepen.io/collection/abc/item", ""},
		{"wrong host", "https://example.com/alice/pen/abcXYZ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform(t, ServiceCodepen, tt.url); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestCodesandboxTransform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"embed passthrough", "https://codesandbox.io/embed/abc123", "https://codesandbox.io/embed/abc123"},
		{"s form", "https://codesandbox.io/s/abc123", "https://codesandbox.io/embed/abc123"},
		{"s form with query", "https://codesandbox.io/s/abc123?view=editor", "https://codesandbox.io/embed/abc123?view=editor"},
		{"p sandbox slug", "https://codesandbox.io/p/sandbox/my-demo-k2f4h7", "https://codesandbox.io/embed/k2f4h7"},
		{"p sandbox bare id", "https://codesandbox.io/p/sandbox/k2f4h7", "https://codesandbox.io/embed/k2f4h7"},
		{"fragment preserved", "https://codesandbox.io/s/abc123#readme", "https://codesandbox.io/embed/abc123#readme"},
		{"root rejected", "https://codesandbox.io/", ""},
		{"p without sandbox", "https://codesandbox.io/p/devbox/abc", ""},
		{"wrong host", "https://example.com/s/abc123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform(t, ServiceCodesandbox, tt.url); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestStackblitzTransform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain edit", "https://stackblitz.com/edit/demo", "https://stackblitz.com/edit/demo?embed=1&file=README.md"},
		{"file preserved", "https://stackblitz.com/edit/demo?file=src%2Fmain.ts", "https://stackblitz.com/edit/demo?embed=1&file=src%2Fmain.ts"},
		{"embed overwritten", "https://stackblitz.com/edit/demo?embed=0", "https://stackblitz.com/edit/demo?embed=1&file=README.md"},
		{"wrong host", "https://example.com/edit/demo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform(t, ServiceStackblitz, tt.url); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestFigmaTransform(t *testing.T) {
	got := transform(t, ServiceFigma, "https://www.figma.com/file/abc/My Design")
	if !strings.HasPrefix(got, "https://www.figma.com/embed?") {
		t.Fatalf("Transform = %q, want embed endpoint", got)
	}
	if !strings.Contains(got, "url=https%3A%2F%2Fwww.figma.com%2Ffile%2Fabc%2F") {
		t.Errorf("Transform = %q, original URL not percent-encoded", got)
	}

	// Повторное преобразование канонической формы ничего не меняет.
	if again := transform(t, ServiceFigma, got); again != got {
		t.Errorf("double transform changed URL: %q -> %q", got, again)
	}

	if got := transform(t, ServiceFigma, "https://example.com/file/abc"); got != "" {
		t.Errorf("wrong host accepted: %q", got)
	}
}

func TestDocswellTransform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"s form", "https://www.docswell.com/s/user/ABC12-my-talk", "https://www.docswell.com/slide/ABC12/embed"},
		{"s form with page fragment", "https://www.docswell.com/s/user/ABC12-my-talk#p4", "https://www.docswell.com/slide/ABC12/embed#p4"},
		{"s form with page segment", "https://www.docswell.com/s/user/ABC12-my-talk/7", "https://www.docswell.com/slide/ABC12/embed#p7"},
		{"canonical passthrough", "https://www.docswell.com/slide/ABC12/embed", "https://www.docswell.com/slide/ABC12/embed"},
		{"canonical with page", "https://www.docswell.com/slide/ABC12/embed#p3", "https://www.docswell.com/slide/ABC12/embed#p3"},
		{"too short", "https://www.docswell.com/s/user", ""},
		{"wrong host", "https://example.com/s/user/ABC12-talk", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform(t, ServiceDocswell, tt.url); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestSpeakerdeckTransform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"talk", "https://speakerdeck.com/user/my-talk", "https://speakerdeck.com/player/user/my-talk?slide=1"},
		{"slide from query", "https://speakerdeck.com/user/my-talk?slide=5", "https://speakerdeck.com/player/user/my-talk?slide=5"},
		{"slide from fragment eq", "https://speakerdeck.com/user/my-talk#slide=7", "https://speakerdeck.com/player/user/my-talk?slide=7"},
		{"slide from fragment slash", "https://speakerdeck.com/user/my-talk#slide/9", "https://speakerdeck.com/player/user/my-talk?slide=9"},
		{"player passthrough", "http://www.speakerdeck.com/player/abc123", "https://speakerdeck.com/player/abc123"},
		{"root rejected", "https://speakerdeck.com/", ""},
		{"deep path rejected", "https://speakerdeck.com/a/b/c", ""},
		{"wrong host", "https://example.com/user/talk", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transform(t, ServiceSpeakerdeck, tt.url); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestSlideshareTransform(t *testing.T) {
	canonical := "https://www.slideshare.net/slideshow/embed_code/key/abc123"
	if got := transform(t, ServiceSlideshare, canonical); got != canonical {
		t.Errorf("canonical form changed: %q", got)
	}

	rejected := []string{
		"https://www.slideshare.net/user/my-slides",
		"https://www.slideshare.net/",
		"https://example.com/slideshow/embed_code/key/abc123",
	}
	for _, u := range rejected {
		if got := transform(t, ServiceSlideshare, u); got != "" {
			t.Errorf("Transform(%q) = %q, want rejection", u, got)
		}
	}
}
