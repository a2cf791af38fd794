package embed

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		url  string
		want Service
	}{
		{"https://youtu.be/dQw4w9WgXcQ", ServiceYoutube},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", ServiceYoutube},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", ServiceYoutube},
		{"https://twitter.com/user/status/12345", ServiceTweet},
		{"https://x.com/user/status/12345", ServiceTweet},
		{"https://mobile.twitter.com/user/status/12345", ServiceTweet},
		{"https://codepen.io/alice/pen/abcXYZ", ServiceCodepen},
		{"https://codesandbox.io/s/new", ServiceCodesandbox},
		{"https://stackblitz.com/edit/demo", ServiceStackblitz},
		{"https://www.figma.com/file/abc/Design", ServiceFigma},
		{"https://www.docswell.com/s/user/ABC12-new-slides", ServiceDocswell},
		{"https://speakerdeck.com/user/talk", ServiceSpeakerdeck},
		{"https://www.slideshare.net/slideshow/embed_code/key/abc", ServiceSlideshare},
		{"https://example.com/page", ServiceNone},
		{"https://notyoutube.com/watch?v=x", ServiceNone},
		{"https://youtube.com.evil.com/watch", ServiceNone},
		{"::::", ServiceNone},
	}

	for _, tt := range tests {
		if got := Detect(tt.url); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestNormalizeServiceName(t *testing.T) {
	tests := []struct {
		in   string
		want Service
	}{
		{"twitter", ServiceTweet},
		{"x", ServiceTweet},
		{"TWEET", ServiceTweet},
		{"yt", ServiceYoutube},
		{"codesand", ServiceCodesandbox},
		{"stack", ServiceStackblitz},
		{"links", ServiceLink},
		{"card", ServiceLink},
		{"github", ServiceLink},
		{"gist", ServiceLink},
		{"mermaid", ServiceLink},
		{"auto", ServiceNone},
		{"embed", ServiceNone},
		{"default", ServiceNone},
		{"", ServiceNone},
		{"  youtube  ", ServiceYoutube},
		// Неизвестные значения проходят как есть.
		{"newprovider", Service("newprovider")},
	}

	for _, tt := range tests {
		if got := NormalizeServiceName(tt.in); got != tt.want {
			t.Errorf("NormalizeServiceName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
