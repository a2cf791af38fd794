package embed

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain https", "https://example.com/page", "https://example.com/page"},
		{"plain http", "http://example.com/", "http://example.com/"},
		{"upper host", "https://EXAMPLE.COM/Page", "https://example.com/Page"},
		{"default https port", "https://example.com:443/x", "https://example.com/x"},
		{"default http port", "http://example.com:80/x", "http://example.com/x"},
		{"custom port", "https://example.com:8443/x", "https://example.com:8443/x"},
		{"surrounding spaces", "  https://example.com  ", "https://example.com"},
		{"not a url", "::::", ""},
		{"relative", "/just/a/path", ""},
		{"ftp scheme", "ftp://example.com/file", ""},
		{"javascript scheme", "javascript:alert(1)", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"https://EXAMPLE.com:443/path?a=1&b=2#frag",
		"http://youtu.be/dQw4w9WgXcQ?t=1m30s",
		"https://codepen.io/alice/pen/abcXYZ",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		if once == "" {
			t.Fatalf("Sanitize(%q) unexpectedly rejected", in)
		}
		if twice := Sanitize(once); twice != once {
			t.Errorf("not idempotent: Sanitize(%q) = %q, then %q", in, once, twice)
		}
	}
}
