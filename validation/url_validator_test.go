package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExternalURL_Accepts(t *testing.T) {
	for _, u := range []string{
		"https://example.com/feed.xml",
		"http://news.example.org/rss",
		"https://93.184.216.34/feed",
	} {
		assert.NoError(t, ValidateExternalURL(u), u)
	}
}

func TestValidateExternalURL_Rejects(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"no scheme", "example.com/feed"},
		{"ftp", "ftp://example.com/feed"},
		{"file", "file:///etc/passwd"},
		{"no host", "https:///feed"},
		{"localhost", "http://localhost/feed"},
		{"localhost subdomain", "http://db.localhost/feed"},
		{"loopback", "http://127.0.0.1/feed"},
		{"loopback range", "http://127.1.2.3/feed"},
		{"private 10", "http://10.0.0.5/feed"},
		{"private 192", "http://192.168.1.1/feed"},
		{"private 172", "http://172.16.0.1/feed"},
		{"link local", "http://169.254.169.254/latest/meta-data"},
		{"unspecified", "http://0.0.0.0/feed"},
		{"ipv6 loopback", "http://[::1]/feed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateExternalURL(tt.url))
		})
	}
}
