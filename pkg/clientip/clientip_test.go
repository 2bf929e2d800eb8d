package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brform/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "mapped ipv4", remoteAddr: "[::ffff:192.0.2.9]:80", want: "192.0.2.9"},
		{
			name:       "headers ignored without trusted proxy",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			remoteAddr: "10.0.0.1:80",
			want:       "10.0.0.1",
		},
		{
			name:       "first valid forwarded hop",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 203.0.113.5, 10.0.0.2"},
			remoteAddr: "10.0.0.1:80",
			trustProxy: true,
			want:       "203.0.113.5",
		},
		{
			name:       "real ip fallback",
			headers:    map[string]string{"X-Real-IP": " 198.51.100.7 "},
			remoteAddr: "10.0.0.1:80",
			trustProxy: true,
			want:       "198.51.100.7",
		},
		{name: "invalid everything", remoteAddr: "nope", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(req, tt.trustProxy))
			assert.Equal(t, tt.want, clientip.KeyFunc(tt.trustProxy)(req))
		})
	}
}
