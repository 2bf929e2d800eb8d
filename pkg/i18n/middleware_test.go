package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brform/pkg/i18n"
)

func serveLocale(mw func(http.Handler) http.Handler, r *http.Request) (string, *httptest.ResponseRecorder) {
	var got string
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return got, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	extractor := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "pt"))

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		url      string
		expected string
	}{
		{
			name:     "cookie wins",
			url:      "/?lang=en",
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "lang", Value: "pt-BR"}) },
			expected: "pt",
		},
		{
			name:     "query parameter",
			url:      "/?lang=en",
			setup:    func(r *http.Request) { r.Header.Set("Accept-Language", "pt") },
			expected: "en",
		},
		{
			name:     "unsupported query falls through to header",
			url:      "/?lang=ja",
			setup:    func(r *http.Request) { r.Header.Set("Accept-Language", "en-GB") },
			expected: "en",
		},
		{
			name:     "accept language",
			url:      "/",
			setup:    func(r *http.Request) { r.Header.Set("Accept-Language", "pt-BR,pt;q=0.9") },
			expected: "pt",
		},
		{
			name:     "fallback",
			url:      "/",
			setup:    func(*http.Request) {},
			expected: "pt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			tt.setup(r)

			got, rec := serveLocale(i18n.Middleware(extractor, "pt"), r)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected, rec.Header().Get("Content-Language"))
		})
	}

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		got, _ := serveLocale(i18n.Middleware(nil, ""), r)
		assert.Equal(t, i18n.DefaultLanguage, got)
	})

	t.Run("unrestricted extractor keeps the raw preference", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "es-AR,es;q=0.8")
		got, _ := serveLocale(i18n.Middleware(nil, ""), r)
		assert.Equal(t, "es-ar", got)
	})
}
