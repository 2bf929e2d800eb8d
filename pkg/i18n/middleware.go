package i18n

import "net/http"

// Middleware stores the request language in the request context, where
// GetLocale and Translator.Tc read it. A nil extractor means
// DefaultLangExtractor(). When the extractor finds nothing, fallback is used,
// or DefaultLanguage if fallback is empty.
func Middleware(extr LangExtractor, fallback string) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if fallback == "" {
		fallback = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = fallback
			}
			w.Header().Set("Content-Language", lang)

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
