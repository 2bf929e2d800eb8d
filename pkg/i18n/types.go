package i18n

import "net/http"

// LangExtractor returns the language code a request asks for, or "" when it has no preference.
type LangExtractor func(r *http.Request) string
