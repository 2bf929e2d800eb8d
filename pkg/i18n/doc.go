// Package i18n translates message keys into the user's language.
//
// Catalogs are nested maps addressed with dot-separated keys
// ("form.tax_id.checksum") and loaded through a TranslationAdapter: MapAdapter
// for in-memory data, EmbeddedFsAdapter for YAML files compiled into the binary
// with embed.FS. Placeholders use the %{name} syntax and are filled from
// key, value argument pairs.
//
// # Usage
//
//	//go:embed locales/*.yaml
//	var locales embed.FS
//
//	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), locales, "locales")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("pt"))
//	if err != nil {
//	    return err
//	}
//
//	tr.T("pt", "form.tax_id.length", "length", "11") // "CPF deve conter 11 dígitos"
//	tr.Td("fr", "form.email.format", "invalid email") // "invalid email"
//
// # HTTP
//
// Middleware negotiates the request language with a LangExtractor (cookie,
// query parameter, then Accept-Language, matched with golang.org/x/text/language)
// and stores it in the request context. Translator.Tc and Tdc read it back:
//
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(
//	    i18n.WithSupportedLanguages(tr.SupportedLanguages()...),
//	), "pt"))
//
// The Translator is safe for concurrent use; Reload swaps catalogs under a lock.
package i18n
