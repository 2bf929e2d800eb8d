package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the supported language that best matches an
// Accept-Language header, honouring quality values and regional fallback
// (pt-BR matches pt). It returns defaultLang when the header is empty,
// malformed or matches nothing.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return defaultLang
	}

	if lang, ok := match(prefs, supportedLangs); ok {
		return lang
	}
	return defaultLang
}

// MatchLanguage maps a single language tag such as "pt-BR" onto supportedLangs.
// It returns "" when lang is not a valid tag or nothing matches.
func MatchLanguage(lang string, supportedLangs []string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return ""
	}
	if len(supportedLangs) == 0 {
		return strings.ToLower(tag.String())
	}
	matched, _ := match([]language.Tag{tag}, supportedLangs)
	return matched
}

func match(prefs []language.Tag, supportedLangs []string) (string, bool) {
	tags := make([]language.Tag, 0, len(supportedLangs))
	codes := make([]string, 0, len(supportedLangs))
	for _, code := range supportedLangs {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, strings.ToLower(code))
	}
	if len(tags) == 0 {
		return "", false
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return "", false
	}
	return codes[idx], true
}
