package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brform/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "pt"}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "exact match", header: "pt", expected: "pt"},
		{name: "regional variant", header: "pt-BR", expected: "pt"},
		{name: "browser style list", header: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7", expected: "pt"},
		{name: "quality ordering", header: "en;q=0.4, pt;q=0.9", expected: "pt"},
		{name: "english variant", header: "en-US", expected: "en"},
		{name: "unsupported language", header: "ja", expected: "pt"},
		{name: "empty header", header: "", expected: "pt"},
		{name: "malformed header", header: ";;;q=abc", expected: "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header, supported, "pt"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("pt", nil, "en"))
	})

	t.Run("oversized header does not panic", func(t *testing.T) {
		t.Parallel()
		header := "pt," + strings.Repeat("x", 10000)
		assert.NotPanics(t, func() { i18n.ParseAcceptLanguage(header, supported, "en") })
	})
}

func TestMatchLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "pt"}

	assert.Equal(t, "pt", i18n.MatchLanguage("pt-BR", supported))
	assert.Equal(t, "en", i18n.MatchLanguage(" EN ", supported))
	assert.Equal(t, "", i18n.MatchLanguage("ja", supported))
	assert.Equal(t, "", i18n.MatchLanguage("not a tag!", supported))
	assert.Equal(t, "pt-br", i18n.MatchLanguage("pt-BR", nil))
}
