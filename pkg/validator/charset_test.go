package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brform/pkg/validator"
)

func TestIsNameRune(t *testing.T) {
	allowed := []rune{'a', 'Z', 'á', 'Ç', 'ñ', 'ø', 'ß', ' ', '\t', '-', '.', '\'', '\u0301'}
	for _, r := range allowed {
		assert.True(t, validator.IsNameRune(r), "expected %q to be allowed", r)
	}

	rejected := []rune{'0', '9', '@', '_', ',', '"', 'ж', 'λ', '中', '×'}
	for _, r := range rejected {
		assert.False(t, validator.IsNameRune(r), "expected %q to be rejected", r)
	}
}

func TestIsPasswordSymbol(t *testing.T) {
	for _, r := range validator.PasswordSymbols {
		assert.True(t, validator.IsPasswordSymbol(r), "expected %q in set", r)
	}
	for _, r := range "~`§ aZ0ç" {
		assert.False(t, validator.IsPasswordSymbol(r), "expected %q outside set", r)
	}
}

func TestHasAccentedLetter(t *testing.T) {
	assert.True(t, validator.HasAccentedLetter("ação"))
	assert.True(t, validator.HasAccentedLetter("PIÑA"))
	assert.False(t, validator.HasAccentedLetter("acao"))
	assert.False(t, validator.HasAccentedLetter(""))
	assert.False(t, validator.HasAccentedLetter("\u0301"))
}
