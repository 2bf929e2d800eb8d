package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/brform/pkg/validator"
)

func TestExactDigits(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   bool
	}{
		{name: "exact", digits: "01310100", want: true},
		{name: "short", digits: "0131010", want: false},
		{name: "long", digits: "013101000", want: false},
		{name: "non-digit", digits: "0131010a", want: false},
		{name: "empty", digits: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.ExactDigits("postal_code", tt.digits, 8)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "length", rule.Error.Code)
			assert.Equal(t, 8, rule.Error.TranslationValues["length"])
		})
	}
}

func TestNotRepeatedDigits(t *testing.T) {
	tests := []struct {
		digits string
		want   bool
	}{
		{digits: "11111111111", want: false},
		{digits: "00000000", want: false},
		{digits: "99", want: false},
		{digits: "11144477735", want: true},
		{digits: "01310100", want: true},
		{digits: "7", want: true},
		{digits: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.NotRepeatedDigits("tax_id", tt.digits).Check())
		})
	}
}

func TestValidCPFDigits(t *testing.T) {
	tests := []struct {
		digits string
		want   bool
	}{
		{digits: "11144477735", want: true},
		{digits: "52998224725", want: true},
		{digits: "12345678909", want: true},
		{digits: "11144477736", want: false},
		{digits: "11144477725", want: false},
		{digits: "1114447773", want: false},
		{digits: "1114447773a", want: false},
		{digits: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.ValidCPFDigits(tt.digits))
			assert.Equal(t, tt.want, validator.CPFCheckDigits("tax_id", tt.digits).Check())
		})
	}
}

func TestValidCPFDigits_CheckDigitMappedToZero(t *testing.T) {
	// 000000001: weighted sum 2, 11-2=9; second pass 3+18=21, 11-10=1.
	assert.True(t, validator.ValidCPFDigits("00000000191"))
	// first remainder 1 maps 11-1=10 to 0.
	assert.True(t, validator.ValidCPFDigits("10000000108"))
}

func TestCEPShape(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "01310-100", want: true},
		{value: "01310100", want: true},
		{value: "0131-0100", want: false},
		{value: "01.310-100", want: false},
		{value: " 01310100", want: false},
		{value: "01310-10a", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rule := validator.CEPShape("postal_code", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "format", rule.Error.Code)
		})
	}
}
