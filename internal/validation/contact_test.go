package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhone(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"(21) 99999-9999", true},
		{"21999999999", true},
		{"(21) 3333-4444", true},
		{"2133334444", true},
		{"(21) 9999-999", false},
		{"219999999999", false},
		{"", false},
		{"phone", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPhone(tt.input))
		})
	}
}

func TestIsEmailShape(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"contato@ongbrasilesperanca.com.br", true},
		{"user+tag@example.org", true},
		{"first.last%x@sub-domain.example.io", true},
		{"user@example.c", false},
		{"user@example", false},
		{"@example.com", false},
		{"user example@example.com", false},
		{"user@exa_mple.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEmailShape(tt.input))
		})
	}
}

func TestIsPostalCodeShape(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"21875-020", true},
		{"21875020", true},
		{"21875--020", false},
		{"2187-5020", false},
		{"21875-02", false},
		{" 21875-020", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPostalCodeShape(tt.input))
		})
	}
}
