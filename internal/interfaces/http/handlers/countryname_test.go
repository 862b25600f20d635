package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCountryName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"united states", "United States"},
		{"canada", "Canada"},
		{"united kingdom", "United Kingdom"},
		{"United Kingdom", "United Kingdom"},
		{"USA", "USA"},
		{"McDonald Islands", "McDonald Islands"},
		{"  canada  ", "Canada"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeCountryName(tt.in), "input %q", tt.in)
	}
}
