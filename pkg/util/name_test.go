package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "Lowercase local part", email: "sherry@demo.com", want: "Sherry"},
		{name: "Uppercase local part", email: "HANZLA@demo.com", want: "Hanzla"},
		{name: "Mixed case", email: "ArEeBa@demo.com", want: "Areeba"},
		{name: "Surrounding whitespace", email: "  sherry@demo.com ", want: "Sherry"},
		{name: "Single letter", email: "a@demo.com", want: "A"},
		{name: "Empty input", email: "", want: "User"},
		{name: "Missing local part", email: "@demo.com", want: "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayNameFromEmail(tt.email))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "Already normalized", email: "sherry@demo.com", want: "sherry@demo.com"},
		{name: "Uppercase", email: "SHERRY@DEMO.COM", want: "sherry@demo.com"},
		{name: "Whitespace and mixed case", email: "  AREEBA@Demo.com ", want: "areeba@demo.com"},
		{name: "Empty", email: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.email))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "Typical address", email: "sherry@demo.com", want: true},
		{name: "Subdomain", email: "ops@mail.example.co", want: true},
		{name: "Trimmed before checking", email: " sherry@demo.com ", want: true},
		{name: "Missing at sign", email: "sherrydemo.com", want: false},
		{name: "Two at signs", email: "sherry@@demo.com", want: false},
		{name: "Missing local part", email: "@demo.com", want: false},
		{name: "Missing domain", email: "sherry@", want: false},
		{name: "Domain without dot", email: "sherry@demo", want: false},
		{name: "Dot at domain end", email: "sherry@demo.", want: false},
		{name: "Dot at domain start", email: "sherry@.com", want: false},
		{name: "Interior whitespace", email: "she rry@demo.com", want: false},
		{name: "Empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}
