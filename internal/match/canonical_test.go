package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ACME Supply, Inc.", "acme supply inc"},
		{"Café Müller GmbH", "cafe muller gmbh"},
		{"  Northern--Fasteners  Ltd  ", "northern fasteners ltd"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := CanonicalizeName(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestCanonicalizePartNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"WIDGET-1", "widget1"},
		{"abc_123.X", "abc123x"},
		{"PN 44/B", "pn44b"},
		{"---", ""},
	}
	for _, tt := range tests {
		got, err := CanonicalizePartNumber(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
