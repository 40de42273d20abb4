package langcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksGerman(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		text string
		want bool
	}{
		// ß only exists in German, so these are unambiguous even as
		// single words.
		{"word with unique German letter", "Straße", true},
		{"comparative with unique letter", "größer", true},
		{"German sentence", "Die Straßenbahn fährt um sieben Uhr ab", true},
		{"English sentence", "the quick brown fox jumps over the lazy dog", false},
		{"empty input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, confidence := c.LooksGerman(tt.text)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 1.0)
		})
	}
}
