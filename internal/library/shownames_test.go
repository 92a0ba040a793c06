package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowNamer_ExactAlias(t *testing.T) {
	n := NewShowNamer(map[string]string{
		"Ktzarim":   "Short Ones",
		"The Chef":  "Chef",
		"Ha-Borer":  "The Arbitrator",
	})

	assert.Equal(t, "Short Ones", n.Normalize("Ktzarim"))
	// Alias lookup is case and punctuation insensitive.
	assert.Equal(t, "The Arbitrator", n.Normalize("ha borer"))
}

func TestShowNamer_FuzzyAlias(t *testing.T) {
	n := NewShowNamer(map[string]string{
		"Ha-Shir Shelanu": "Our Song",
	})

	// Close spelling variants land on the same canonical name.
	assert.Equal(t, "Our Song", n.Normalize("Hashir Shelanu"))
}

func TestShowNamer_NoMatchKeepsTitle(t *testing.T) {
	n := NewShowNamer(map[string]string{
		"Ktzarim": "Short Ones",
	})

	assert.Equal(t, "Breaking Bad", n.Normalize("Breaking Bad"))
}

func TestShowNamer_EmptyTable(t *testing.T) {
	n := NewShowNamer(nil)
	assert.Equal(t, "Show Name", n.Normalize("Show Name"))
}
