package library

import (
	"github.com/hbollon/go-edlib"

	"github.com/subwatch/subwatch/pkg/guess"
)

// aliasMatchThreshold is the minimum Jaro-Winkler similarity for a fuzzy
// alias hit. Below it the title is kept as-is.
const aliasMatchThreshold = 0.92

// ShowNamer maps localized or alternate show names to their canonical
// library names. Lookup is exact first, then fuzzy over the alias table.
type ShowNamer struct {
	aliases map[string]string // cleaned alias -> canonical name
}

// NewShowNamer builds a normalizer from an alias table mapping alternate
// names to canonical show names. A nil table means every title maps to itself.
func NewShowNamer(aliases map[string]string) *ShowNamer {
	cleaned := make(map[string]string, len(aliases))
	for alias, canonical := range aliases {
		cleaned[guess.CleanTitle(alias)] = canonical
	}
	return &ShowNamer{aliases: cleaned}
}

// Normalize returns the canonical show name for title.
// Uses Jaro-Winkler similarity, which favors prefix matches (good for media
// titles), when no exact alias exists.
func (n *ShowNamer) Normalize(title string) string {
	key := guess.CleanTitle(title)
	if canonical, ok := n.aliases[key]; ok {
		return canonical
	}

	best := ""
	bestScore := 0.0
	for alias, canonical := range n.aliases {
		score := float64(edlib.JaroWinklerSimilarity(key, alias))
		if score > bestScore {
			bestScore = score
			best = canonical
		}
	}
	if bestScore >= aliasMatchThreshold {
		return best
	}
	return title
}
