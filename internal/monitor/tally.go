package monitor

// LangCount pairs a language with its acquisition count for the run.
type LangCount struct {
	Language string
	Count    int
}

// Tally counts successful acquisitions per language. Languages appear in the
// summary in the order they first scored.
type Tally struct {
	counts map[string]int
	order  []string
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Record increments the count for a language.
func (t *Tally) Record(language string) {
	if _, seen := t.counts[language]; !seen {
		t.order = append(t.order, language)
	}
	t.counts[language]++
}

// Summary returns the per-language counts in first-increment order.
func (t *Tally) Summary() []LangCount {
	out := make([]LangCount, 0, len(t.order))
	for _, lang := range t.order {
		out = append(out, LangCount{Language: lang, Count: t.counts[lang]})
	}
	return out
}
