package terms

import "strings"

// Vocabulary is a read-only list of raw terms. It is shared by every chapter
// worker and must not be mutated after construction.
type Vocabulary struct {
	name  string
	terms []string
}

func NewVocabulary(name string, raw []string) Vocabulary {
	terms := make([]string, len(raw))
	copy(terms, raw)
	return Vocabulary{name: name, terms: terms}
}

func (v Vocabulary) Name() string { return v.name }

func (v Vocabulary) Len() int { return len(v.terms) }

// Terms returns a copy of the configured terms in load order.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Matches reports whether any term is a substring of token.
func (v Vocabulary) Matches(token string) bool {
	for _, term := range v.terms {
		if strings.Contains(token, term) {
			return true
		}
	}
	return false
}

// Match returns the hit sequence: tokens containing at least one term, in
// their original order with duplicates kept.
func Match(tokens []string, vocab Vocabulary) []string {
	hits := make([]string, 0)
	for _, tok := range tokens {
		if vocab.Matches(tok) {
			hits = append(hits, tok)
		}
	}
	return hits
}

// CountOccurrences counts every distinct hit token. The map is owned by the
// caller; concurrent chapter workers each build their own.
func CountOccurrences(hits []string) map[string]int {
	counts := make(map[string]int, len(hits))
	for _, h := range hits {
		counts[h]++
	}
	return counts
}

// TotalOccurrences sums the counts of the vocabulary's literal terms. Lookup
// is exact: a hit that only contains a term as a substring is not counted.
func TotalOccurrences(vocab Vocabulary, counts map[string]int) float64 {
	total := 0.0
	for _, term := range vocab.terms {
		total += float64(counts[term])
	}
	return total
}
