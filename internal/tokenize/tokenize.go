package tokenize

import "strings"

// Line splits a line on ASCII whitespace and normalizes every word to its
// lowercase ASCII letters. Words without letters become empty tokens so the
// token count always matches the word count.
func Line(line string) []string {
	words := strings.FieldsFunc(line, isSpace)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, normalize(w))
	}
	return tokens
}

func normalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
