package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book_themes/internal/ingest"
)

var (
	warTerms   = NewVocabulary("war", []string{"war", "battle", "struggle", "soldier", "army"})
	peaceTerms = NewVocabulary("peace", []string{"peace", "love", "harmony", "calm"})
)

func TestMatchWarTerms(t *testing.T) {
	words := []string{"hope", "love", "war", "peace", "struggle"}
	assert.Equal(t, []string{"war", "struggle"}, Match(words, warTerms))
}

func TestMatchPeaceTerms(t *testing.T) {
	words := []string{"hope", "love", "war", "peace", "struggle"}
	assert.Equal(t, []string{"love", "peace"}, Match(words, peaceTerms))
}

func TestMatchIsSubstringAndKeepsDuplicates(t *testing.T) {
	words := []string{"warm", "word", "warfare", "war", "war"}
	assert.Equal(t, []string{"warm", "warfare", "war", "war"}, Match(words, NewVocabulary("war", []string{"war"})))
	assert.Empty(t, Match(words, NewVocabulary("none", nil)))
}

func TestNewVocabularyCopiesInput(t *testing.T) {
	raw := []string{"war"}
	v := NewVocabulary("war", raw)
	raw[0] = "peace"
	assert.Equal(t, []string{"war"}, v.Terms())
	assert.Equal(t, "war", v.Name())
	assert.Equal(t, 1, v.Len())
}

func TestCountOccurrences(t *testing.T) {
	counts := CountOccurrences([]string{"war", "dark", "light", "war", "hope"})
	require.Len(t, counts, 4)
	assert.Equal(t, 2, counts["war"])
	assert.Equal(t, 1, counts["dark"])
	assert.Equal(t, 1, counts["light"])
	assert.Equal(t, 1, counts["hope"])
}

func TestTotalOccurrences(t *testing.T) {
	vocab := NewVocabulary("mixed", []string{"war", "love", "hate"})
	counts := map[string]int{"war": 3, "love": 1, "honest": 2}
	assert.Equal(t, 4.0, TotalOccurrences(vocab, counts))
}

func TestTotalOccurrencesIgnoresSubstringOnlyHits(t *testing.T) {
	vocab := NewVocabulary("war", []string{"war"})
	hits := Match([]string{"warfare", "warrior", "war"}, vocab)
	require.Len(t, hits, 3)
	assert.Equal(t, 1.0, TotalOccurrences(vocab, CountOccurrences(hits)))
}

func TestGapProfile(t *testing.T) {
	tests := []struct {
		name string
		text []string
		hits []string
		want []int
	}{
		{
			name: "hits after misses",
			text: []string{"word", "word", "war", "war", "peace"},
			hits: []string{"war", "war"},
			want: []int{0, 0, 2, 0, 0},
		},
		{
			name: "trailing hit",
			text: []string{"word", "word", "war", "war", "peace"},
			hits: []string{"peace"},
			want: []int{0, 0, 0, 0, 4},
		},
		{
			name: "no hits",
			text: []string{"a", "b"},
			want: []int{0, 0},
		},
		{
			name: "membership not position",
			text: []string{"war", "x", "war"},
			hits: []string{"war"},
			want: []int{0, 0, 1},
		},
		{
			name: "hits longer than text",
			text: []string{"x"},
			hits: []string{"war", "war"},
			want: []int{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GapProfile(tt.text, tt.hits)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0, Sum(nil))
	assert.Equal(t, 6, Sum([]int{1, 2, 3}))
}

func TestMatchShippedVocabularies(t *testing.T) {
	words := []string{"hope", "love", "war", "peace", "struggle"}

	war, err := ingest.ReadVocabulary("../../data/war_terms.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"war", "struggle"}, Match(words, NewVocabulary("war", war)))

	peace, err := ingest.ReadVocabulary("../../data/peace_terms.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"love", "peace"}, Match(words, NewVocabulary("peace", peace)))
}
