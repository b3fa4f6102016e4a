package density

import (
	"book_themes/internal/segment"
	"book_themes/internal/terms"
)

// Breakdown keeps the intermediate values behind one chapter's density so
// reports can show why a chapter leaned one way.
type Breakdown struct {
	Tokens           int     `json:"tokens"`
	Hits             int     `json:"hits"`
	TotalOccurrences float64 `json:"total_occurrences"`
	TotalDistance    int     `json:"total_distance"`
	RelativeDistance float64 `json:"relative_distance"`
	Density          float64 `json:"density"`
}

// Pair holds both densities of one chapter.
type Pair struct {
	War         float64   `json:"war"`
	Peace       float64   `json:"peace"`
	WarDetail   Breakdown `json:"war_detail"`
	PeaceDetail Breakdown `json:"peace_detail"`
}

// Compute scores tokens against vocab. An empty chapter scores 0 instead of
// dividing by zero.
func Compute(tokens []string, vocab terms.Vocabulary) Breakdown {
	n := len(tokens)
	if n == 0 {
		return Breakdown{}
	}

	hits := terms.Match(tokens, vocab)
	gaps := terms.GapProfile(tokens, hits)
	counts := terms.CountOccurrences(hits)

	totalDistance := terms.Sum(gaps)
	relativeDistance := float64(totalDistance) / float64(n)
	totalOccurrences := terms.TotalOccurrences(vocab, counts)

	return Breakdown{
		Tokens:           n,
		Hits:             len(hits),
		TotalOccurrences: totalOccurrences,
		TotalDistance:    totalDistance,
		RelativeDistance: relativeDistance,
		Density:          (totalOccurrences + relativeDistance) / float64(n),
	}
}

func Score(tokens []string, vocab terms.Vocabulary) float64 {
	return Compute(tokens, vocab).Density
}

func ScoreChapter(ch segment.Chapter, war, peace terms.Vocabulary) Pair {
	w := Compute(ch.Tokens, war)
	p := Compute(ch.Tokens, peace)
	return Pair{War: w.Density, Peace: p.Density, WarDetail: w, PeaceDetail: p}
}
