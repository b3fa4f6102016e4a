package segment

import (
	"strings"

	"book_themes/internal/tokenize"
)

const (
	DefaultChapterMarker = "CHAPTER"
	DefaultFooterMarker  = "*** END OF THE PROJECT GUTENBERG EBOOK, WAR AND PEACE ***"
)

type Markers struct {
	// Chapter starts a new chapter on any line containing it.
	Chapter string
	// Footer lines are skipped without closing the open chapter.
	Footer string
}

func DefaultMarkers() Markers {
	return Markers{Chapter: DefaultChapterMarker, Footer: DefaultFooterMarker}
}

// Chapter is an immutable run of tokens between two chapter markers.
// StartToken and EndToken locate it in the book's chapter token stream.
type Chapter struct {
	Index      int
	StartToken int
	EndToken   int
	Tokens     []string
}

func (c Chapter) Len() int { return len(c.Tokens) }

// Chapters scans lines in order and groups the tokens that follow each
// chapter marker. Lines before the first marker are ignored and empty
// chapters are never emitted.
func Chapters(lines []string, markers Markers) []Chapter {
	if markers.Chapter == "" {
		markers.Chapter = DefaultChapterMarker
	}

	var (
		out      []Chapter
		current  []string
		inside   bool
		consumed int
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		out = append(out, Chapter{
			Index:      len(out),
			StartToken: consumed,
			EndToken:   consumed + len(current),
			Tokens:     current,
		})
		consumed += len(current)
		current = nil
	}

	for _, line := range lines {
		switch {
		case strings.Contains(line, markers.Chapter):
			inside = true
			flush()
		case !inside || line == "":
		case isFooter(line, markers):
		default:
			current = append(current, tokenize.Line(line)...)
		}
	}
	flush()

	return out
}

func isFooter(line string, markers Markers) bool {
	return markers.Footer != "" && strings.Contains(line, markers.Footer)
}
