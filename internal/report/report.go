package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"book_themes/internal/classify"
)

var (
	warColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	peaceColor = color.New(color.FgGreen).SprintFunc()
	errColor   = color.New(color.FgRed).SprintFunc()
)

// Print writes one "Chapter N: Label" line per chapter, numbered from 1.
func Print(w io.Writer, labels []classify.Label) error {
	for i, l := range labels {
		if _, err := fmt.Fprintf(w, "Chapter %d: %s\n", i+1, paint(l)); err != nil {
			return fmt.Errorf("print chapter %d: %w", i+1, err)
		}
	}
	return nil
}

// Summary renders the tallies of a run, e.g.
// "365 chapters, 566,321 tokens: 120 war-related, 245 peace-related".
func Summary(labels []classify.Label, tokens int) string {
	war, peace := classify.Tally(labels)
	return fmt.Sprintf("%s chapters, %s tokens: %s war-related, %s peace-related",
		humanize.Comma(int64(len(labels))),
		humanize.Comma(int64(tokens)),
		humanize.Comma(int64(war)),
		humanize.Comma(int64(peace)),
	)
}

func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, errColor("Error: "+err.Error()))
}

func paint(l classify.Label) string {
	if l == classify.WarRelated {
		return warColor(string(l))
	}
	return peaceColor(string(l))
}
