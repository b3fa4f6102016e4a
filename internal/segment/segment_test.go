package segment

import (
	"strings"
	"testing"
)

func TestChapters(t *testing.T) {
	book := []string{"CHAPTER 1", "This is chapter 1.", "CHAPTER 2", "This is chapter 2."}
	chapters := Chapters(book, DefaultMarkers())
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	for i, ch := range chapters {
		if ch.Len() != 4 {
			t.Fatalf("chapter %d: expected 4 tokens, got %d", i, ch.Len())
		}
		if ch.Index != i {
			t.Fatalf("chapter %d: unexpected index %d", i, ch.Index)
		}
	}
}

func TestChaptersIgnoresFrontMatterAndEmptyChapters(t *testing.T) {
	book := []string{
		"The Project Gutenberg eBook of War and Peace",
		"",
		"CHAPTER I",
		"CHAPTER II",
		"",
		"Well, Prince, so Genoa and Lucca are now just family estates.",
	}
	chapters := Chapters(book, DefaultMarkers())
	if len(chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(chapters))
	}
	if chapters[0].Tokens[0] != "well" {
		t.Fatalf("front matter leaked into chapter: %v", chapters[0].Tokens)
	}
}

func TestChaptersNoMarker(t *testing.T) {
	if got := Chapters([]string{"no chapters here", "at all"}, DefaultMarkers()); len(got) != 0 {
		t.Fatalf("expected no chapters, got %d", len(got))
	}
}

func TestChaptersFooterDoesNotCloseChapter(t *testing.T) {
	book := []string{
		"CHAPTER XVI",
		"the war ended",
		DefaultFooterMarker,
		"and peace returned",
	}
	chapters := Chapters(book, DefaultMarkers())
	if len(chapters) != 1 {
		t.Fatalf("expected footer to keep one chapter, got %d", len(chapters))
	}
	got := strings.Join(chapters[0].Tokens, " ")
	if got != "the war ended and peace returned" {
		t.Fatalf("unexpected tokens: %q", got)
	}
}

func TestChaptersTokenOffsets(t *testing.T) {
	book := []string{"CHAPTER 1", "one two three", "CHAPTER 2", "four five"}
	chapters := Chapters(book, Markers{Chapter: "CHAPTER"})
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	if chapters[1].StartToken != 3 || chapters[1].EndToken != 5 {
		t.Fatalf("invalid bounds: %+v", chapters[1])
	}
}
