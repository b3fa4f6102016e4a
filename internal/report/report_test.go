package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book_themes/internal/classify"
)

func init() {
	color.NoColor = true
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, []classify.Label{classify.WarRelated, classify.PeaceRelated})
	require.NoError(t, err)
	assert.Equal(t, "Chapter 1: War-related\nChapter 2: Peace-related\n", buf.String())
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestSummary(t *testing.T) {
	labels := []classify.Label{classify.WarRelated, classify.PeaceRelated, classify.PeaceRelated}
	assert.Equal(t, "3 chapters, 12,345 tokens: 1 war-related, 2 peace-related", Summary(labels, 12345))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("density length mismatch"))
	assert.Equal(t, "Error: density length mismatch\n", buf.String())

	buf.Reset()
	PrintError(&buf, nil)
	assert.Empty(t, buf.String())
}
