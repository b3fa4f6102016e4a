package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type ChapterReport struct {
	Chapter      int     `json:"chapter"`
	Label        string  `json:"label"`
	Tokens       int     `json:"tokens"`
	WarDensity   float64 `json:"war_density"`
	PeaceDensity float64 `json:"peace_density"`
	Detail       any     `json:"detail,omitempty"`
}

type Report struct {
	BookTitle     string          `json:"book_title"`
	RunID         string          `json:"run_id"`
	WordCount     int             `json:"word_count"`
	ChapterCount  int             `json:"chapter_count"`
	WarChapters   int             `json:"war_chapters"`
	PeaceChapters int             `json:"peace_chapters"`
	Chapters      []ChapterReport `json:"chapters"`
}

type ProjectInfo struct {
	ID         string
	Root       string
	SourcePath string
	ReportPath string
}

// CreateProject keeps one directory per book title holding a copy of the
// source and the latest report.
func CreateProject(workspaceRoot, bookTitle, sourceFileName string, source []byte) (*ProjectInfo, error) {
	id := bookTitleHash(bookTitle)
	projectRoot := filepath.Join(workspaceRoot, "projects", id)
	if err := os.MkdirAll(projectRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create project dir: %w", err)
	}

	sourcePath := filepath.Join(projectRoot, sanitizeSourceName(sourceFileName))
	if len(source) > 0 {
		if err := os.WriteFile(sourcePath, source, 0o644); err != nil {
			return nil, fmt.Errorf("write source file: %w", err)
		}
	}

	reportPath := filepath.Join(projectRoot, "report.json")
	if _, err := os.Stat(reportPath); os.IsNotExist(err) {
		empty := Report{BookTitle: strings.TrimSpace(bookTitle), Chapters: []ChapterReport{}}
		if err := SaveReport(reportPath, empty); err != nil {
			return nil, err
		}
	}

	return &ProjectInfo{
		ID:         id,
		Root:       projectRoot,
		SourcePath: sourcePath,
		ReportPath: reportPath,
	}, nil
}

func SaveReport(path string, report Report) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func LoadReport(path string) (*Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}

func bookTitleHash(title string) string {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])[:12]
}

func sanitizeSourceName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "source.txt"
	}
	return strings.ReplaceAll(base, "..", "")
}
