package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"book_themes/internal/config"
)

func TestEnsureAtWritesSettings(t *testing.T) {
	t.Setenv("BOOK_THEMES_DATABASE", "")
	base := filepath.Join(t.TempDir(), BaseDirName)
	root, err := EnsureAt(base)
	if err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}
	cfg, err := config.Load(SettingsPath(root))
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if cfg.Markers.Chapter != "CHAPTER" {
		t.Fatalf("unexpected chapter marker %q", cfg.Markers.Chapter)
	}
	if cfg.Storage.Database != DatabasePath(root) {
		t.Fatalf("unexpected database path %q", cfg.Storage.Database)
	}
}

func TestCreateProject(t *testing.T) {
	root, err := EnsureAt(filepath.Join(t.TempDir(), BaseDirName))
	if err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}

	project, err := CreateProject(root, "War and Peace", "war_and_peace.txt", []byte("CHAPTER I\n"))
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	for _, p := range []string{project.Root, project.SourcePath, project.ReportPath} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected path to exist %s: %v", p, err)
		}
	}

	again, err := CreateProject(root, "  war and peace ", "../../escape.txt", nil)
	if err != nil {
		t.Fatalf("create project again: %v", err)
	}
	if again.ID != project.ID {
		t.Fatalf("expected same project id, got %s and %s", project.ID, again.ID)
	}
	if filepath.Dir(again.SourcePath) != project.Root {
		t.Fatalf("source escaped project root: %s", again.SourcePath)
	}
}

func TestSaveAndLoadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := Report{
		BookTitle:     "War and Peace",
		RunID:         "abc",
		ChapterCount:  2,
		WarChapters:   1,
		PeaceChapters: 1,
		Chapters: []ChapterReport{
			{Chapter: 1, Label: "War-related", WarDensity: 0.48, PeaceDensity: 0.36},
			{Chapter: 2, Label: "Peace-related"},
		},
	}
	if err := SaveReport(path, report); err != nil {
		t.Fatalf("save report: %v", err)
	}
	got, err := LoadReport(path)
	if err != nil {
		t.Fatalf("load report: %v", err)
	}
	if got.RunID != "abc" || len(got.Chapters) != 2 || got.Chapters[0].WarDensity != 0.48 {
		t.Fatalf("unexpected report: %+v", got)
	}
}
