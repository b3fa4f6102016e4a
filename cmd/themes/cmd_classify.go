package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"book_themes/internal/analysis"
	"book_themes/internal/classify"
	"book_themes/internal/db"
	"book_themes/internal/ingest"
	"book_themes/internal/metrics"
	"book_themes/internal/report"
	"book_themes/internal/terms"
	"book_themes/internal/workspace"
)

var (
	warTermsPath   string
	peaceTermsPath string
	reportPath     string
	databasePath   string
	saveProject    bool
	quiet          bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [book]",
	Short: "Label every chapter of a book",
	Long: `Reads the book (.txt, .pdf or .docx) and both vocabularies, then prints
one "Chapter N: Label" line per chapter.

Example:
  themes classify data/war_and_peace.txt --war data/war_terms.txt --peace data/peace_terms.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&warTermsPath, "war", "", "war vocabulary, one term per line (default from settings)")
	classifyCmd.Flags().StringVar(&peaceTermsPath, "peace", "", "peace vocabulary, one term per line (default from settings)")
	classifyCmd.Flags().StringVar(&reportPath, "json", "", "write a JSON report with per-chapter densities")
	classifyCmd.Flags().StringVar(&databasePath, "db", "", "sqlite database for run history (default from settings)")
	classifyCmd.Flags().BoolVar(&saveProject, "project", false, "keep a copy of the book and report in the workspace")
	classifyCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the chapter labels")
}

func runClassify(cmd *cobra.Command, args []string) error {
	log := mustLogger()

	book, err := ingest.ParseFile(args[0])
	if err != nil {
		return wrapf(err, "load book %s", args[0])
	}
	war, err := loadVocabulary("war", firstNonEmpty(warTermsPath, cfg.Vocabulary.War))
	if err != nil {
		return err
	}
	peace, err := loadVocabulary("peace", firstNonEmpty(peaceTermsPath, cfg.Vocabulary.Peace))
	if err != nil {
		return err
	}

	observer, err := metrics.NewObserver("", nil)
	if err != nil {
		return err
	}
	analyzer := analysis.New(analysis.Options{
		Workers: cfg.Workers,
		Markers: cfg.SegmentMarkers(),
	}, log, observer)

	res, runErr := analyzer.Run(cmd.Context(), book.Lines, war, peace)
	if err := observer.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		log.Warn("metrics export failed", zap.Error(err))
	}
	if runErr != nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	if err := report.Print(out, res.Labels); err != nil {
		return err
	}
	if !quiet {
		cmd.PrintErrln(report.Summary(res.Labels, res.Tokens()))
	}

	rep := buildReport(book.Title, res)
	if reportPath != "" {
		if err := workspace.SaveReport(reportPath, rep); err != nil {
			return err
		}
	}
	if saveProject {
		if err := persistProject(book, rep); err != nil {
			return err
		}
	}
	if path := firstNonEmpty(databasePath, cfg.Storage.Database); path != "" {
		if err := db.PersistRun(path, buildRun(book, res)); err != nil {
			return wrapf(err, "persist run")
		}
		log.Debug("run persisted", zap.String("run_id", res.RunID), zap.String("db", path))
	}
	return nil
}

func loadVocabulary(name, path string) (terms.Vocabulary, error) {
	raw, err := ingest.ReadVocabulary(path)
	if err != nil {
		return terms.Vocabulary{}, err
	}
	if len(raw) == 0 {
		mustLogger().Warn("vocabulary is empty", zap.String("vocabulary", name), zap.String("path", path))
	}
	return terms.NewVocabulary(name, raw), nil
}

func persistProject(book *ingest.Parsed, rep workspace.Report) error {
	root, err := workspace.EnsureDefault()
	if err != nil {
		return err
	}
	project, err := workspace.CreateProject(root, book.Title, book.SourcePath, book.SourceBytes)
	if err != nil {
		return err
	}
	return workspace.SaveReport(project.ReportPath, rep)
}

func buildReport(title string, res *analysis.Result) workspace.Report {
	war, peace := classify.Tally(res.Labels)
	rep := workspace.Report{
		BookTitle:     title,
		RunID:         res.RunID,
		WordCount:     res.Tokens(),
		ChapterCount:  len(res.Chapters),
		WarChapters:   war,
		PeaceChapters: peace,
		Chapters:      make([]workspace.ChapterReport, len(res.Chapters)),
	}
	for i, ch := range res.Chapters {
		p := res.Pairs[i]
		rep.Chapters[i] = workspace.ChapterReport{
			Chapter:      i + 1,
			Label:        string(res.Labels[i]),
			Tokens:       ch.Len(),
			WarDensity:   p.War,
			PeaceDensity: p.Peace,
			Detail:       p,
		}
	}
	return rep
}

func buildRun(book *ingest.Parsed, res *analysis.Result) db.Run {
	war, peace := classify.Tally(res.Labels)
	run := db.Run{
		ID:            res.RunID,
		BookTitle:     book.Title,
		SourcePath:    book.SourcePath,
		StartedAt:     res.StartedAt,
		CompletedAt:   res.CompletedAt,
		WarChapters:   war,
		PeaceChapters: peace,
		Chapters:      make([]db.ChapterRow, len(res.Chapters)),
	}
	for i, ch := range res.Chapters {
		p := res.Pairs[i]
		run.Chapters[i] = db.ChapterRow{
			Chapter:      i + 1,
			Tokens:       ch.Len(),
			WarDensity:   p.War,
			PeaceDensity: p.Peace,
			WarHits:      p.WarDetail.Hits,
			PeaceHits:    p.PeaceDetail.Hits,
			Label:        string(res.Labels[i]),
		}
	}
	return run
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
