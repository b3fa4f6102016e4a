package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"book_themes/internal/classify"
	"book_themes/internal/db"
	"book_themes/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Print the chapter labels of a stored run",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&databasePath, "db", "", "sqlite database for run history (default from settings)")
}

func runShow(cmd *cobra.Command, args []string) error {
	path := firstNonEmpty(databasePath, cfg.Storage.Database)
	if path == "" {
		return fmt.Errorf("no database configured: pass --db or set storage.database")
	}
	run, err := db.LoadRun(path, args[0])
	if err != nil {
		return err
	}

	labels := make([]classify.Label, len(run.Chapters))
	tokens := 0
	for i, c := range run.Chapters {
		labels[i] = classify.Label(c.Label)
		tokens += c.Tokens
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", run.BookTitle, run.CompletedAt.Format("2006-01-02 15:04:05"))
	if err := report.Print(out, labels); err != nil {
		return err
	}
	cmd.PrintErrln(report.Summary(labels, tokens))
	return nil
}
