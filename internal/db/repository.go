package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrRunNotFound = errors.New("run not found")

type ChapterRow struct {
	Chapter      int
	Tokens       int
	WarDensity   float64
	PeaceDensity float64
	WarHits      int
	PeaceHits    int
	Label        string
}

type Run struct {
	ID            string
	BookTitle     string
	SourcePath    string
	StartedAt     time.Time
	CompletedAt   time.Time
	WarChapters   int
	PeaceChapters int
	Chapters      []ChapterRow
}

// PersistRun stores a finished run and its per-chapter labels. Re-persisting
// the same run id replaces the previous rows.
func PersistRun(dbPath string, run Run) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM chapter_labels WHERE run_id = ?`, run.ID); err != nil {
		return fmt.Errorf("clear chapter labels: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO runs(id, book_title, source_path, started_at, completed_at, chapter_count, war_chapters, peace_chapters) VALUES(?,?,?,?,?,?,?,?)`,
		run.ID,
		run.BookTitle,
		run.SourcePath,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.CompletedAt.UTC().Format(time.RFC3339Nano),
		len(run.Chapters),
		run.WarChapters,
		run.PeaceChapters,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO chapter_labels(run_id, chapter, tokens, war_density, peace_density, war_hits, peace_hits, label) VALUES(?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare chapter insert: %w", err)
	}
	defer stmt.Close()
	for _, c := range run.Chapters {
		if _, err := stmt.Exec(run.ID, c.Chapter, c.Tokens, c.WarDensity, c.PeaceDensity, c.WarHits, c.PeaceHits, c.Label); err != nil {
			return fmt.Errorf("insert chapter %d: %w", c.Chapter, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func LoadRun(dbPath, id string) (*Run, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	run := Run{ID: id}
	var startedAt, completedAt string
	var chapterCount int
	err = conn.QueryRow(
		`SELECT book_title, source_path, started_at, completed_at, chapter_count, war_chapters, peace_chapters FROM runs WHERE id = ?`, id,
	).Scan(&run.BookTitle, &run.SourcePath, &startedAt, &completedAt, &chapterCount, &run.WarChapters, &run.PeaceChapters)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}
	run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
	run.CompletedAt, _ = time.Parse(time.RFC3339Nano, completedAt)

	rows, err := conn.Query(
		`SELECT chapter, tokens, war_density, peace_density, war_hits, peace_hits, label FROM chapter_labels WHERE run_id = ? ORDER BY chapter`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("query chapter labels: %w", err)
	}
	defer rows.Close()

	run.Chapters = make([]ChapterRow, 0, chapterCount)
	for rows.Next() {
		var c ChapterRow
		if err := rows.Scan(&c.Chapter, &c.Tokens, &c.WarDensity, &c.PeaceDensity, &c.WarHits, &c.PeaceHits, &c.Label); err != nil {
			return nil, fmt.Errorf("scan chapter label: %w", err)
		}
		run.Chapters = append(run.Chapters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chapter labels: %w", err)
	}
	return &run, nil
}

func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
