package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    book_title TEXT,
    source_path TEXT,
    started_at TEXT,
    completed_at TEXT,
    chapter_count INTEGER,
    war_chapters INTEGER,
    peace_chapters INTEGER
);

CREATE TABLE IF NOT EXISTS chapter_labels (
    id INTEGER PRIMARY KEY,
    run_id TEXT REFERENCES runs(id),
    chapter INTEGER,
    tokens INTEGER,
    war_density REAL,
    peace_density REAL,
    war_hits INTEGER,
    peace_hits INTEGER,
    label TEXT
);

CREATE INDEX IF NOT EXISTS chapter_labels_run ON chapter_labels(run_id, chapter);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
