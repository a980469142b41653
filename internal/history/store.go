// Package history records received feed items per run in SQLite so past
// runs can be listed and replayed.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/atailhq/atail/internal/feed"
)

// Run is one recorded attachment to a runner.
type Run struct {
	ID        int64
	Endpoint  string
	StartedAt time.Time
	Items     int
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path, ensuring the parent
// directory exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open history db at %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db at %s: %w", path, err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			endpoint TEXT NOT NULL,
			started_at INTEGER NOT NULL DEFAULT (unixepoch())
		);

		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL,
			item_id TEXT NOT NULL,
			feed TEXT NOT NULL,
			format TEXT NOT NULL,
			step INTEGER,
			title TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL DEFAULT (unixepoch())
		);
		CREATE INDEX IF NOT EXISTS idx_items_run_id ON items(run_id);
	`)
	if err != nil {
		return fmt.Errorf("init history schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// BeginRun registers a new run and returns its ID.
func (s *Store) BeginRun(endpoint string) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO runs (endpoint) VALUES (?)`, endpoint)
	if err != nil {
		return 0, fmt.Errorf("begin run: %w", err)
	}
	return res.LastInsertId()
}

// Append records one item under a run.
func (s *Store) Append(runID int64, it feed.Item) error {
	var step sql.NullInt64
	if it.Step != nil {
		step = sql.NullInt64{Int64: int64(*it.Step), Valid: true}
	}
	_, err := s.db.Exec(
		`INSERT INTO items (run_id, item_id, feed, format, step, title, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, it.ID, it.Feed.String(), it.Format, step, it.Title, it.Message,
	)
	if err != nil {
		return fmt.Errorf("append item to run %d: %w", runID, err)
	}
	return nil
}

// Runs lists recorded runs, newest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.endpoint, r.started_at, COUNT(i.id)
		FROM runs r LEFT JOIN items i ON i.run_id = r.id
		GROUP BY r.id ORDER BY r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started int64
		if err := rows.Scan(&r.ID, &r.Endpoint, &started, &r.Items); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = time.Unix(started, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Items returns the items of a run in arrival order.
func (s *Store) Items(runID int64) ([]feed.Item, error) {
	rows, err := s.db.Query(
		`SELECT item_id, feed, format, step, title, message
		 FROM items WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("load run %d: %w", runID, err)
	}
	defer rows.Close()

	var items []feed.Item
	for rows.Next() {
		var it feed.Item
		var src string
		var step sql.NullInt64
		if err := rows.Scan(&it.ID, &src, &it.Format, &step, &it.Title, &it.Message); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Feed = feed.ParseSource(src)
		if step.Valid {
			k := int(step.Int64)
			it.Step = &k
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
