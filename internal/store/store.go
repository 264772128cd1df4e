// Package store handles SQLite persistence of finished reports.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/urltop/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const (
	kindDomain = "domain"
	kindPath   = "path"
)

// ErrRunNotFound is returned by GetRun for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// Store wraps SQLite access for archived runs.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			source TEXT NOT NULL,
			top_limit INTEGER NOT NULL,
			total_urls INTEGER NOT NULL,
			domains INTEGER NOT NULL,
			paths INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_entries (
			run_id INTEGER NOT NULL,
			kind TEXT NOT NULL,
			position INTEGER NOT NULL,
			entry_key TEXT NOT NULL,
			entry_count INTEGER NOT NULL,
			PRIMARY KEY (run_id, kind, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a finished report together with its ranked entries.
func (s *Store) InsertRun(ctx context.Context, run model.Run) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, source, top_limit, total_urls, domains, paths)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.Source,
		run.Limit,
		run.Report.TotalURLs,
		run.Report.DomainCount,
		run.Report.PathCount,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_entries (run_id, kind, position, entry_key, entry_count) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, group := range []struct {
		kind    string
		entries []model.Entry
	}{
		{kindDomain, run.Report.TopDomains},
		{kindPath, run.Report.TopPaths},
	} {
		for pos, e := range group.entries {
			if _, err = stmt.ExecContext(ctx, id, group.kind, pos, e.Key, e.Count); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns the most recent runs first, without their entries.
// A limit of zero or less returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]model.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, source, top_limit, total_urls, domains, paths
		FROM runs
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetRun loads one run with its ranked entries.
func (s *Store) GetRun(ctx context.Context, id int64) (model.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, source, top_limit, total_urls, domains, paths
		FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return model.Run{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, entry_key, entry_count FROM run_entries WHERE run_id = ? ORDER BY kind, position`, id)
	if err != nil {
		return model.Run{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	run.Report.TopDomains = []model.Entry{}
	run.Report.TopPaths = []model.Entry{}
	for rows.Next() {
		var kind string
		var e model.Entry
		if err := rows.Scan(&kind, &e.Key, &e.Count); err != nil {
			return model.Run{}, err
		}
		switch kind {
		case kindDomain:
			run.Report.TopDomains = append(run.Report.TopDomains, e)
		case kindPath:
			run.Report.TopPaths = append(run.Report.TopPaths, e)
		}
	}
	if err := rows.Err(); err != nil {
		return model.Run{}, err
	}
	return run, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (model.Run, error) {
	var run model.Run
	var startedAt string
	if err := row.Scan(&run.ID, &startedAt, &run.Source, &run.Limit,
		&run.Report.TotalURLs, &run.Report.DomainCount, &run.Report.PathCount); err != nil {
		return model.Run{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return model.Run{}, err
	}
	run.StartedAt = parsed
	return run, nil
}
