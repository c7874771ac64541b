package audit

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Jiacheng-WU/egglog-parallel/internal/rational"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one interned value as stored in a dump.
type Entry struct {
	Handle uint64
	Numer  int64
	Denom  int64
}

// Run describes one dump run.
type Run struct {
	ID         string
	CreatedAt  time.Time
	SortName   string
	Population int
	Entries    []Entry
}

// Write appends a snapshot of a canonical store to the SQLite file at path,
// creating the file and schema as needed. Returns the UUIDv7 run id.
//
// The snapshot slice is handle-ordered, as produced by Store.Snapshot; the
// handle column is the slice index.
func Write(path, sortName string, snapshot []rational.Rat) (string, error) {
	db, err := open(path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	runID := uuid.Must(uuid.NewV7()).String()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin dump transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO runs (run_id, created_at, sort_name, population) VALUES (?, ?, ?, ?)",
		runID, createdAt, sortName, len(snapshot),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO rationals (run_id, handle, numer, denom) VALUES (?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for h, r := range snapshot {
		if _, err := stmt.Exec(runID, h, r.Num(), r.Den()); err != nil {
			return "", fmt.Errorf("insert entry %d: %w", h, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit dump: %w", err)
	}
	return runID, nil
}

// ReadRun loads one dump run and its entries in handle order.
func ReadRun(path, runID string) (*Run, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	run := &Run{ID: runID}
	var createdAt string
	err = db.QueryRow(
		"SELECT created_at, sort_name, population FROM runs WHERE run_id = ?",
		runID,
	).Scan(&createdAt, &run.SortName, &run.Population)
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse run timestamp: %w", err)
	}

	rows, err := db.Query(
		"SELECT handle, numer, denom FROM rationals WHERE run_id = ? ORDER BY handle",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Handle, &e.Numer, &e.Denom); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		run.Entries = append(run.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return run, nil
}

// RunIDs lists the run ids present in a dump file, oldest first.
// UUIDv7 ids are time-sortable, so lexical order is creation order.
func RunIDs(path string) ([]string, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT run_id FROM runs ORDER BY run_id")
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// open opens or creates the dump database and applies pragmas and schema.
func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to dump database: %w", err)
	}

	// Single writer; dumps are sequential by construction.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}
