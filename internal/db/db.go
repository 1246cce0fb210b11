// Package db opens the quote history database.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// The archive sees one writer and occasional reads; WAL keeps history
// queries from blocking a save, and the busy timeout covers the overlap.
const pragmas = `
	PRAGMA journal_mode = WAL;
	PRAGMA foreign_keys = ON;
	PRAGMA busy_timeout = 5000;
`

// Open opens the SQLite database at path, applies the pragmas, and
// validates connectivity before handing the pool back.
func Open(path string) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := pool.Exec(pragmas); err != nil {
		pool.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := pool.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return pool, nil
}
