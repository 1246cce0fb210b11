// Package quotedb archives saved quote snapshots in SQLite so past quotes
// can be searched and reloaded after the working file moves on.
package quotedb

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a quote id does not exist.
var ErrNotFound = errors.New("quote not found")

// ListItem is one row of the quote history listing.
type ListItem struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"createdAt"`
	Title     string  `json:"title"`
	Total     float64 `json:"total"`
}

// Archive stores and retrieves quote snapshots.
type Archive struct {
	db *sql.DB
}

// New wraps an open database handle. The quotes table must already be
// migrated.
func New(db *sql.DB) *Archive {
	return &Archive{db: db}
}

// Save inserts a snapshot and returns its row id. The snapshot JSON is
// stored verbatim; totals are stored separately so listings never have to
// parse the full record.
func (a *Archive) Save(title, notes string, snapshotJSON []byte, finalPrice, totalCost float64, now time.Time) (int64, error) {
	totals, err := json.Marshal(map[string]float64{
		"total":      finalPrice,
		"total_cost": totalCost,
	})
	if err != nil {
		return 0, fmt.Errorf("encode quote totals: %w", err)
	}

	result, err := a.db.Exec(`
		INSERT INTO quotes (created_at, title, notes, snapshot_json, totals_json)
		VALUES (?, ?, ?, ?, ?)
	`, now.UTC().Format(time.RFC3339), title, notes, string(snapshotJSON), string(totals))
	if err != nil {
		return 0, fmt.Errorf("insert quote: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read quote id: %w", err)
	}
	return id, nil
}

// List returns saved quotes, newest first. A non-empty query filters by
// title or notes substring.
func (a *Archive) List(query string) ([]ListItem, error) {
	query = strings.TrimSpace(query)
	search := "%" + query + "%"
	rows, err := a.db.Query(`
		SELECT
			id,
			created_at,
			COALESCE(title, ''),
			totals_json
		FROM quotes
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]ListItem, 0)
	for rows.Next() {
		var item ListItem
		var totalsJSON string
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.Title, &totalsJSON); err != nil {
			return nil, err
		}
		item.Total = extractTotalFromJSON(totalsJSON)
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}

// Get returns the raw snapshot JSON for a saved quote.
func (a *Archive) Get(id int64) ([]byte, error) {
	var snapshotJSON string
	err := a.db.QueryRow(`
		SELECT snapshot_json FROM quotes WHERE id = ?
	`, id).Scan(&snapshotJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(snapshotJSON), nil
}

func extractTotalFromJSON(totalsJSON string) float64 {
	var values map[string]float64
	if err := json.Unmarshal([]byte(totalsJSON), &values); err != nil {
		return 0
	}

	for _, key := range []string{"total", "grand_total", "final_total"} {
		if total, ok := values[key]; ok {
			return total
		}
	}

	return 0
}
