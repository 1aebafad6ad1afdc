// Package sqlite provides a SQLite-backed implementation of the track
// store port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/ewilliams-labs/trackline/internal/core/domain"
	"github.com/ewilliams-labs/trackline/internal/core/ports"
)

// Adapter implements the track store port for SQLite.
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.TrackStore = (*Adapter)(nil)

// NewAdapter opens the database file and verifies the connection.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite adapter: open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("sqlite adapter: ping db: %w", err)
	}

	return &Adapter{db: db}, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Replace swaps the named table's contents for rows. The new rows are
// bulk-inserted into a staging table inside one transaction, then the
// old table is dropped and the staging table renamed, so a reader never
// observes a half-written table.
func (a *Adapter) Replace(ctx context.Context, table string, rows []domain.Track) error {
	if err := validTableName(table); err != nil {
		return err
	}
	staging := fmt.Sprintf("%s_new_%s", table, strings.ReplaceAll(uuid.NewString(), "-", ""))

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite adapter: begin transaction: %w", err)
	}
	defer tx.Rollback() // Safety net: auto-rollback if we error/panic before commit

	createStaging := fmt.Sprintf(`
		CREATE TABLE %s (
			track_id TEXT,
			track_name TEXT,
			release_date TEXT,
			label TEXT,
			duration_sec REAL,
			track_popularity INTEGER,
			explicit BOOLEAN NOT NULL,
			radio_mix BOOLEAN
		)
	`, staging)
	if _, err := tx.ExecContext(ctx, createStaging); err != nil {
		return fmt.Errorf("sqlite adapter: create staging table: %w", err)
	}

	// Prepare once for the bulk insert
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (
			track_id, track_name, release_date, label,
			duration_sec, track_popularity, explicit, radio_mix
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, staging))
	if err != nil {
		return fmt.Errorf("sqlite adapter: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(
			ctx,
			row.ID,
			row.Name,
			formatDate(row.ReleaseDate),
			row.Label,
			row.DurationSec,
			row.Popularity,
			row.Explicit,
			row.RadioMix,
		); err != nil {
			return fmt.Errorf("sqlite adapter: insert track %s: %w", row.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
		return fmt.Errorf("sqlite adapter: drop old table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s RENAME TO %s", staging, table)); err != nil {
		return fmt.Errorf("sqlite adapter: rename staging table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite adapter: transaction commit failed: %w", err)
	}

	return nil
}

// TopLabels returns the labels with the most tracks, busiest first.
func (a *Adapter) TopLabels(ctx context.Context, table string, limit int) ([]domain.LabelCount, error) {
	if err := validTableName(table); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT label, COUNT(*) AS track_count
		FROM %s
		GROUP BY label
		ORDER BY track_count DESC
		LIMIT ?
	`, table)

	rows, err := a.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite adapter: query top labels: %w", err)
	}
	defer rows.Close()

	var out []domain.LabelCount
	for rows.Next() {
		var lc domain.LabelCount
		if err := rows.Scan(&lc.Label, &lc.TrackCount); err != nil {
			return nil, fmt.Errorf("sqlite adapter: scan label count: %w", err)
		}
		out = append(out, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite adapter: iterate label counts: %w", err)
	}

	return out, nil
}

// TopTracks returns the most popular tracks released inside [from, to],
// most popular first.
func (a *Adapter) TopTracks(ctx context.Context, table string, from, to time.Time, limit int) ([]domain.TrackPopularity, error) {
	if err := validTableName(table); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT track_name, track_popularity
		FROM %s
		WHERE release_date BETWEEN ? AND ?
		ORDER BY track_popularity DESC
		LIMIT ?
	`, table)

	rows, err := a.db.QueryContext(ctx, query, from.Format(dateLayout), to.Format(dateLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite adapter: query top tracks: %w", err)
	}
	defer rows.Close()

	var out []domain.TrackPopularity
	for rows.Next() {
		var tp domain.TrackPopularity
		var popularity sql.NullInt64
		if err := rows.Scan(&tp.Name, &popularity); err != nil {
			return nil, fmt.Errorf("sqlite adapter: scan track popularity: %w", err)
		}
		if popularity.Valid {
			tp.Popularity = popularity.Int64
		}
		out = append(out, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite adapter: iterate track popularity: %w", err)
	}

	return out, nil
}

const dateLayout = "2006-01-02"

// Dates are stored as ISO text so BETWEEN range predicates compare
// correctly; nil stays NULL.
func formatDate(when *time.Time) any {
	if when == nil {
		return nil
	}
	return when.Format(dateLayout)
}

// Table names are interpolated into DDL, so restrict them to plain
// identifier characters.
func validTableName(table string) error {
	if table == "" {
		return fmt.Errorf("sqlite adapter: empty table name")
	}
	for _, r := range table {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			continue
		}
		return fmt.Errorf("sqlite adapter: invalid table name %q", table)
	}
	return nil
}
