// Package duckdb persists batch validation outcomes for cohort triage.
// The validation core itself never touches storage; this sink is wired
// in by the CLI when a run should be queryable afterwards.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/variantlab/varcheck/internal/validate"
	"github.com/variantlab/varcheck/internal/variant"
)

// Store manages a DuckDB connection for validation outcomes.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS validation_results (
		seq BIGINT,
		chrom VARCHAR,
		pos VARCHAR,
		ref VARCHAR,
		alt VARCHAR,
		assembly VARCHAR,
		accepted BOOLEAN,
		kind VARCHAR,
		reason VARCHAR
	)`)
	return err
}

// WriteOutcomes appends a batch of validation outcomes in one
// transaction.
func (s *Store) WriteOutcomes(outcomes []validate.Outcome) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO validation_results
		(seq, chrom, pos, ref, alt, assembly, accepted, kind, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range outcomes {
		var kind, reason string
		if o.Err != nil {
			kind = validate.KindOf(o.Err).String()
			reason = o.Err.Error()
		}
		_, err := stmt.Exec(
			o.Seq,
			text(o.Record.Chrom),
			text(o.Record.Pos),
			text(o.Record.Ref),
			text(o.Record.Alt),
			text(o.Record.Assembly),
			o.Err == nil,
			kind,
			reason,
		)
		if err != nil {
			return fmt.Errorf("insert outcome: %w", err)
		}
	}

	return tx.Commit()
}

// CountByKind returns rejection counts grouped by failure kind.
func (s *Store) CountByKind() (map[string]int64, error) {
	rows, err := s.db.Query(`SELECT kind, COUNT(*) FROM validation_results
		WHERE NOT accepted GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var kind string
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan count row: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

// Rejected returns the records that failed validation, in sequence
// order.
func (s *Store) Rejected() ([]validate.Outcome, error) {
	rows, err := s.db.Query(`SELECT seq, chrom, pos, ref, alt, assembly, reason
		FROM validation_results WHERE NOT accepted ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query rejected: %w", err)
	}
	defer rows.Close()

	var outcomes []validate.Outcome
	for rows.Next() {
		var seq int64
		var chrom, pos, ref, alt, assembly, reason sql.NullString
		if err := rows.Scan(&seq, &chrom, &pos, &ref, &alt, &assembly, &reason); err != nil {
			return nil, fmt.Errorf("scan rejected row: %w", err)
		}
		outcomes = append(outcomes, validate.Outcome{
			Seq: int(seq),
			Record: &variant.Record{
				Chrom:    field(chrom),
				Pos:      field(pos),
				Ref:      field(ref),
				Alt:      field(alt),
				Assembly: field(assembly),
			},
			Err: fmt.Errorf("%s", reason.String),
		})
	}
	return outcomes, rows.Err()
}

// text converts an optional record field to its stored form; absent
// fields are stored as NULL.
func text(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func field(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return variant.Str(ns.String)
}
