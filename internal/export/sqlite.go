// Package export writes a finished report to an SQLite database.
package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"radmarkers/internal/output"
)

var schema = []string{
	`DROP TABLE IF EXISTS observations`,
	`DROP TABLE IF EXISTS alleles`,
	`DROP TABLE IF EXISTS loci`,
	`DROP TABLE IF EXISTS individuals`,
	`DROP TABLE IF EXISTS runs`,
	`CREATE TABLE runs (
		run_id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		metric TEXT NOT NULL
	)`,
	`CREATE TABLE individuals (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE loci (
		number INTEGER PRIMARY KEY,
		cluster_id INTEGER NOT NULL,
		tag_count INTEGER NOT NULL,
		joint_pattern TEXT NOT NULL,
		mirrored INTEGER NOT NULL
	)`,
	`CREATE TABLE alleles (
		locus INTEGER NOT NULL REFERENCES loci(number),
		sequence TEXT NOT NULL,
		pattern TEXT NOT NULL,
		PRIMARY KEY (locus, sequence)
	)`,
	`CREATE TABLE observations (
		locus INTEGER NOT NULL,
		sequence TEXT NOT NULL,
		individual INTEGER NOT NULL REFERENCES individuals(position),
		reads INTEGER NOT NULL,
		fragments INTEGER NOT NULL,
		quality TEXT NOT NULL
	)`,
}

// WriteSQLite replaces the report tables in the database at path with r, in
// one transaction.
func WriteSQLite(ctx context.Context, path string, r output.Report) (retErr error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO runs (run_id, created_at, metric) VALUES (?, ?, ?)`,
		r.RunID, time.Now().UTC().Format(time.RFC3339), r.Metric.String()); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, ind := range r.Individuals {
		if _, err := tx.ExecContext(ctx, `INSERT INTO individuals (position, name) VALUES (?, ?)`, ind.Index, ind.Name); err != nil {
			return fmt.Errorf("insert individual %s: %w", ind.Name, err)
		}
	}
	for _, l := range r.Loci() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO loci (number, cluster_id, tag_count, joint_pattern, mirrored) VALUES (?, ?, ?, ?, ?)`,
			l.Number, int(l.ID), l.Bucket, l.Joint, l.Mirrored); err != nil {
			return fmt.Errorf("insert locus %d: %w", l.Number, err)
		}
		for _, a := range l.Alleles {
			if _, err := tx.ExecContext(ctx, `INSERT INTO alleles (locus, sequence, pattern) VALUES (?, ?, ?)`,
				l.Number, a.Seq, a.Pattern); err != nil {
				return fmt.Errorf("insert allele %s: %w", a.Seq, err)
			}
			for i := range r.Individuals {
				o, ok := a.Obs[i]
				if !ok {
					continue
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO observations (locus, sequence, individual, reads, fragments, quality) VALUES (?, ?, ?, ?, ?, ?)`,
					l.Number, a.Seq, i, o.Reads, o.Fragments, o.Quality); err != nil {
					return fmt.Errorf("insert observation %s/%d: %w", a.Seq, i, err)
				}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
