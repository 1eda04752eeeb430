// Package sqlite writes the unit catalog to a SQLite database so that tools
// outside Go can look up dimensions and conversion factors.
//
// A catalog file holds one snapshot: Attach recreates the schema, Save
// replaces every row in a single transaction.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/units/pkg/units"
)

//go:embed schema.sql
var schemaSQL string

// Store errors.
var (
	ErrAlreadyAttached = errors.New("catalog store already attached")
	ErrDetached        = errors.New("catalog store is detached")
)

// Export identifies one saved snapshot.
type Export struct {
	ID         string    `json:"id" yaml:"id"`
	Version    string    `json:"version" yaml:"version"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	Dimensions int       `json:"dimensions" yaml:"dimensions"`
	Units      int       `json:"units" yaml:"units"`
}

// Store is a unit catalog backed by a SQLite file.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// NewStore returns a detached store.
func NewStore() *Store {
	return &Store{}
}

// Attach creates the catalog file at path, replacing any existing file, and
// initializes the schema. Parent directories are created as needed.
func (s *Store) Attach(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return ErrAlreadyAttached
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove old catalog: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}
	s.db = db
	s.path = path
	return nil
}

// Detach closes the database. It is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the file of the attached catalog.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Save replaces the stored catalog with dims and us and records the
// snapshot under a new export ID.
func (s *Store) Save(ctx context.Context, version string, dims []units.Named, us []units.UnitInfo) (Export, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return Export{}, ErrDetached
	}

	exp := Export{
		ID:         newID(),
		Version:    version,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		Dimensions: len(dims),
		Units:      len(us),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Export{}, err
	}
	defer tx.Rollback()

	for _, table := range []string{"exports", "exponents", "dimensions", "units"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return Export{}, fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO exports (export_id, version, created_at) VALUES (?, ?, ?)`,
		exp.ID, exp.Version, exp.CreatedAt.Format(time.RFC3339),
	); err != nil {
		return Export{}, fmt.Errorf("insert export: %w", err)
	}

	for _, d := range dims {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dimensions (name, symbol, dims) VALUES (?, ?, ?)`,
			d.Name, d.Symbol, d.Dims.String(),
		); err != nil {
			return Export{}, fmt.Errorf("insert dimension %s: %w", d.Name, err)
		}
		for b := units.BaseMass; b <= units.BaseMoles; b++ {
			r := d.Dims.Of(b)
			if r.IsZero() {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO exponents (dimension, base, num, den) VALUES (?, ?, ?, ?)`,
				d.Name, b.String(), r.Num(), r.Den(),
			); err != nil {
				return Export{}, fmt.Errorf("insert exponent %s.%s: %w", d.Name, b, err)
			}
		}
	}

	for _, u := range us {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO units (symbol, name, dimension, scale, zero) VALUES (?, ?, ?, ?, ?)`,
			u.Symbol, u.Name, u.Dimension, u.Scale, u.Offset,
		); err != nil {
			return Export{}, fmt.Errorf("insert unit %q: %w", u.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Export{}, err
	}
	return exp, nil
}

// LastExport returns the snapshot currently stored, with its row counts.
func (s *Store) LastExport(ctx context.Context) (Export, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return Export{}, ErrDetached
	}

	var exp Export
	var created string
	err := s.db.QueryRowContext(ctx, `SELECT export_id, version, created_at,
    (SELECT COUNT(*) FROM dimensions), (SELECT COUNT(*) FROM units)
FROM exports`).Scan(&exp.ID, &exp.Version, &created, &exp.Dimensions, &exp.Units)
	if err != nil {
		return Export{}, err
	}
	if exp.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return Export{}, fmt.Errorf("parse created_at: %w", err)
	}
	return exp, nil
}

// Dimensions returns the stored dimensions sorted by name, with their
// exponent vectors rebuilt.
func (s *Store) Dimensions(ctx context.Context) ([]units.Named, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrDetached
	}

	bases := make(map[string]units.Base)
	for b := units.BaseMass; b <= units.BaseMoles; b++ {
		bases[b.String()] = b
	}
	exps := make(map[string]units.Dims)
	rows, err := s.db.QueryContext(ctx, `SELECT dimension, base, num, den FROM exponents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var dim, base string
		var num, den int64
		if err := rows.Scan(&dim, &base, &num, &den); err != nil {
			return nil, err
		}
		b, ok := bases[base]
		if !ok {
			return nil, fmt.Errorf("dimension %s: unknown base %q", dim, base)
		}
		exps[dim] = exps[dim].With(b, units.Frac(num, den))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT name, symbol FROM dimensions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []units.Named
	for rows.Next() {
		var n units.Named
		if err := rows.Scan(&n.Name, &n.Symbol); err != nil {
			return nil, err
		}
		n.Dims = exps[n.Name]
		out = append(out, n)
	}
	return out, rows.Err()
}

// Units returns the stored units of dimension, matched case-insensitively,
// or every unit when dimension is empty. Rows are sorted by dimension, then
// scale, then symbol. The Dims field is not stored and is left zero.
func (s *Store) Units(ctx context.Context, dimension string) ([]units.UnitInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrDetached
	}

	rows, err := s.db.QueryContext(ctx, `SELECT symbol, name, dimension, scale, zero FROM units
WHERE ? = '' OR dimension = ? COLLATE NOCASE
ORDER BY dimension, scale, symbol`, dimension, dimension)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []units.UnitInfo
	for rows.Next() {
		var u units.UnitInfo
		if err := rows.Scan(&u.Symbol, &u.Name, &u.Dimension, &u.Scale, &u.Offset); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// newID returns a UUID v7 for export IDs.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
