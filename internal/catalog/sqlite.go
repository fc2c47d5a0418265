// Package catalog persists named, metadata-rich puzzles, with
// listing, to a SQLite database via the pure-Go modernc.org/sqlite
// driver, layered above the single-board binary format in
// internal/format. The Game facade has no save/load of its own; the
// HTTP adapter calls the catalog directly. Puzzles are organized by
// difficulty as a column rather than a directory.
package catalog

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sudokuforge/engine/internal/format"
	"github.com/sudokuforge/engine/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL DEFAULT '',
	seed        INTEGER NOT NULL,
	difficulty  INTEGER NOT NULL,
	created_at  INTEGER NOT NULL,
	board       BLOB NOT NULL
);
`

// SQLite is a ports.Catalog backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (and, if needed, creates) the SQLite database at path
// and ensures the puzzles table exists.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (c *SQLite) Close() error { return c.db.Close() }

// Save inserts or replaces a puzzle. If p.ID is empty, a new UUID is
// generated and written back into p.
func (c *SQLite) Save(ctx context.Context, p *ports.Puzzle) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	var buf bytes.Buffer
	if err := format.Save(&buf, p.Board); err != nil {
		return fmt.Errorf("catalog: encode board: %w", err)
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, name, seed, difficulty, created_at, board)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, seed=excluded.seed, difficulty=excluded.difficulty,
			created_at=excluded.created_at, board=excluded.board
	`, p.ID, p.Name, p.Seed, int(p.Difficulty), p.CreatedAt, buf.Bytes())
	return err
}

// Load retrieves a puzzle by ID.
func (c *SQLite) Load(ctx context.Context, id string) (*ports.Puzzle, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, name, seed, difficulty, created_at, board FROM puzzles WHERE id = ?
	`, id)

	var (
		p        ports.Puzzle
		diff     int
		boardRaw []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Seed, &diff, &p.CreatedAt, &boardRaw); err != nil {
		return nil, err
	}
	p.Difficulty = ports.Difficulty(diff)
	b, err := format.Load(bytes.NewReader(boardRaw))
	if err != nil {
		return nil, fmt.Errorf("catalog: decode board: %w", err)
	}
	p.Board = b
	return &p, nil
}

// List returns lightweight metadata for every catalogued puzzle, most
// recent first.
func (c *SQLite) List(ctx context.Context) ([]ports.PuzzleMeta, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, difficulty, created_at FROM puzzles ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.PuzzleMeta
	for rows.Next() {
		var m ports.PuzzleMeta
		var diff int
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Difficulty = ports.Difficulty(diff)
		out = append(out, m)
	}
	return out, rows.Err()
}
