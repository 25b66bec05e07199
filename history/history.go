// Package history keeps a local SQLite record of analysed rasters so that
// connectivity can be compared across years and re-runs.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/waternet/connectivity"
)

// ErrEmptyName is returned by Record when a run has no name.
var ErrEmptyName = errors.New("history: run name is empty")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	source             TEXT NOT NULL,
	water_value        REAL NOT NULL,
	label_connectivity INTEGER NOT NULL,
	num_edges          INTEGER NOT NULL,
	num_nodes          INTEGER NOT NULL,
	num_components     INTEGER NOT NULL,
	largest_component  INTEGER NOT NULL,
	avg_degree         REAL NOT NULL,
	connectivity       REAL NOT NULL,
	created_at         INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_name_created ON runs (name, created_at);
`

// Run is one stored analysis.
type Run struct {
	ID                string
	Name              string
	Source            string
	WaterValue        float64
	LabelConnectivity int
	Metrics           connectivity.Metrics
	CreatedAt         time.Time
}

// Store is a handle on the history database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}
	// one writer at a time keeps sqlite away from SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores run, assigning an ID and timestamp when they are unset, and
// returns the stored copy.
func (s *Store) Record(ctx context.Context, run Run) (Run, error) {
	if run.Name == "" {
		return Run{}, ErrEmptyName
	}
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC().Truncate(time.Microsecond)

	m := run.Metrics
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, name, source, water_value, label_connectivity,
			num_edges, num_nodes, num_components, largest_component,
			avg_degree, connectivity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.Source, run.WaterValue, run.LabelConnectivity,
		m.Edges, m.Nodes, m.Components, m.LargestComponent,
		m.AvgDegree, m.Score, run.CreatedAt.UnixMicro())
	if err != nil {
		return Run{}, fmt.Errorf("history: insert run %q: %w", run.Name, err)
	}
	return run, nil
}

// List returns every stored run ordered by name, then by time.
func (s *Store) List(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, source, water_value, label_connectivity,
			num_edges, num_nodes, num_components, largest_component,
			avg_degree, connectivity, created_at
		FROM runs ORDER BY name, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created int64
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Source, &r.WaterValue, &r.LabelConnectivity,
			&r.Metrics.Edges, &r.Metrics.Nodes, &r.Metrics.Components, &r.Metrics.LargestComponent,
			&r.Metrics.AvgDegree, &r.Metrics.Score, &created); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		r.CreatedAt = time.UnixMicro(created).UTC()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate runs: %w", err)
	}
	return runs, nil
}

// Latest returns the most recent run per name, ordered by name.
func (s *Store) Latest(ctx context.Context) ([]Run, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Run
	for _, r := range all {
		if n := len(out); n > 0 && out[n-1].Name == r.Name {
			out[n-1] = r
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
