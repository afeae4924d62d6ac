// ABOUTME: SQLite-backed snapshot store using modernc.org/sqlite
// ABOUTME: One JSON blob per resource plus an append-only mutation trail

package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/motorvia/motorvia-console/internal/collection"
)

// ErrNoSnapshot is returned by Load when no snapshot exists for the
// requested resource, or when the store is disabled.
var ErrNoSnapshot = errors.New("no snapshot for resource")

// Store persists collection snapshots and mutation records.
// A nil *Store is valid and turns every method into a no-op.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Mutation is one recorded write against the backend.
type Mutation struct {
	ID       string
	Resource string
	Op       string
	RecordID string
	At       time.Time
}

// Open creates or opens the snapshot database at the given path.
// Parent directories are created if needed.
func Open(path string) (*Store, error) {
	logger := slog.Default().With("component", "snapshot")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("snapshot store opened", "path", path)
	return s, nil
}

func (s *Store) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			resource   TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			item_count INTEGER NOT NULL,
			saved_at   TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS mutations (
			mutation_id TEXT PRIMARY KEY,
			resource    TEXT NOT NULL,
			op          TEXT NOT NULL,
			record_id   TEXT NOT NULL,
			ts          TEXT NOT NULL,

			CHECK (op IN ('replace', 'create', 'update', 'delete'))
		);

		CREATE INDEX IF NOT EXISTS idx_mutations_ts ON mutations(ts DESC);
		CREATE INDEX IF NOT EXISTS idx_mutations_resource ON mutations(resource);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores the full item set for a resource, replacing any previous
// snapshot. items is marshalled to JSON as-is.
func (s *Store) Save(ctx context.Context, resource string, items any, count int) error {
	if s == nil {
		return nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshaling snapshot for %s: %w", resource, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (resource, payload, item_count, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(resource) DO UPDATE SET
			payload = excluded.payload,
			item_count = excluded.item_count,
			saved_at = excluded.saved_at
	`, resource, string(payload), count, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving snapshot for %s: %w", resource, err)
	}

	s.logger.Debug("snapshot saved", "resource", resource, "items", count)
	return nil
}

// Load reads the last snapshot for a resource into out and returns when
// it was saved. Returns ErrNoSnapshot when none exists.
func (s *Store) Load(ctx context.Context, resource string, out any) (time.Time, error) {
	if s == nil {
		return time.Time{}, ErrNoSnapshot
	}

	var payload, savedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, saved_at FROM snapshots WHERE resource = ?`, resource,
	).Scan(&payload, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("loading snapshot for %s: %w", resource, err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, fmt.Errorf("unmarshaling snapshot for %s: %w", resource, err)
	}

	ts, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing snapshot timestamp: %w", err)
	}
	return ts, nil
}

// Record appends one mutation to the trail. Replace events are skipped;
// they describe fetches, not user writes.
func (s *Store) Record(ctx context.Context, ev collection.Event) error {
	if s == nil {
		return nil
	}
	if ev.Op == collection.OpReplace {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mutations (mutation_id, resource, op, record_id, ts)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.New().String(), ev.Resource, string(ev.Op), ev.ID,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording mutation: %w", err)
	}
	return nil
}

// RecentMutations returns the newest mutation records, most recent
// first. limit <= 0 defaults to 50.
func (s *Store) RecentMutations(ctx context.Context, limit int) ([]Mutation, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT mutation_id, resource, op, record_id, ts
		FROM mutations ORDER BY ts DESC, mutation_id LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing mutations: %w", err)
	}
	defer rows.Close()

	var out []Mutation
	for rows.Next() {
		var m Mutation
		var ts string
		if err := rows.Scan(&m.ID, &m.Resource, &m.Op, &m.RecordID, &ts); err != nil {
			return nil, fmt.Errorf("scanning mutation: %w", err)
		}
		if m.At, err = time.Parse(time.RFC3339, ts); err != nil {
			return nil, fmt.Errorf("parsing mutation timestamp: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Watch consumes a collection event stream and records each mutation
// until the channel closes. Intended to run in its own goroutine.
func (s *Store) Watch(ctx context.Context, events <-chan collection.Event) {
	if s == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := s.Record(ctx, ev); err != nil {
				s.logger.Warn("recording mutation", "resource", ev.Resource, "error", err)
			}
		}
	}
}
