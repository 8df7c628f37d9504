package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the durable local store: an append-only collection of JSON
// documents keyed by a session namespace and a collection name. The booking
// workflow is the sole writer, so no locking beyond sqlite's own is needed.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	query := `CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		namespace TEXT NOT NULL,
		collection TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		return err
	}
	_, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_records_ns_coll
		ON records (namespace, collection)`)
	return err
}

// Append marshals v and inserts it at the end of the collection. Existing
// records are never overwritten.
func (s *Store) Append(ctx context.Context, namespace, collection string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (namespace, collection, payload, created_at) VALUES (?, ?, ?, ?)`,
		namespace, collection, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append to %s/%s: %w", namespace, collection, err)
	}
	return nil
}

// ReadAll returns every document in the collection for the namespace, in
// insertion order.
func (s *Store) ReadAll(ctx context.Context, namespace, collection string) ([]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM records WHERE namespace = ? AND collection = ? ORDER BY id`,
		namespace, collection,
	)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", namespace, collection, err)
	}
	defer rows.Close()

	var out []json.RawMessage
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s/%s: %w", namespace, collection, err)
	}
	return out, nil
}

// PurgeOlderThan deletes records in a collection created before the given
// time, across all namespaces. Used by the retention sweep only.
func (s *Store) PurgeOlderThan(ctx context.Context, collection string, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM records WHERE collection = ? AND created_at < ?`,
		collection, before.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("purge %s: %w", collection, err)
	}
	return res.RowsAffected()
}

func (s *Store) Close() error { return s.db.Close() }
