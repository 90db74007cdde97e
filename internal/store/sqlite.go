package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DefaultNamespace is the storage key the front-desk snapshot lives
// under. It matches the key the browser build of the dashboard used.
const DefaultNamespace = "hospital-storage"

// SQLitePersister stores the snapshot as a single JSON blob keyed by
// namespace in a local SQLite file. One row per profile; every Save
// overwrites it.
type SQLitePersister struct {
	db        *sqlx.DB
	namespace string
}

func NewSQLitePersister(path, namespace string) (*SQLitePersister, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		namespace TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return &SQLitePersister{db: db, namespace: namespace}, nil
}

func (p *SQLitePersister) Load(ctx context.Context) (*State, error) {
	var payload []byte
	err := p.db.GetContext(ctx, &payload, `SELECT payload FROM state WHERE namespace = ?`, p.namespace)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return &state, nil
}

func (p *SQLitePersister) Save(ctx context.Context, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = p.db.ExecContext(ctx, `INSERT INTO state (namespace, payload) VALUES (?, ?)
		ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload`, p.namespace, payload)
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

func (p *SQLitePersister) Close() error {
	return p.db.Close()
}
