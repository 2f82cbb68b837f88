// Package store persists the moneybook document in an embedded sqlite
// database. The whole document travels as one JSON blob under a fixed key,
// so a save is a single atomic upsert and a load is a single row read.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/moneybook/moneybook"
)

// stateKey is the only key ever written. The table is keyed anyway so a
// future layout can version documents side by side.
const stateKey = "current_state"

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
	key      TEXT PRIMARY KEY,
	doc      BLOB NOT NULL,
	saved_at TEXT NOT NULL
);
`

// Store is a sqlite-backed document store. It satisfies moneybook.Saver.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens or creates the database at path and makes sure the schema
// exists. Opening is idempotent.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", path, err)
	}
	// The document is written by one process at a time; a single
	// connection sidesteps sqlite's multi-writer locking.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Save upserts the document under the fixed key.
func (s *Store) Save(ctx context.Context, state moneybook.AppState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, doc, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET doc = excluded.doc, saved_at = excluded.saved_at`,
		stateKey, doc, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

// Load reads the stored document. ok is false when no document has been
// saved yet.
func (s *Store) Load(ctx context.Context) (state moneybook.AppState, ok bool, err error) {
	var doc []byte
	err = s.db.QueryRowContext(ctx, `SELECT doc FROM app_state WHERE key = ?`, stateKey).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return moneybook.AppState{}, false, nil
	}
	if err != nil {
		return moneybook.AppState{}, false, fmt.Errorf("reading state: %w", err)
	}
	if err := json.Unmarshal(doc, &state); err != nil {
		return moneybook.AppState{}, false, fmt.Errorf("decoding state: %w", err)
	}
	return state, true, nil
}

// LoadOrDefault reads the stored document and normalizes it. A missing or
// unreadable document resolves to a fresh default state rather than an
// error; the failure is logged and the next save overwrites the bad row.
func (s *Store) LoadOrDefault(ctx context.Context, currency string) moneybook.AppState {
	state, ok, err := s.Load(ctx)
	if err != nil {
		s.log.Warn("stored state unreadable, starting fresh", zap.Error(err))
		return moneybook.NewState(currency)
	}
	if !ok {
		return moneybook.NewState(currency)
	}
	return moneybook.Normalize(state)
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

var _ moneybook.Saver = (*Store)(nil)
