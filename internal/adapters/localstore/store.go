package localstore

// Package localstore persists per-device client state (credential, shipping
// draft) in a single sqlite file so it survives an application restart.

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// sqlite driver registration.
	_ "github.com/mattn/go-sqlite3"

	"github.com/relaymarket/relay-go/internal/domain/checkout"
	"github.com/relaymarket/relay-go/internal/domain/identity"
	"github.com/relaymarket/relay-go/internal/ports"
)

const (
	keyCredential    = "credential"
	keyShippingDraft = "shipping_draft"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store is a sqlite-backed ports.StateStore. Values are stored as JSON under
// fixed keys; the credential (token plus kind) is one value so the two can
// never be left half-cleared.
type Store struct {
	db *sql.DB
}

var _ ports.StateStore = (*Store)(nil)

// Open opens (creating if needed) the state file at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open state file: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init state schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(data))
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string, out any) error {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// SaveCredential persists the credential.
func (s *Store) SaveCredential(ctx context.Context, cred identity.Credential) error {
	if !cred.Valid() {
		return errors.New("refusing to persist invalid credential")
	}
	return s.put(ctx, keyCredential, cred)
}

// LoadCredential returns the persisted credential, or ports.ErrNotFound.
// A corrupted or incomplete value is treated as absent rather than trusted.
func (s *Store) LoadCredential(ctx context.Context) (identity.Credential, error) {
	var cred identity.Credential
	if err := s.get(ctx, keyCredential, &cred); err != nil {
		return identity.Credential{}, ports.ErrNotFound
	}
	if !cred.Valid() {
		return identity.Credential{}, ports.ErrNotFound
	}
	return cred, nil
}

// ClearSession removes the credential and the shipping draft in one
// transaction, never partially.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.delete(ctx, keyCredential, keyShippingDraft)
}

// SaveShippingDraft persists the in-progress shipping draft.
func (s *Store) SaveShippingDraft(ctx context.Context, draft checkout.ShippingDraft) error {
	return s.put(ctx, keyShippingDraft, draft)
}

// LoadShippingDraft returns the persisted draft, or ports.ErrNotFound.
func (s *Store) LoadShippingDraft(ctx context.Context) (checkout.ShippingDraft, error) {
	var draft checkout.ShippingDraft
	if err := s.get(ctx, keyShippingDraft, &draft); err != nil {
		return checkout.ShippingDraft{}, err
	}
	return draft, nil
}

// ClearShippingDraft removes the persisted draft.
func (s *Store) ClearShippingDraft(ctx context.Context) error {
	return s.delete(ctx, keyShippingDraft)
}
