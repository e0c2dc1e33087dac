// Package ledgerdb persists a host's account set in a single SQLite file so
// the simulator keeps ledger state across runs.
package ledgerdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"tokenboard/ledger"
)

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	key      TEXT PRIMARY KEY,
	lamports INTEGER NOT NULL,
	owner    TEXT NOT NULL,
	data     BLOB NOT NULL
);`

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Single writer keeps sqlite happy under concurrent callers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAccounts replaces the stored snapshot with the given account set.
func (s *Store) SaveAccounts(ctx context.Context, accounts []*ledger.Account) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO accounts (key, lamports, owner, data) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range accounts {
		data := a.Data
		if data == nil {
			data = []byte{}
		}
		if _, err := stmt.ExecContext(ctx, a.Key.String(), int64(a.Lamports), a.Owner.String(), data); err != nil {
			return fmt.Errorf("inserting account %s: %w", a.Key, err)
		}
	}
	return tx.Commit()
}

// LoadAccounts reads the stored snapshot back, ordered by key.
func (s *Store) LoadAccounts(ctx context.Context) ([]*ledger.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, lamports, owner, data FROM accounts ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*ledger.Account
	for rows.Next() {
		var (
			key      string
			lamports int64
			owner    string
			data     []byte
		)
		if err := rows.Scan(&key, &lamports, &owner, &data); err != nil {
			return nil, err
		}
		accountKey, err := ledger.PubkeyFromBase58(key)
		if err != nil {
			return nil, fmt.Errorf("stored key %q: %w", key, err)
		}
		ownerKey, err := ledger.PubkeyFromBase58(owner)
		if err != nil {
			return nil, fmt.Errorf("stored owner %q: %w", owner, err)
		}
		accounts = append(accounts, &ledger.Account{
			Key:      accountKey,
			Lamports: uint64(lamports),
			Owner:    ownerKey,
			Data:     data,
		})
	}
	return accounts, rows.Err()
}
