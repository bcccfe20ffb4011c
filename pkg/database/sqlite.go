package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"awami-saholat/pkg/utils"

	_ "modernc.org/sqlite"
)

// KVIface interface untuk abstraction key-value snapshot storage
type KVIface interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetAll(ctx context.Context, entries map[string]string) error
	DeleteAll(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// DB wrapper struct over the embedded SQLite snapshot file
type DB struct {
	sql *sql.DB
}

// Get implements KVIface
func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := db.sql.QueryRowContext(ctx,
		`SELECT value FROM snapshot WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get snapshot key %s: %w", key, err)
	}
	return value, true, nil
}

// SetAll implements KVIface - semua entries ditulis dalam satu transaksi,
// supaya key `user` dan `userType` tidak pernah berubah terpisah.
func (db *DB) SetAll(ctx context.Context, entries map[string]string) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	for key, value := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			return fmt.Errorf("set snapshot key %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// DeleteAll implements KVIface - keys dihapus bersama dalam satu transaksi
func (db *DB) DeleteAll(ctx context.Context, keys ...string) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM snapshot WHERE key = ?`, key); err != nil {
			return fmt.Errorf("delete snapshot key %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Ping implements KVIface
func (db *DB) Ping(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Close implements KVIface
func (db *DB) Close() error {
	return db.sql.Close()
}

// InitDB membuka file snapshot SQLite dan menyiapkan schema
func InitDB(config utils.SnapshotConfig) (KVIface, error) {
	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	dsn := config.Path + "?_journal_mode=WAL&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	if _, err := sqlDB.Exec(
		`CREATE TABLE IF NOT EXISTS snapshot (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping snapshot db: %w", err)
	}

	return &DB{sql: sqlDB}, nil
}
