// Package persistence stores users, login sessions and expenses in SQL.
// SQLite is the default; a postgres:// URL selects PostgreSQL.
package persistence

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// DB wraps a SQL connection for the app's records.
type DB struct {
	conn   *sqlx.DB
	driver string
}

// Open opens or creates the database named by dsn and applies the schema.
// A postgres:// or postgresql:// URL uses lib/pq; anything else is taken
// as a SQLite file path.
func Open(dsn string) (*DB, error) {
	driver, source, err := resolve(dsn)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	db := &DB{conn: conn, driver: driver}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Debug("database ready", "driver", driver)
	return db, nil
}

func resolve(dsn string) (driver, source string, err error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres", dsn, nil
	}
	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", "", fmt.Errorf("create db dir: %w", err)
		}
	}
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	return "sqlite", dsn, nil
}

// Driver reports the SQL driver in use ("sqlite" or "postgres").
func (db *DB) Driver() string {
	return db.driver
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Schema sticks to types both engines accept; timestamps are unix seconds.
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		phone TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		otp TEXT,
		otp_expiry BIGINT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		token_hash TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		expires_at BIGINT NOT NULL,
		created_at BIGINT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		category TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		spent_at BIGINT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);
	CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses(user_id, spent_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Purge deletes expired sessions and clears OTPs that have lapsed.
// Returns the number of sessions and OTPs removed.
func (db *DB) Purge(now time.Time) (sessions, otps int64, err error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(tx.Rebind("DELETE FROM sessions WHERE expires_at < ?"), now.Unix())
	if err != nil {
		return 0, 0, fmt.Errorf("purge sessions: %w", err)
	}
	sessions, _ = res.RowsAffected()

	res, err = tx.Exec(tx.Rebind(
		"UPDATE users SET otp = NULL, otp_expiry = NULL WHERE otp_expiry IS NOT NULL AND otp_expiry < ?"),
		now.Unix())
	if err != nil {
		return 0, 0, fmt.Errorf("purge otps: %w", err)
	}
	otps, _ = res.RowsAffected()

	return sessions, otps, tx.Commit()
}
