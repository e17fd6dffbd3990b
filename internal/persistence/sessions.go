package persistence

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// Only a SHA-256 of each bearer token is stored.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CreateSession records a login token for userID valid until expires.
func (db *DB) CreateSession(token, userID string, expires, now time.Time) error {
	_, err := db.conn.Exec(db.conn.Rebind(
		"INSERT INTO sessions (token_hash, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)"),
		hashToken(token), userID, expires.Unix(), now.Unix())
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// SessionUser returns the user owning token if the session has not
// expired at now. Unknown and expired tokens both yield ErrNotFound.
func (db *DB) SessionUser(token string, now time.Time) (*User, error) {
	var userID string
	err := db.conn.Get(&userID, db.conn.Rebind(
		"SELECT user_id FROM sessions WHERE token_hash = ? AND expires_at > ?"),
		hashToken(token), now.Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return db.UserByID(userID)
}

// DeleteSession revokes a token. Revoking an unknown token is not an error.
func (db *DB) DeleteSession(token string) error {
	_, err := db.conn.Exec(db.conn.Rebind("DELETE FROM sessions WHERE token_hash = ?"), hashToken(token))
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
