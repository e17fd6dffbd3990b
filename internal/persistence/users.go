package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is a farmer account keyed by phone number.
type User struct {
	ID         string         `db:"id"`
	Phone      string         `db:"phone"`
	Name       string         `db:"name"`
	IsVerified bool           `db:"is_verified"`
	OTP        sql.NullString `db:"otp"`
	OTPExpiry  sql.NullInt64  `db:"otp_expiry"` // unix seconds
	CreatedAt  int64          `db:"created_at"`
	UpdatedAt  int64          `db:"updated_at"`
}

const userColumns = "id, phone, name, is_verified, otp, otp_expiry, created_at, updated_at"

// CreateUser inserts a new unverified user.
func (db *DB) CreateUser(phone, name string, now time.Time) (*User, error) {
	u := &User{
		ID:        uuid.NewString(),
		Phone:     phone,
		Name:      name,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
	}
	_, err := db.conn.NamedExec(`INSERT INTO users (`+userColumns+`)
		VALUES (:id, :phone, :name, :is_verified, :otp, :otp_expiry, :created_at, :updated_at)`, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// UserByID loads a user by id.
func (db *DB) UserByID(id string) (*User, error) {
	return db.getUser("id", id)
}

// UserByPhone loads a user by phone number.
func (db *DB) UserByPhone(phone string) (*User, error) {
	return db.getUser("phone", phone)
}

func (db *DB) getUser(column, value string) (*User, error) {
	var u User
	err := db.conn.Get(&u, db.conn.Rebind("SELECT "+userColumns+" FROM users WHERE "+column+" = ?"), value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user by %s: %w", column, err)
	}
	return &u, nil
}

// SetOTP stores a pending one-time password for the user.
func (db *DB) SetOTP(userID, otp string, expiry, now time.Time) error {
	return db.updateUser(
		"UPDATE users SET otp = ?, otp_expiry = ?, updated_at = ? WHERE id = ?",
		otp, expiry.Unix(), now.Unix(), userID)
}

// MarkVerified clears the pending OTP and marks the user verified.
func (db *DB) MarkVerified(userID string, now time.Time) error {
	return db.updateUser(
		"UPDATE users SET otp = NULL, otp_expiry = NULL, is_verified = ?, updated_at = ? WHERE id = ?",
		true, now.Unix(), userID)
}

// UpdateName sets the user's display name.
func (db *DB) UpdateName(userID, name string, now time.Time) error {
	return db.updateUser("UPDATE users SET name = ?, updated_at = ? WHERE id = ?", name, now.Unix(), userID)
}

func (db *DB) updateUser(query string, args ...any) error {
	res, err := db.conn.Exec(db.conn.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
