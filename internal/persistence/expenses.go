package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Expense is one farm cost entry.
type Expense struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	Category  string  `db:"category"`
	Amount    float64 `db:"amount"`
	SpentAt   int64   `db:"spent_at"` // unix seconds
	Note      string  `db:"note"`
	CreatedAt int64   `db:"created_at"`
	UpdatedAt int64   `db:"updated_at"`
}

const expenseColumns = "id, user_id, category, amount, spent_at, note, created_at, updated_at"

// ExpenseFilter narrows ListExpenses. Zero From/To and empty Category
// are ignored.
type ExpenseFilter struct {
	UserID   string
	From, To time.Time // inclusive bounds on SpentAt
	Category string
}

// CreateExpense inserts e, assigning its id and timestamps.
func (db *DB) CreateExpense(e *Expense, now time.Time) error {
	e.ID = uuid.NewString()
	e.CreatedAt = now.Unix()
	e.UpdatedAt = now.Unix()
	_, err := db.conn.NamedExec(`INSERT INTO expenses (`+expenseColumns+`)
		VALUES (:id, :user_id, :category, :amount, :spent_at, :note, :created_at, :updated_at)`, e)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// ListExpenses returns the user's expenses newest first, with their sum.
func (db *DB) ListExpenses(f ExpenseFilter) ([]Expense, float64, error) {
	where := []string{"user_id = ?"}
	args := []any{f.UserID}
	if !f.From.IsZero() {
		where = append(where, "spent_at >= ?")
		args = append(args, f.From.Unix())
	}
	if !f.To.IsZero() {
		where = append(where, "spent_at <= ?")
		args = append(args, f.To.Unix())
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}

	query := "SELECT " + expenseColumns + " FROM expenses WHERE " +
		strings.Join(where, " AND ") + " ORDER BY spent_at DESC, created_at DESC"

	expenses := []Expense{}
	if err := db.conn.Select(&expenses, db.conn.Rebind(query), args...); err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return expenses, total, nil
}

// ExpenseByID loads a single expense.
func (db *DB) ExpenseByID(id string) (*Expense, error) {
	var e Expense
	err := db.conn.Get(&e, db.conn.Rebind("SELECT "+expenseColumns+" FROM expenses WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load expense: %w", err)
	}
	return &e, nil
}

// DeleteExpense removes an expense by id.
func (db *DB) DeleteExpense(id string) error {
	res, err := db.conn.Exec(db.conn.Rebind("DELETE FROM expenses WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
