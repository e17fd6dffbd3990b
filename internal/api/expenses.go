package api

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/talgya/kisan-mitra/internal/calculator"
	"github.com/talgya/kisan-mitra/internal/persistence"
)

// expenseCategories are the accepted ledger categories.
var expenseCategories = []string{"Seeds", "Fertilizer", "Diesel", "Labour", "Pesticide", "Irrigation", "Other"}

const maxNoteLen = 500

type expenseView struct {
	ID        string  `json:"_id"`
	UserID    string  `json:"userId"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func viewExpense(e persistence.Expense) expenseView {
	stamp := func(unix int64) string { return time.Unix(unix, 0).UTC().Format(time.RFC3339) }
	return expenseView{
		ID:        e.ID,
		UserID:    e.UserID,
		Category:  e.Category,
		Amount:    e.Amount,
		Date:      stamp(e.SpentAt),
		Note:      e.Note,
		CreatedAt: stamp(e.CreatedAt),
		UpdatedAt: stamp(e.UpdatedAt),
	}
}

// handleExpenses serves POST (add) and GET (list) on /api/expenses.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request, user *persistence.User) {
	switch r.Method {
	case http.MethodPost:
		s.addExpense(w, r, user)
	case http.MethodGet:
		s.listExpenses(w, r, user)
	default:
		notFound(w, r)
	}
}

func (s *Server) addExpense(w http.ResponseWriter, r *http.Request, user *persistence.User) {
	body := map[string]any{}
	if !decodeJSON(w, r, &body) {
		return
	}

	category := stringField(body, "category")
	rawAmount, hasAmount := body["amount"]
	if category == "" || !hasAmount || rawAmount == nil {
		writeError(w, http.StatusBadRequest, "Category and amount are required")
		return
	}
	amount, ok := calculator.Number(rawAmount)
	if !ok {
		writeError(w, http.StatusBadRequest, "Amount must be a number")
		return
	}
	if amount < 0 {
		writeError(w, http.StatusBadRequest, "Amount cannot be negative")
		return
	}
	if !slices.Contains(expenseCategories, category) {
		writeError(w, http.StatusBadRequest, category+" is not a valid category")
		return
	}
	note := stringField(body, "note")
	if utf8.RuneCountInString(note) > maxNoteLen {
		writeError(w, http.StatusBadRequest, "Note cannot exceed 500 characters")
		return
	}

	now := time.Now()
	spentAt := now
	if raw := stringField(body, "date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD")
			return
		}
		spentAt = t
	}

	e := persistence.Expense{
		UserID:   user.ID,
		Category: category,
		Amount:   amount,
		SpentAt:  spentAt.Unix(),
		Note:     note,
	}
	if err := s.DB.CreateExpense(&e, now); err != nil {
		serverError(w, r, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Expense added",
		"expense": viewExpense(e),
	})
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request, user *persistence.User) {
	q := r.URL.Query()
	filter := persistence.ExpenseFilter{
		UserID:   user.ID,
		Category: strings.TrimSpace(q.Get("category")),
	}

	// The month filter applies only when both month and year are given.
	if q.Get("month") != "" && q.Get("year") != "" {
		month, errM := strconv.Atoi(q.Get("month"))
		year, errY := strconv.Atoi(q.Get("year"))
		if errM != nil || errY != nil || month < 1 || month > 12 {
			writeError(w, http.StatusBadRequest, "month must be 1-12 and year a number")
			return
		}
		filter.From = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		filter.To = filter.From.AddDate(0, 1, 0).Add(-time.Second)
	}

	expenses, total, err := s.DB.ListExpenses(filter)
	if err != nil {
		serverError(w, r, err)
		return
	}

	views := make([]expenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, viewExpense(e))
	}
	writeJSON(w, map[string]any{
		"success":  true,
		"count":    len(views),
		"total":    total,
		"expenses": views,
	})
}

// handleExpenseByID serves DELETE /api/expenses/{id}.
func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request, user *persistence.User) {
	id := strings.TrimPrefix(r.URL.Path, "/api/expenses/")
	if r.Method != http.MethodDelete || id == "" || strings.Contains(id, "/") {
		notFound(w, r)
		return
	}

	e, err := s.DB.ExpenseByID(id)
	if errors.Is(err, persistence.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Expense not found")
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}
	if e.UserID != user.ID {
		writeError(w, http.StatusForbidden, "Not authorized to delete this expense")
		return
	}

	if err := s.DB.DeleteExpense(id); err != nil && !errors.Is(err, persistence.ErrNotFound) {
		serverError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"success": true, "message": "Expense deleted"})
}
