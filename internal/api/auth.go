package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/talgya/kisan-mitra/internal/auth"
	"github.com/talgya/kisan-mitra/internal/persistence"
)

// userView is the public shape of a user; OTP fields never leave the server.
type userView struct {
	ID         string `json:"_id"`
	Phone      string `json:"phone"`
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
	CreatedAt  string `json:"createdAt"`
}

func viewUser(u *persistence.User) userView {
	return userView{
		ID:         u.ID,
		Phone:      u.Phone,
		Name:       u.Name,
		IsVerified: u.IsVerified,
		CreatedAt:  time.Unix(u.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}

// userHandler is a handler that needs the authenticated user.
type userHandler func(w http.ResponseWriter, r *http.Request, user *persistence.User)

// bearerToken extracts the token from an Authorization header.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// protect wraps a handler to require a valid session bearer token.
func (s *Server) protect(next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Not authorized, no token provided")
			return
		}
		user, err := s.Auth.Authenticate(token)
		if errors.Is(err, auth.ErrUnauthorized) || errors.Is(err, persistence.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Not authorized, token invalid or expired")
			return
		}
		if err != nil {
			serverError(w, r, err)
			return
		}
		next(w, r, user)
	}
}

func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		notFound(w, r)
		return
	}
	body := map[string]any{}
	if !decodeJSON(w, r, &body) {
		return
	}

	phone := stringField(body, "phone")
	otp, err := s.Auth.SendOTP(r.Context(), phone, stringField(body, "name"))
	if errors.Is(err, auth.ErrInvalidPhone) {
		writeError(w, http.StatusBadRequest, "Please provide a valid 10-digit phone number")
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	resp := map[string]any{
		"success": true,
		"message": fmt.Sprintf("OTP sent to +91%s", phone),
	}
	if s.Config.IsDevelopment() {
		resp["otp"] = otp
		resp["note"] = "OTP shown only in development mode"
	}
	writeJSON(w, resp)
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		notFound(w, r)
		return
	}
	body := map[string]any{}
	if !decodeJSON(w, r, &body) {
		return
	}

	phone, otp := stringField(body, "phone"), stringField(body, "otp")
	if phone == "" || otp == "" {
		writeError(w, http.StatusBadRequest, "Phone and OTP are required")
		return
	}

	token, user, err := s.Auth.VerifyOTP(phone, otp)
	switch {
	case errors.Is(err, auth.ErrUnknownPhone):
		writeError(w, http.StatusNotFound, "No account found for this phone number. Please register first.")
		return
	case errors.Is(err, auth.ErrInvalidOTP):
		writeError(w, http.StatusBadRequest, "Invalid OTP. Please try again.")
		return
	case errors.Is(err, auth.ErrOTPExpired):
		writeError(w, http.StatusBadRequest, "OTP has expired. Please request a new one.")
		return
	case err != nil:
		serverError(w, r, err)
		return
	}

	writeJSON(w, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    viewUser(user),
	})
}

// handleMe serves GET (profile) and PUT (rename) on /api/auth/me.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, user *persistence.User) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, map[string]any{"success": true, "user": viewUser(user)})
	case http.MethodPut:
		body := map[string]any{}
		if !decodeJSON(w, r, &body) {
			return
		}
		updated, err := s.Auth.Rename(user.ID, stringField(body, "name"))
		if err != nil {
			serverError(w, r, err)
			return
		}
		writeJSON(w, map[string]any{"success": true, "user": viewUser(updated)})
	default:
		notFound(w, r)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, _ *persistence.User) {
	if r.Method != http.MethodPost {
		notFound(w, r)
		return
	}
	if err := s.Auth.Logout(bearerToken(r)); err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"success": true, "message": "Logged out"})
}
