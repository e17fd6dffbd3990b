// Package api provides the HTTP API for the farmer app.
// Crop, weather and market endpoints are public; profile and expense
// endpoints require a bearer token from OTP login.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/talgya/kisan-mitra/internal/auth"
	"github.com/talgya/kisan-mitra/internal/config"
	"github.com/talgya/kisan-mitra/internal/crops"
	"github.com/talgya/kisan-mitra/internal/persistence"
	"github.com/talgya/kisan-mitra/internal/weather"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 10 << 10

// Server serves the app over HTTP.
type Server struct {
	Config      config.Config
	DB          *persistence.DB
	Auth        *auth.Service
	Weather     *weather.Client // nil serves mock weather
	Recommender *crops.Recommender

	otpLimiter *RateLimiter
	httpServer *http.Server
}

// NewServer wires a server from its collaborators.
func NewServer(cfg config.Config, db *persistence.DB, authSvc *auth.Service, wc *weather.Client, rec *crops.Recommender) *Server {
	return &Server{
		Config:      cfg,
		DB:          db,
		Auth:        authSvc,
		Weather:     wc,
		Recommender: rec,
		otpLimiter:  NewRateLimiter(cfg.OTPRateLimit, cfg.OTPRateWindow),
	}
}

// Handler builds the routing table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", s.handleHealth)

	// Auth. Sending OTPs is rate limited per client IP.
	mux.HandleFunc("/api/auth/send-otp",
		RateLimitMiddleware(s.otpLimiter, "Too many OTP requests. Please try again after 15 minutes.", s.handleSendOTP))
	mux.HandleFunc("/api/auth/verify-otp", s.handleVerifyOTP)
	mux.HandleFunc("/api/auth/me", s.protect(s.handleMe))
	mux.HandleFunc("/api/auth/logout", s.protect(s.handleLogout))

	// Expense ledger (protected).
	mux.HandleFunc("/api/expenses", s.protect(s.handleExpenses))
	mux.HandleFunc("/api/expenses/", s.protect(s.handleExpenseByID))

	// Crops.
	mux.HandleFunc("/api/crop/recommend", s.handleRecommend)
	mux.HandleFunc("/api/crop/catalog", s.handleCatalog)
	mux.HandleFunc("/api/crop/calculate", s.handleCalculate)

	// Weather and market prices.
	mux.HandleFunc("/api/weather", s.handleWeather)
	mux.HandleFunc("/api/weather/forecast", s.handleForecast)
	mux.HandleFunc("/api/mandi", s.handleMandi)
	mux.HandleFunc("/api/mandi/crops", s.handleMandiCrops)
	mux.HandleFunc("/api/mandi/states", s.handleMandiStates)

	mux.HandleFunc("/", notFound)

	return corsMiddleware(s.Config.CORSOrigins, limitBody(mux))
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Config.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP API starting", "addr", addr, "env", s.Config.Env, "live_weather", s.Weather != nil)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Localhost dev servers are always allowed.
func corsMiddleware(origins []string, next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:5174": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	for _, origin := range origins {
		allowedOrigins[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Add("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		notFound(w, r)
		return
	}
	writeJSON(w, map[string]any{
		"success":     true,
		"message":     "🌾 Smart Kisan Mitra API is running",
		"environment": s.Config.Env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"endpoints": map[string]string{
			"auth":      "/api/auth",
			"expenses":  "/api/expenses",
			"crop":      "/api/crop/recommend",
			"calculate": "/api/crop/calculate",
			"weather":   "/api/weather",
			"mandi":     "/api/mandi",
		},
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("Route not found: %s %s", r.Method, r.URL.RequestURI()))
}

func writeJSON(w http.ResponseWriter, data any) {
	writeJSONStatus(w, http.StatusOK, data)
}

func writeJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSONStatus(w, status, map[string]any{"success": false, "message": message})
}

// serverError logs err and answers with a generic 500.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "Server error")
}

// decodeJSON reads the request body into v. An empty body leaves v
// untouched. It writes the error response itself and reports false when
// the body is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	err := dec.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig):
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	default:
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
	}
	return false
}

// stringField returns a trimmed string value from a decoded JSON object.
// Numbers are rendered back to text; anything else is empty.
func stringField(body map[string]any, key string) string {
	switch v := body[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	}
	return ""
}

func boolField(body map[string]any, key string) bool {
	switch v := body[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}
	return false
}
