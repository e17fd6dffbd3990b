package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/talgya/kisan-mitra/internal/mandi"
	"github.com/talgya/kisan-mitra/internal/weather"
)

func (s *Server) cityParam(r *http.Request) string {
	if city := strings.TrimSpace(r.URL.Query().Get("city")); city != "" {
		return city
	}
	return s.Config.DefaultCity
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		notFound(w, r)
		return
	}
	city := s.cityParam(r)

	report, err := s.Weather.Current(r.Context(), city)
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("City %q not found", city))
		return
	case errors.Is(err, weather.ErrInvalidKey):
		writeError(w, http.StatusInternalServerError, "Invalid OpenWeatherMap API key")
		return
	case err != nil:
		serverError(w, r, err)
		return
	}

	resp := map[string]any{
		"success": true,
		"source":  report.Source,
		"data":    report.Data,
	}
	if report.Note != "" {
		resp["note"] = report.Note
	}
	writeJSON(w, resp)
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		notFound(w, r)
		return
	}
	fc := s.Weather.Forecast(r.Context(), s.cityParam(r))
	writeJSON(w, map[string]any{
		"success": true,
		"source":  fc.Source,
		"count":   len(fc.Data),
		"data":    fc.Data,
	})
}

func (s *Server) handleMandi(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		notFound(w, r)
		return
	}
	q := r.URL.Query()
	prices := mandi.Filter(q.Get("crop"), q.Get("state"))

	resp := map[string]any{
		"success": true,
		"count":   len(prices),
		"data":    prices,
	}
	if len(prices) == 0 {
		resp["message"] = "No prices found for the given filters"
	}
	writeJSON(w, resp)
}

func (s *Server) handleMandiCrops(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		notFound(w, r)
		return
	}
	writeJSON(w, map[string]any{"success": true, "data": mandi.Crops()})
}

func (s *Server) handleMandiStates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		notFound(w, r)
		return
	}
	writeJSON(w, map[string]any{"success": true, "data": mandi.States()})
}
