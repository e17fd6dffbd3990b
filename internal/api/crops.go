package api

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/talgya/kisan-mitra/internal/calculator"
	"github.com/talgya/kisan-mitra/internal/crops"
	"github.com/talgya/kisan-mitra/internal/mandi"
	"github.com/talgya/kisan-mitra/internal/weather"
)

// recommendation is the public view of a ranked crop. The raw score stays
// internal; suitability is the figure shown to farmers.
type recommendation struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Hindi             string   `json:"hindi"`
	Emoji             string   `json:"emoji"`
	Season            string   `json:"season"`
	QuickHarvest      bool     `json:"quickHarvest"`
	YieldPerAcre      string   `json:"yieldPerAcre"`
	MarketPrice       string   `json:"marketPrice"`
	InvestmentPerAcre float64  `json:"investmentPerAcre"`
	IncomePerAcre     float64  `json:"incomePerAcre"`
	Duration          string   `json:"duration"`
	Tips              string   `json:"tips"`
	Suitability       int      `json:"suitability"`
	Reasons           []string `json:"reasons"`
}

// recommendParams echoes the query. NaN inputs are reported as null.
type recommendParams struct {
	SoilType      string   `json:"soilType"`
	Region        string   `json:"region"`
	Temp          *float64 `json:"temp"`
	Humidity      *float64 `json:"humidity"`
	OnlyQuick     bool     `json:"onlyQuick"`
	Lang          string   `json:"lang"`
	City          string   `json:"city,omitempty"`
	WeatherSource string   `json:"weatherSource,omitempty"`
}

func marketPrice(p crops.Profile) string {
	return fmt.Sprintf("%s - %s/quintal", mandi.Rupees(p.PriceMin), mandi.Rupees(p.PriceMax))
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// optionalNumber coerces a JSON value to a number. Absent or blank values
// report false; present but malformed values come back as NaN.
func optionalNumber(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return 0, false
	}
	if n, ok := calculator.Number(v); ok {
		return n, true
	}
	return math.NaN(), true
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		notFound(w, r)
		return
	}
	body := map[string]any{}
	if !decodeJSON(w, r, &body) {
		return
	}

	q := crops.Query{
		Soil:             stringField(body, "soilType"),
		Region:           stringField(body, "region"),
		OnlyQuickHarvest: boolField(body, "onlyQuick"),
	}
	if q.Soil == "" {
		q.Soil = s.Config.DefaultSoil
	}
	if q.Region == "" {
		q.Region = stringField(body, "state")
	}

	lang := crops.LangEnglish
	if strings.EqualFold(stringField(body, "lang"), crops.LangHindi) {
		lang = crops.LangHindi
	}
	params := recommendParams{Lang: lang, City: stringField(body, "city")}

	temp, hasTemp := optionalNumber(body["temp"])
	humidity, hasHumidity := optionalNumber(body["humidity"])
	if !hasTemp && !hasHumidity && params.City != "" {
		report, err := s.Weather.Current(r.Context(), params.City)
		if errors.Is(err, weather.ErrCityNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("City %q not found", params.City))
			return
		}
		if err != nil {
			serverError(w, r, err)
			return
		}
		temp, hasTemp = report.Data.Temp, true
		humidity, hasHumidity = report.Data.Humidity, true
		params.WeatherSource = report.Source
	}
	// Missing readings match no climate envelope.
	if !hasTemp {
		temp = math.NaN()
	}
	if !hasHumidity {
		humidity = math.NaN()
	}
	q.Temperature, q.Humidity = temp, humidity

	res := s.Recommender.Recommend(q)

	recs := make([]recommendation, 0, len(res.Crops))
	for _, c := range res.Crops {
		recs = append(recs, recommendation{
			ID:                c.ID,
			Name:              c.Name,
			Hindi:             c.Hindi,
			Emoji:             c.Emoji,
			Season:            c.SeasonLabel(),
			QuickHarvest:      c.QuickHarvest,
			YieldPerAcre:      fmt.Sprintf("%g quintals", c.YieldPerAcre),
			MarketPrice:       marketPrice(c.Profile),
			InvestmentPerAcre: c.InvestmentPerAcre,
			IncomePerAcre:     c.IncomePerAcre,
			Duration:          c.Duration,
			Tips:              c.Tip,
			Suitability:       c.Suitability,
			Reasons:           crops.RenderReasons(c, q, res.Season, lang),
		})
	}

	params.SoilType = q.Soil
	params.Region = q.Region
	params.Temp = finite(q.Temperature)
	params.Humidity = finite(q.Humidity)
	params.OnlyQuick = q.OnlyQuickHarvest

	slog.Debug("crop recommendation", "season", res.Season, "soil", q.Soil, "region", q.Region, "count", len(recs))
	writeJSON(w, map[string]any{
		"success":         true,
		"season":          res.Season,
		"params":          params,
		"count":           len(recs),
		"recommendations": recs,
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		notFound(w, r)
		return
	}
	catalog := s.Recommender.Catalog
	writeJSON(w, map[string]any{
		"success": true,
		"count":   len(catalog),
		"crops":   catalog,
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		notFound(w, r)
		return
	}
	body := map[string]any{}
	if !decodeJSON(w, r, &body) {
		return
	}

	in, err := calculator.ParseInput(body)
	var ve *calculator.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, ve.Error())
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	res := calculator.Calculate(in)
	slog.Debug("profit calculated", "result", res.String())
	writeJSON(w, map[string]any{"success": true, "data": res})
}
