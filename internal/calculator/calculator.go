// Package calculator estimates a crop's profit or loss from a farmer's
// costs, land area, expected yield and market price.
package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fields lists the required inputs in the order they are reported.
var Fields = []string{"seedCost", "fertilizerCost", "labourCost", "landArea", "expectedYield", "marketPrice"}

// ValidationError reports unusable calculator input.
type ValidationError struct {
	Missing []string // required fields absent from the request
	Field   string   // first field that is not a non-negative number
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "Missing required fields: " + strings.Join(e.Missing, ", ")
	}
	return e.Field + " must be a non-negative number"
}

// Input holds validated calculator inputs. Costs are totals in rupees,
// yield is in quintals, price is rupees per quintal.
type Input struct {
	SeedCost       float64 `json:"seedCost"`
	FertilizerCost float64 `json:"fertilizerCost"`
	LabourCost     float64 `json:"labourCost"`
	LandArea       float64 `json:"landArea"`
	ExpectedYield  float64 `json:"expectedYield"`
	MarketPrice    float64 `json:"marketPrice"`
}

// Result is the profit/loss breakdown.
type Result struct {
	TotalCost       float64 `json:"totalCost"`
	ExpectedRevenue float64 `json:"expectedRevenue"`
	EstimatedProfit float64 `json:"estimatedProfit"`
	CostPerAcre     float64 `json:"costPerAcre"`
	RevenuePerAcre  float64 `json:"revenuePerAcre"`
	ProfitMargin    float64 `json:"profitMargin"` // percent of revenue
	IsProfitable    bool    `json:"isProfitable"`
	Inputs          Input   `json:"inputs"`
}

// ParseInput validates a decoded JSON body. Values may be JSON numbers or
// numeric strings. Missing fields are reported together; otherwise the
// first non-numeric or negative field is reported.
func ParseInput(raw map[string]any) (Input, error) {
	var missing []string
	for _, f := range Fields {
		if isBlank(raw[f]) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return Input{}, &ValidationError{Missing: missing}
	}

	vals := make([]float64, len(Fields))
	for i, f := range Fields {
		v, ok := Number(raw[f])
		if !ok || v < 0 {
			return Input{}, &ValidationError{Field: f}
		}
		vals[i] = v
	}
	return Input{
		SeedCost:       vals[0],
		FertilizerCost: vals[1],
		LabourCost:     vals[2],
		LandArea:       vals[3],
		ExpectedYield:  vals[4],
		MarketPrice:    vals[5],
	}, nil
}

// Calculate computes the breakdown. Per-acre figures are zero when the
// land area is zero; the margin is zero when there is no revenue.
func Calculate(in Input) Result {
	totalCost := in.SeedCost + in.FertilizerCost + in.LabourCost
	revenue := in.ExpectedYield * in.MarketPrice
	profit := revenue - totalCost

	res := Result{
		TotalCost:       totalCost,
		ExpectedRevenue: revenue,
		EstimatedProfit: profit,
		IsProfitable:    profit >= 0,
		Inputs:          in,
	}
	if in.LandArea > 0 {
		res.CostPerAcre = round2(totalCost / in.LandArea)
		res.RevenuePerAcre = round2(revenue / in.LandArea)
	}
	if revenue > 0 {
		res.ProfitMargin = round2(profit / revenue * 100)
	}
	return res
}

// Number coerces a decoded JSON value to a float. Strings are trimmed and
// parsed; an empty string is zero. Anything else that is not a number
// reports false.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// String renders a short summary for logs.
func (r Result) String() string {
	return fmt.Sprintf("cost=%.2f revenue=%.2f profit=%.2f margin=%.2f%%",
		r.TotalCost, r.ExpectedRevenue, r.EstimatedProfit, r.ProfitMargin)
}
