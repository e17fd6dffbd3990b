// Package crops ranks a fixed catalog of crops against a farmer's soil,
// region and current weather, and explains each ranking with reason codes.
//
// The catalog is built once and shared read-only; scoring and ranking are
// pure functions, so concurrent callers need no locking.
package crops

import (
	"errors"
	"fmt"
	"strings"
)

// Profile describes one crop's climatic, soil and regional suitability
// and its economics per acre.
type Profile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Hindi        string   `json:"hindi"`
	Emoji        string   `json:"emoji"`
	Seasons      []Season `json:"seasons"`
	QuickHarvest bool     `json:"quickHarvest"` // 30-60 day cycle

	Soils []string `json:"soils"`

	MinTemp     float64 `json:"minTemp"`     // °C, inclusive
	MaxTemp     float64 `json:"maxTemp"`     // °C, inclusive
	MinHumidity float64 `json:"minHumidity"` // relative %, inclusive
	MaxHumidity float64 `json:"maxHumidity"` // relative %, inclusive

	Regions []string `json:"regions"`

	YieldPerAcre      float64 `json:"yieldPerAcre"`      // quintals
	PriceMin          float64 `json:"priceMin"`          // ₹ per quintal
	PriceMax          float64 `json:"priceMax"`          // ₹ per quintal
	InvestmentPerAcre float64 `json:"investmentPerAcre"` // ₹
	IncomePerAcre     float64 `json:"incomePerAcre"`     // ₹

	Duration string `json:"duration"`
	Tip      string `json:"tips"`
}

// SeasonLabel joins the profile's seasons for display, e.g. "Rabi/Kharif".
func (p Profile) SeasonLabel() string {
	names := make([]string, len(p.Seasons))
	for i, s := range p.Seasons {
		names[i] = string(s)
	}
	return strings.Join(names, "/")
}

// InSeason reports whether the crop can be sown in season s.
func (p Profile) InSeason(s Season) bool {
	for _, ps := range p.Seasons {
		if ps == s || ps == YearRound {
			return true
		}
	}
	return false
}

// GrowsIn reports whether soil is one of the crop's compatible soil types.
// Comparison ignores case and surrounding whitespace.
func (p Profile) GrowsIn(soil string) bool {
	soil = strings.TrimSpace(soil)
	for _, s := range p.Soils {
		if strings.EqualFold(s, soil) {
			return true
		}
	}
	return false
}

// Validate checks the invariants every catalog entry must hold.
func Validate(p Profile) error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if len(p.Seasons) == 0 {
		errs = append(errs, errors.New("no seasons"))
	}
	if len(p.Soils) == 0 {
		errs = append(errs, errors.New("no soil types"))
	}
	if p.MinTemp > p.MaxTemp {
		errs = append(errs, fmt.Errorf("minTemp %.1f > maxTemp %.1f", p.MinTemp, p.MaxTemp))
	}
	if p.MinHumidity > p.MaxHumidity {
		errs = append(errs, fmt.Errorf("minHumidity %.1f > maxHumidity %.1f", p.MinHumidity, p.MaxHumidity))
	}
	if p.PriceMin > p.PriceMax {
		errs = append(errs, fmt.Errorf("priceMin %.0f > priceMax %.0f", p.PriceMin, p.PriceMax))
	}
	for name, v := range map[string]float64{
		"yieldPerAcre":      p.YieldPerAcre,
		"priceMin":          p.PriceMin,
		"priceMax":          p.PriceMax,
		"investmentPerAcre": p.InvestmentPerAcre,
		"incomePerAcre":     p.IncomePerAcre,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s is negative", name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("crop %q: %w", p.ID, err)
	}
	return nil
}
