package crops

import (
	"math"
	"strings"
	"unicode"
)

// Excluded is the score of a crop dropped by the quick-harvest filter.
const Excluded = -1

// Points awarded per factor.
const (
	soilPoints         = 30
	tempPoints         = 25
	tempNearPoints     = 12
	humidityPoints     = 15
	humidityNearPoints = 7
	regionPoints       = 20
	seasonPoints       = 10
	quickPoints        = 5
	maxIncomePoints    = 15

	tempTolerance     = 3.0  // °C outside the envelope that still earns near points
	humidityTolerance = 10.0 // humidity points outside the envelope
	incomeStep        = 10000.0
)

// Reason identifies a factor on which a crop matched exactly.
type Reason string

// Reason codes, in the order Score emits them.
const (
	ReasonSoil         Reason = "soil"
	ReasonTemperature  Reason = "temperature"
	ReasonHumidity     Reason = "humidity"
	ReasonRegion       Reason = "region"
	ReasonSeason       Reason = "season"
	ReasonQuickHarvest Reason = "quick_harvest"
)

// Query is a farmer's request context. Temperature and Humidity may be NaN
// when the caller could not parse them; NaN matches no envelope.
type Query struct {
	Soil             string
	Region           string
	Temperature      float64 // °C
	Humidity         float64 // relative %
	OnlyQuickHarvest bool
}

// Match is the outcome of scoring one crop.
type Match struct {
	Score   int
	Reasons []Reason
}

// Score computes a crop's fitness for q in season. Every factor is evaluated
// independently; reasons are emitted only for exact matches.
func Score(p Profile, q Query, season Season) Match {
	if q.OnlyQuickHarvest && !p.QuickHarvest {
		return Match{Score: Excluded}
	}

	var m Match
	award := func(points int, r Reason) {
		m.Score += points
		if r != "" {
			m.Reasons = append(m.Reasons, r)
		}
	}

	if p.GrowsIn(q.Soil) {
		award(soilPoints, ReasonSoil)
	}

	switch {
	case within(q.Temperature, p.MinTemp, p.MaxTemp, 0):
		award(tempPoints, ReasonTemperature)
	case within(q.Temperature, p.MinTemp, p.MaxTemp, tempTolerance):
		award(tempNearPoints, "")
	}

	switch {
	case within(q.Humidity, p.MinHumidity, p.MaxHumidity, 0):
		award(humidityPoints, ReasonHumidity)
	case within(q.Humidity, p.MinHumidity, p.MaxHumidity, humidityTolerance):
		award(humidityNearPoints, "")
	}

	if RegionMatches(q.Region, p.Regions) {
		award(regionPoints, ReasonRegion)
	}
	if p.InSeason(season) {
		award(seasonPoints, ReasonSeason)
	}
	if p.QuickHarvest {
		award(quickPoints, ReasonQuickHarvest)
	}

	award(incomePoints(p.IncomePerAcre), "")
	return m
}

// within reports whether v lies in [lo-slack, hi+slack]. NaN never does.
func within(v, lo, hi, slack float64) bool {
	return v >= lo-slack && v <= hi+slack
}

func incomePoints(income float64) int {
	pts := int(math.Floor(income / incomeStep))
	if pts > maxIncomePoints {
		return maxIncomePoints
	}
	if pts < 0 {
		return 0
	}
	return pts
}

// RegionMatches reports whether query names one of regions. Both sides are
// lower-cased with whitespace removed, then tested for substring containment
// in either direction. There is no alias table: "uttar pradesh" does not
// match "UP". An empty query matches nothing.
func RegionMatches(query string, regions []string) bool {
	q := normalizeRegion(query)
	if q == "" {
		return false
	}
	for _, r := range regions {
		nr := normalizeRegion(r)
		if nr == "" {
			continue
		}
		if strings.Contains(nr, q) || strings.Contains(q, nr) {
			return true
		}
	}
	return false
}

func normalizeRegion(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
