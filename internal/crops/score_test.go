package crops

import (
	"math"
	"reflect"
	"testing"
)

// testCrop matches the query {Loamy, UP, 20°C, 70%} exactly on every factor.
func testCrop() Profile {
	return Profile{
		ID:           "test",
		Seasons:      []Season{Rabi},
		QuickHarvest: true,
		Soils:        []string{"Loamy"},
		MinTemp:      10, MaxTemp: 25,
		MinHumidity: 50, MaxHumidity: 85,
		Regions:       []string{"UP"},
		IncomePerAcre: 60000,
	}
}

func testQuery() Query {
	return Query{Soil: "Loamy", Region: "UP", Temperature: 20, Humidity: 70}
}

func TestScoreAllFactors(t *testing.T) {
	m := Score(testCrop(), testQuery(), Rabi)

	if m.Score != 30+25+15+20+10+5+6 {
		t.Errorf("score = %d, want 111", m.Score)
	}
	want := []Reason{ReasonSoil, ReasonTemperature, ReasonHumidity, ReasonRegion, ReasonSeason, ReasonQuickHarvest}
	if !reflect.DeepEqual(m.Reasons, want) {
		t.Errorf("reasons = %v, want %v", m.Reasons, want)
	}
}

func TestScoreQuickHarvestExclusion(t *testing.T) {
	p := testCrop()
	p.QuickHarvest = false
	q := testQuery()
	q.OnlyQuickHarvest = true

	m := Score(p, q, Rabi)
	if m.Score != Excluded {
		t.Errorf("score = %d, want %d", m.Score, Excluded)
	}
	if len(m.Reasons) != 0 {
		t.Errorf("excluded crop has reasons %v", m.Reasons)
	}
}

func TestScoreTemperatureBuckets(t *testing.T) {
	tests := []struct {
		name   string
		temp   float64
		points int
		reason bool
	}{
		{"lower bound", 10, 25, true},
		{"upper bound", 25, 25, true},
		{"near below", 7, 12, false},
		{"near above", 28, 12, false},
		{"too cold", 6.9, 0, false},
		{"too hot", 28.1, 0, false},
		{"malformed", math.NaN(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{ID: "t", Seasons: []Season{Kharif}, Soils: []string{"Red"},
				MinTemp: 10, MaxTemp: 25, MinHumidity: 0, MaxHumidity: 0}
			q := Query{Soil: "Clay", Temperature: tt.temp, Humidity: 50}

			m := Score(p, q, Rabi)
			if m.Score != tt.points {
				t.Errorf("score = %d, want %d", m.Score, tt.points)
			}
			if got := containsReason(m.Reasons, ReasonTemperature); got != tt.reason {
				t.Errorf("temperature reason present = %v, want %v", got, tt.reason)
			}
		})
	}
}

func TestScoreHumidityBuckets(t *testing.T) {
	tests := []struct {
		humidity float64
		points   int
	}{
		{50, 15},
		{85, 15},
		{40, 7},
		{95, 7},
		{39, 0},
		{96, 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		p := Profile{ID: "h", Seasons: []Season{Kharif}, Soils: []string{"Red"},
			MinTemp: 100, MaxTemp: 100, MinHumidity: 50, MaxHumidity: 85}
		q := Query{Soil: "Clay", Temperature: 0, Humidity: tt.humidity}

		m := Score(p, q, Rabi)
		if m.Score != tt.points {
			t.Errorf("humidity %v: score = %d, want %d", tt.humidity, m.Score, tt.points)
		}
		if tt.points == 7 && len(m.Reasons) != 0 {
			t.Errorf("humidity %v: near match emitted reasons %v", tt.humidity, m.Reasons)
		}
	}
}

func TestIncomePoints(t *testing.T) {
	tests := []struct {
		income float64
		want   int
	}{
		{0, 0},
		{9999, 0},
		{10000, 1},
		{45000, 4},
		{150000, 15},
		{250000, 15},
	}
	for _, tt := range tests {
		if got := incomePoints(tt.income); got != tt.want {
			t.Errorf("incomePoints(%v) = %d, want %d", tt.income, got, tt.want)
		}
	}
}

func TestRegionMatches(t *testing.T) {
	tests := []struct {
		query   string
		regions []string
		want    bool
	}{
		{"up", []string{"UP"}, true},
		{"  U P ", []string{"UP"}, true},
		{"West Bengal", []string{"westbengal"}, true},
		{"Bengal", []string{"West Bengal"}, true},
		{"West Bengal State", []string{"West Bengal"}, true},
		{"Kerala", []string{"UP", "Punjab"}, false},
		// No alias table.
		{"uttar pradesh", []string{"UP"}, false},
		{"", []string{"UP"}, false},
		{"   ", []string{"UP"}, false},
		{"UP", nil, false},
	}
	for _, tt := range tests {
		if got := RegionMatches(tt.query, tt.regions); got != tt.want {
			t.Errorf("RegionMatches(%q, %v) = %v, want %v", tt.query, tt.regions, got, tt.want)
		}
	}
}

func TestScoreSoilIgnoresCase(t *testing.T) {
	p := testCrop()
	q := testQuery()
	q.Soil = " loamy "
	if m := Score(p, q, Rabi); !containsReason(m.Reasons, ReasonSoil) {
		t.Errorf("soil %q did not match %v", q.Soil, p.Soils)
	}
}

func TestScoreNeverNegativeWithoutFilter(t *testing.T) {
	queries := []Query{
		testQuery(),
		{Soil: "Black", Region: "Antarctica", Temperature: 5, Humidity: 5},
		{Temperature: math.NaN(), Humidity: math.NaN()},
		{Soil: "Sandy", Region: "a", Temperature: -40, Humidity: 200},
	}
	for _, q := range queries {
		for _, season := range []Season{Kharif, Rabi, Zaid} {
			for _, p := range Catalog() {
				if m := Score(p, q, season); m.Score < 0 {
					t.Errorf("%s scored %d for %+v", p.ID, m.Score, q)
				}
			}
		}
	}
}

func containsReason(rs []Reason, r Reason) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
