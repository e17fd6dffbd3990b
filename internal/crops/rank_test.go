package crops

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func fixedClock(m time.Month) func() time.Time {
	return func() time.Time { return time.Date(2026, m, 10, 9, 0, 0, 0, time.UTC) }
}

func TestSuitability(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{1, 1},
		{52, 50},  // 49.52
		{53, 50},  // 50.48
		{55, 52},  // 52.38
		{95, 90},  // 90.48
		{102, 97}, // 97.14
		{103, 98}, // 98.10
		{105, 98},
		{120, 98},
	}
	for _, tt := range tests {
		if got := cfg.Suitability(tt.score); got != tt.want {
			t.Errorf("Suitability(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestSuitabilityMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := cfg.Suitability(0)
	for s := 1; s <= 120; s++ {
		got := cfg.Suitability(s)
		if got < prev {
			t.Fatalf("Suitability(%d) = %d < Suitability(%d) = %d", s, got, s-1, prev)
		}
		if got < 0 || got > 98 {
			t.Fatalf("Suitability(%d) = %d out of [0, 98]", s, got)
		}
		prev = got
	}
}

func TestRankSpinachInRabi(t *testing.T) {
	r := &Recommender{Catalog: Catalog(), Config: DefaultConfig(), Now: fixedClock(time.December)}
	res := r.Recommend(Query{Soil: "Loamy", Region: "UP", Temperature: 20, Humidity: 70})

	if res.Season != Rabi {
		t.Fatalf("season = %s, want Rabi", res.Season)
	}
	if len(res.Crops) != 8 {
		t.Fatalf("got %d crops, want 8", len(res.Crops))
	}

	pos := -1
	for i, c := range res.Crops[:3] {
		if c.ID == "spinach" {
			pos = i
		}
	}
	if pos < 0 {
		t.Fatalf("spinach not in top 3: %v", ids(res.Crops))
	}
	spinach := res.Crops[pos]
	want := []Reason{ReasonSoil, ReasonTemperature, ReasonHumidity, ReasonRegion, ReasonSeason, ReasonQuickHarvest}
	if !reflect.DeepEqual(spinach.Reasons, want) {
		t.Errorf("spinach reasons = %v, want %v", spinach.Reasons, want)
	}
	if spinach.Suitability < 90 {
		t.Errorf("spinach suitability = %d, want >= 90", spinach.Suitability)
	}
}

func TestRankOnlyQuickHarvest(t *testing.T) {
	queries := []Query{
		{Soil: "Loamy", Region: "UP", Temperature: 20, Humidity: 70, OnlyQuickHarvest: true},
		{Soil: "Black", Region: "Gujarat", Temperature: 30, Humidity: 60, OnlyQuickHarvest: true},
	}
	for _, q := range queries {
		for _, season := range []Season{Kharif, Rabi, Zaid} {
			got := Rank(Catalog(), q, season, DefaultConfig())
			if len(got) == 0 {
				t.Errorf("no quick-harvest crops for %+v in %s", q, season)
			}
			for _, c := range got {
				if !c.QuickHarvest {
					t.Errorf("%s returned with onlyQuickHarvest in %s", c.ID, season)
				}
			}
		}
	}
}

func TestRankQuickFilterDropsHigherScorers(t *testing.T) {
	q := Query{Soil: "Loamy", Region: "UP", Temperature: 20, Humidity: 70}
	all := Rank(Catalog(), q, Rabi, DefaultConfig())
	if all[0].ID != "sugarcane" {
		t.Fatalf("expected sugarcane to top the unfiltered list, got %s", all[0].ID)
	}

	q.OnlyQuickHarvest = true
	quick := Rank(Catalog(), q, Rabi, DefaultConfig())
	for _, c := range quick {
		if c.ID == "sugarcane" {
			t.Fatal("sugarcane survived the quick-harvest filter")
		}
	}
	if quick[0].ID != "spinach" {
		t.Errorf("top quick crop = %s, want spinach", quick[0].ID)
	}
}

func TestRankHostileConditions(t *testing.T) {
	q := Query{Soil: "Black", Region: "Antarctica", Temperature: 5, Humidity: 5}
	got := Rank(Catalog(), q, Rabi, DefaultConfig())

	if len(got) == 0 {
		t.Fatal("expected non-empty result")
	}
	for _, c := range got {
		if c.Suitability > 57 {
			t.Errorf("%s suitability = %d, want a low value", c.ID, c.Suitability)
		}
		for _, r := range c.Reasons {
			if r == ReasonTemperature || r == ReasonHumidity || r == ReasonRegion {
				t.Errorf("%s matched %s in hostile conditions", c.ID, r)
			}
		}
		p, _ := Lookup(c.ID)
		if c.Score < incomePoints(p.IncomePerAcre) {
			t.Errorf("%s score %d is below its income bonus", c.ID, c.Score)
		}
	}
}

func TestRankSortedAndCapped(t *testing.T) {
	queries := []Query{
		{Soil: "Loamy", Region: "UP", Temperature: 20, Humidity: 70},
		{Soil: "Red", Region: "Karnataka", Temperature: 28, Humidity: 65},
		{Soil: "Silty", Region: "", Temperature: math.NaN(), Humidity: 80},
	}
	for _, q := range queries {
		got := Rank(Catalog(), q, Kharif, DefaultConfig())
		if len(got) > 8 {
			t.Errorf("got %d crops, want at most 8", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Score > got[i-1].Score {
				t.Errorf("not sorted at %d: %d > %d", i, got[i].Score, got[i-1].Score)
			}
		}
	}
}

func TestRankStableTies(t *testing.T) {
	base := Profile{Seasons: []Season{Kharif}, Soils: []string{"Loamy"}, MinTemp: 0, MaxTemp: 40, MinHumidity: 0, MaxHumidity: 100}
	a, b, c := base, base, base
	a.ID, b.ID, c.ID = "a", "b", "c"
	c.IncomePerAcre = 10000

	got := Rank([]Profile{a, b, c}, Query{Soil: "Loamy", Temperature: 20, Humidity: 50}, Kharif, DefaultConfig())
	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestRankEmpty(t *testing.T) {
	got := Rank(nil, Query{}, Rabi, DefaultConfig())
	if got == nil || len(got) != 0 {
		t.Errorf("Rank(nil) = %#v, want empty non-nil slice", got)
	}

	onlySlow := []Profile{{ID: "slow", Seasons: []Season{Rabi}, Soils: []string{"Clay"}}}
	got = Rank(onlySlow, Query{OnlyQuickHarvest: true}, Rabi, DefaultConfig())
	if len(got) != 0 {
		t.Errorf("expected no crops, got %v", ids(got))
	}
}

func TestRankCustomLimit(t *testing.T) {
	cfg := Config{Normalizer: 105, Cap: 98, Limit: 3}
	got := Rank(Catalog(), Query{Soil: "Loamy"}, Rabi, cfg)
	if len(got) != 3 {
		t.Errorf("got %d crops, want 3", len(got))
	}
}

func TestRecommendDeterministic(t *testing.T) {
	r := &Recommender{Catalog: Catalog(), Config: DefaultConfig(), Now: fixedClock(time.August)}
	q := Query{Soil: "Clay", Region: "West Bengal", Temperature: 30, Humidity: 85}

	first := r.Recommend(q)
	for i := 0; i < 5; i++ {
		if again := r.Recommend(q); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%v\n%v", i, ids(first.Crops), ids(again.Crops))
		}
	}
}

func ids(cs []Scored) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
