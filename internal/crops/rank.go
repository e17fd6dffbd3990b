package crops

import (
	"math"
	"sort"
	"time"
)

// Config holds the ranking constants.
type Config struct {
	// Normalizer is the raw score that maps to 100% suitability before
	// capping. 105 puts a strong but not maximal match above 90%.
	Normalizer float64
	// Cap is the highest suitability ever reported, so no crop is shown
	// as a perfect match.
	Cap int
	// Limit is the maximum number of ranked crops returned.
	Limit int
}

// DefaultConfig returns the standard ranking constants.
func DefaultConfig() Config {
	return Config{Normalizer: 105, Cap: 98, Limit: 8}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Normalizer <= 0 {
		c.Normalizer = d.Normalizer
	}
	if c.Cap <= 0 {
		c.Cap = d.Cap
	}
	if c.Limit <= 0 {
		c.Limit = d.Limit
	}
	return c
}

// Suitability converts a raw score to the percentage shown to farmers.
func (c Config) Suitability(score int) int {
	c = c.withDefaults()
	if score <= 0 {
		return 0
	}
	pct := int(math.Round(float64(score) / c.Normalizer * 100))
	if pct > c.Cap {
		return c.Cap
	}
	return pct
}

// Scored is a catalog profile ranked for one query.
type Scored struct {
	Profile
	Score       int
	Suitability int
	Reasons     []Reason
}

// Rank scores every profile in catalog against q, drops excluded crops,
// and returns the best matches in descending score order. Equal scores keep
// catalog order. The result is never nil.
func Rank(catalog []Profile, q Query, season Season, cfg Config) []Scored {
	cfg = cfg.withDefaults()

	ranked := make([]Scored, 0, len(catalog))
	for _, p := range catalog {
		m := Score(p, q, season)
		if m.Score < 0 {
			continue
		}
		ranked = append(ranked, Scored{
			Profile:     p,
			Score:       m.Score,
			Suitability: cfg.Suitability(m.Score),
			Reasons:     m.Reasons,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > cfg.Limit {
		ranked = ranked[:cfg.Limit]
	}
	return ranked
}

// Result is the answer to one recommendation request.
type Result struct {
	Season Season
	Query  Query
	Crops  []Scored
}

// Recommender ranks a catalog using a clock to resolve the season.
type Recommender struct {
	Catalog []Profile
	Config  Config
	Now     func() time.Time // nil means time.Now
}

// NewRecommender returns a Recommender over the built-in catalog.
func NewRecommender(cfg Config) *Recommender {
	return &Recommender{Catalog: Catalog(), Config: cfg}
}

// Recommend resolves the current season once and ranks the catalog for q.
func (r *Recommender) Recommend(q Query) Result {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	season := CurrentSeason(now())
	return Result{
		Season: season,
		Query:  q,
		Crops:  Rank(r.Catalog, q, season, r.Config),
	}
}
