// Package weather proxies OpenWeatherMap for Indian cities.
// Without an API key, or when the provider is unreachable, it serves
// fixed mock readings so the rest of the app keeps working.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL is the OpenWeatherMap REST root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Source values reported with every reading.
const (
	SourceLive         = "openweathermap"
	SourceMock         = "mock"
	SourceMockFallback = "mock_fallback"
)

var (
	// ErrCityNotFound is returned when the provider does not know the city.
	ErrCityNotFound = errors.New("city not found")
	// ErrInvalidKey is returned when the provider rejects the API key.
	ErrInvalidKey = errors.New("invalid OpenWeatherMap API key")
)

// Client fetches weather data from OpenWeatherMap.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client

	mu          sync.Mutex
	cache       map[string]cachedConditions
	cacheTTL    time.Duration
	lastFailAt  time.Time
	failBackoff time.Duration
}

type cachedConditions struct {
	conditions Conditions
	at         time.Time
}

// placeholderKey is the value shipped in the sample .env file.
const placeholderKey = "your_openweathermap_api_key_here"

// NewClient creates a weather API client. Returns nil if apiKey is empty
// or still the sample placeholder; a nil *Client serves mock data.
func NewClient(apiKey string) *Client {
	if apiKey == "" || apiKey == placeholderKey {
		return nil
	}
	return &Client{
		apiKey:   apiKey,
		baseURL:  DefaultBaseURL,
		client:   &http.Client{Timeout: 5 * time.Second},
		cache:    make(map[string]cachedConditions),
		cacheTTL: 5 * time.Minute,
	}
}

// WithBaseURL points the client at another endpoint, e.g. a test server.
func (c *Client) WithBaseURL(u string) *Client {
	if c != nil {
		c.baseURL = strings.TrimRight(u, "/")
	}
	return c
}

// Conditions holds the current weather for one city.
type Conditions struct {
	City        string  `json:"city"`
	Country     string  `json:"country,omitempty"`
	Temp        float64 `json:"temp"` // Celsius, rounded
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    float64 `json:"humidity"`  // relative %
	WindSpeed   float64 `json:"windSpeed"` // km/h
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	RainChance  float64 `json:"rainChance"`
	UVIndex     *int    `json:"uvIndex"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
}

// Report wraps a reading with where it came from.
type Report struct {
	Source string     `json:"source"`
	Note   string     `json:"note,omitempty"`
	Data   Conditions `json:"data"`
}

// Current returns current conditions for city, using the cache if fresh.
// Provider failures other than an unknown city or a rejected key fall back
// to the last cached reading, then to mock data.
func (c *Client) Current(ctx context.Context, city string) (Report, error) {
	if c == nil {
		return Report{
			Source: SourceMock,
			Note:   "Set OPENWEATHER_API_KEY to get real weather data",
			Data:   MockConditions(city),
		}, nil
	}

	key := strings.ToLower(strings.TrimSpace(city))

	c.mu.Lock()
	defer c.mu.Unlock()

	cached, hasCached := c.cache[key]
	if hasCached && time.Since(cached.at) < c.cacheTTL {
		return Report{Source: SourceLive, Data: cached.conditions}, nil
	}

	// Backoff on repeated failures (up to 10 minutes).
	if c.failBackoff > 0 && time.Since(c.lastFailAt) < c.failBackoff {
		return c.fallback(city, cached, hasCached), nil
	}

	conditions, err := c.fetchCurrent(ctx, city)
	if errors.Is(err, ErrCityNotFound) || errors.Is(err, ErrInvalidKey) {
		return Report{}, err
	}
	if err != nil {
		c.recordFailure()
		slog.Warn("weather fetch failed, serving fallback", "city", city, "error", err, "backoff", c.failBackoff)
		return c.fallback(city, cached, hasCached), nil
	}

	c.cache[key] = cachedConditions{conditions: conditions, at: time.Now()}
	c.failBackoff = 0 // Reset backoff on success.
	return Report{Source: SourceLive, Data: conditions}, nil
}

func (c *Client) recordFailure() {
	c.lastFailAt = time.Now()
	if c.failBackoff == 0 {
		c.failBackoff = 1 * time.Minute
	} else if c.failBackoff < 10*time.Minute {
		c.failBackoff *= 2
	}
}

func (c *Client) fallback(city string, cached cachedConditions, hasCached bool) Report {
	if hasCached {
		return Report{Source: SourceLive, Note: "stale reading", Data: cached.conditions}
	}
	return Report{
		Source: SourceMockFallback,
		Note:   "Live API unavailable, returning mock data",
		Data:   MockConditions(city),
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather API call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read weather response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, ErrCityNotFound
	case http.StatusUnauthorized:
		return nil, ErrInvalidKey
	}
	return nil, fmt.Errorf("weather API error %d: %s", resp.StatusCode, string(body))
}

func (c *Client) fetchCurrent(ctx context.Context, city string) (Conditions, error) {
	body, err := c.get(ctx, "/weather", url.Values{"q": {city + ",IN"}, "lang": {"en"}})
	if err != nil {
		return Conditions{}, err
	}

	// Parse OpenWeatherMap response.
	var owm struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"` // seconds east of UTC
		Sys      struct {
			Country string `json:"country"`
			Sunrise int64  `json:"sunrise"`
			Sunset  int64  `json:"sunset"`
		} `json:"sys"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
	}
	if err := json.Unmarshal(body, &owm); err != nil {
		return Conditions{}, fmt.Errorf("parse weather: %w", err)
	}

	zone := time.FixedZone("local", owm.Timezone)
	conditions := Conditions{
		City:       owm.Name,
		Country:    owm.Sys.Country,
		Temp:       math.Round(owm.Main.Temp),
		FeelsLike:  math.Round(owm.Main.FeelsLike),
		Humidity:   owm.Main.Humidity,
		WindSpeed:  math.Round(owm.Wind.Speed * 3.6), // m/s to km/h
		RainChance: owm.Clouds.All,
		Sunrise:    clock(owm.Sys.Sunrise, zone),
		Sunset:     clock(owm.Sys.Sunset, zone),
	}
	if len(owm.Weather) > 0 {
		w := owm.Weather[0]
		conditions.Condition = w.Main
		conditions.Description = w.Description
		conditions.Icon = "https://openweathermap.org/img/wn/" + w.Icon + "@2x.png"
	}

	slog.Debug("weather fetched", "city", conditions.City, "temp", conditions.Temp, "humidity", conditions.Humidity)
	return conditions, nil
}

func clock(unix int64, zone *time.Location) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).In(zone).Format("3:04 PM")
}

// MockConditions returns the fixed reading served when live data is
// unavailable.
func MockConditions(city string) Conditions {
	uv := 5
	return Conditions{
		City:        city,
		Temp:        24,
		FeelsLike:   22,
		Humidity:    68,
		WindSpeed:   12,
		Condition:   "Partly Cloudy",
		Description: "partly cloudy",
		RainChance:  30,
		UVIndex:     &uv,
		Sunrise:     "6:42 AM",
		Sunset:      "6:18 PM",
	}
}
