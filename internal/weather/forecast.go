package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/url"
)

// ForecastPoint is one step of the short-range forecast.
type ForecastPoint struct {
	Day             string  `json:"day,omitempty"`
	DateTime        string  `json:"datetime,omitempty"`
	Temp            float64 `json:"temp,omitempty"`
	High            float64 `json:"high"`
	Low             float64 `json:"low"`
	Humidity        float64 `json:"humidity,omitempty"`
	Condition       string  `json:"condition"`
	Description     string  `json:"description,omitempty"`
	Icon            string  `json:"icon,omitempty"`
	RainProbability float64 `json:"rainProbability"`
}

// ForecastReport wraps forecast points with their source.
type ForecastReport struct {
	Source string          `json:"source"`
	Data   []ForecastPoint `json:"data"`
}

const forecastPoints = 5

// Forecast returns the next five forecast steps for city. Any provider
// failure, including an unknown city, falls back to mock data.
func (c *Client) Forecast(ctx context.Context, city string) ForecastReport {
	if c == nil {
		return ForecastReport{Source: SourceMock, Data: MockForecast()}
	}

	points, err := c.fetchForecast(ctx, city)
	if err != nil {
		slog.Warn("forecast fetch failed, serving mock", "city", city, "error", err)
		return ForecastReport{Source: SourceMockFallback, Data: MockForecast()}
	}
	return ForecastReport{Source: SourceLive, Data: points}
}

func (c *Client) fetchForecast(ctx context.Context, city string) ([]ForecastPoint, error) {
	body, err := c.get(ctx, "/forecast", url.Values{
		"q":   {city + ",IN"},
		"cnt": {fmt.Sprint(forecastPoints)},
	})
	if err != nil {
		return nil, err
	}

	var owm struct {
		List []struct {
			DtTxt string `json:"dt_txt"`
			Main  struct {
				Temp     float64 `json:"temp"`
				TempMax  float64 `json:"temp_max"`
				TempMin  float64 `json:"temp_min"`
				Humidity float64 `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Main        string `json:"main"`
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
			Pop float64 `json:"pop"`
		} `json:"list"`
	}
	if err := json.Unmarshal(body, &owm); err != nil {
		return nil, fmt.Errorf("parse forecast: %w", err)
	}

	points := make([]ForecastPoint, 0, len(owm.List))
	for _, item := range owm.List {
		p := ForecastPoint{
			DateTime:        item.DtTxt,
			Temp:            math.Round(item.Main.Temp),
			High:            math.Round(item.Main.TempMax),
			Low:             math.Round(item.Main.TempMin),
			Humidity:        item.Main.Humidity,
			RainProbability: math.Round(item.Pop * 100),
		}
		if len(item.Weather) > 0 {
			p.Condition = item.Weather[0].Main
			p.Description = item.Weather[0].Description
			p.Icon = "https://openweathermap.org/img/wn/" + item.Weather[0].Icon + ".png"
		}
		points = append(points, p)
	}
	return points, nil
}

// MockForecast returns a fixed five-day outlook.
func MockForecast() []ForecastPoint {
	return []ForecastPoint{
		{Day: "Today", High: 24, Low: 16, Condition: "Partly Cloudy", RainProbability: 30},
		{Day: "Sat", High: 26, Low: 17, Condition: "Sunny", RainProbability: 5},
		{Day: "Sun", High: 22, Low: 15, Condition: "Rainy", RainProbability: 80},
		{Day: "Mon", High: 20, Low: 13, Condition: "Cloudy", RainProbability: 60},
		{Day: "Tue", High: 25, Low: 16, Condition: "Sunny", RainProbability: 10},
	}
}
