// Package openweathermap provides a forecast.Provider backed by the
// OpenWeatherMap 5-day / 3-hour forecast API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripweaver/tripweaver/internal/forecast"
	"github.com/tripweaver/tripweaver/internal/provider/resilience"
)

const (
	// ProviderName identifies this forecast provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeatherMap forecast API client keyed by location name.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetForecast fetches the 5-day / 3-hour forecast for a location name.
func (c *Client) GetForecast(ctx context.Context, location string) (*forecast.Forecast, error) {
	endpoint := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(location), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", forecast.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, forecast.ErrNoDataForLocation
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status code %d", forecast.ErrProviderUnavailable, resp.StatusCode)
	}

	var owmResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return c.toForecast(location, &owmResp), nil
}

// toForecast converts an OpenWeatherMap response to the domain model.
func (c *Client) toForecast(location string, resp *forecastResponse) *forecast.Forecast {
	f := &forecast.Forecast{
		Location:  location,
		Samples:   make([]forecast.Sample, 0, len(resp.List)),
		FetchedAt: time.Now(),
	}

	for _, item := range resp.List {
		sample := forecast.Sample{
			Time:        time.Unix(item.Dt, 0).UTC(),
			Temperature: item.Main.Temp,
			Humidity:    item.Main.Humidity,
			PrecipProb:  item.Pop,
		}

		if len(item.Weather) > 0 {
			sample.Condition = mapCondition(item.Weather[0].Main)
			sample.Description = item.Weather[0].Description
		} else {
			sample.Condition = forecast.ConditionUnknown
		}

		f.Samples = append(f.Samples, sample)
	}

	return f
}

// mapCondition maps an OpenWeatherMap condition to the domain condition.
func mapCondition(owmCondition string) forecast.Condition {
	switch owmCondition {
	case "Clear":
		return forecast.ConditionClear
	case "Clouds":
		return forecast.ConditionClouds
	case "Rain":
		return forecast.ConditionRain
	case "Drizzle":
		return forecast.ConditionDrizzle
	case "Thunderstorm":
		return forecast.ConditionThunderstorm
	case "Snow":
		return forecast.ConditionSnow
	case "Mist":
		return forecast.ConditionMist
	case "Fog":
		return forecast.ConditionFog
	case "Haze", "Dust", "Sand", "Ash", "Squall", "Tornado":
		return forecast.ConditionHaze
	default:
		return forecast.ConditionUnknown
	}
}

// OpenWeatherMap API response structures.

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			ID          int    `json:"id"`
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Pop   float64 `json:"pop"`
		DtTxt string  `json:"dt_txt"`
	} `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}
