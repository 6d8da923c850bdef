package openweathermap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweaver/tripweaver/internal/forecast"
	"github.com/tripweaver/tripweaver/internal/forecast/openweathermap"
	"github.com/tripweaver/tripweaver/internal/provider/resilience"
)

const forecastBody = `{
  "list": [
    {
      "dt": 1788339600,
      "main": {"temp": 24.3, "humidity": 78},
      "weather": [{"id": 500, "main": "Rain", "description": "light rain"}],
      "pop": 0.8,
      "dt_txt": "2026-09-02 09:00:00"
    },
    {
      "dt": 1788350400,
      "main": {"temp": 26.1, "humidity": 60},
      "weather": [{"id": 800, "main": "Clear", "description": "clear sky"}],
      "pop": 0,
      "dt_txt": "2026-09-02 12:00:00"
    },
    {
      "dt": 1788361200,
      "main": {"temp": 22.0, "humidity": 70},
      "weather": [],
      "pop": 0.1,
      "dt_txt": "2026-09-02 15:00:00"
    }
  ],
  "city": {"name": "Udaipur", "country": "IN"}
}`

// testHTTPClient avoids retry delays and circuit trips in tests.
func testHTTPClient(t *testing.T) *resilience.Client {
	t.Helper()
	cbConfig := resilience.DefaultCircuitBreakerConfig("test")
	cbConfig.ReadyToTrip = func(gobreaker.Counts) bool { return false }
	return resilience.NewClient(resilience.ClientConfig{
		Name:            "test",
		Timeout:         5 * time.Second,
		MaxRetries:      1,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		CircuitBreaker:  &cbConfig,
	})
}

func TestClient_GetForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "Udaipur", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: testHTTPClient(t),
		Logger:     zerolog.Nop(),
	})

	result, err := client.GetForecast(context.Background(), "Udaipur")
	require.NoError(t, err)

	assert.Equal(t, "Udaipur", result.Location)
	require.Len(t, result.Samples, 3)

	rain := result.Samples[0]
	assert.Equal(t, forecast.ConditionRain, rain.Condition)
	assert.Equal(t, "light rain", rain.Description)
	assert.InDelta(t, 24.3, rain.Temperature, 0.001)
	assert.InDelta(t, 78.0, rain.Humidity, 0.001)
	assert.InDelta(t, 0.8, rain.PrecipProb, 0.001)
	assert.Equal(t, time.Unix(1788339600, 0).UTC(), rain.Time)

	assert.Equal(t, forecast.ConditionClear, result.Samples[1].Condition)
	// missing weather array maps to unknown
	assert.Equal(t, forecast.ConditionUnknown, result.Samples[2].Condition)
}

func TestClient_GetForecast_UnknownLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: testHTTPClient(t),
		Logger:     zerolog.Nop(),
	})

	_, err := client.GetForecast(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, forecast.ErrNoDataForLocation)
}

func TestClient_GetForecast_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: testHTTPClient(t),
		Logger:     zerolog.Nop(),
	})

	_, err := client.GetForecast(context.Background(), "Udaipur")
	assert.ErrorIs(t, err, forecast.ErrProviderUnavailable)
}
