package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/weather"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

type fakeDoer struct {
	status   int
	body     string
	requests int
}

func (d *fakeDoer) Do(*http.Request) (*http.Response, error) {
	d.requests++
	return &http.Response{
		StatusCode: d.status,
		Body:       io.NopCloser(bytes.NewBufferString(d.body)),
	}, nil
}

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	val, ok := c.entries[key]
	return val, ok
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	c.entries[key] = value
}

const currentConditionsBody = `{
	"name": "Lagos",
	"sys": {"country": "NG", "sunrise": 1700000000, "sunset": 1700040000},
	"main": {"temp": 29.6, "feels_like": 33.2, "humidity": 74, "pressure": 1012},
	"weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}],
	"wind": {"speed": 3.4},
	"visibility": 10000
}`

func newWeatherService(doer *fakeDoer, cache WeatherCache) *WeatherService {
	client := weather.NewClientWithDoer("https://api.example.com/data/2.5", "test-key", doer)
	cfg := config.WeatherConfig{DefaultCity: "Lagos", CacheTTLSeconds: 600}
	return NewWeatherService(cfg, client, cache, zap.NewNop())
}

func TestWeatherCurrent(t *testing.T) {
	t.Run("maps upstream payload", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusOK, body: currentConditionsBody}
		svc := newWeatherService(doer, newMemoryCache())

		report, err := svc.Current(context.Background(), "Lagos")
		require.NoError(t, err)
		assert.Equal(t, "Lagos", report.City)
		assert.Equal(t, "NG", report.Country)
		assert.Equal(t, 30, report.Temperature, "temperatures are rounded")
		assert.Equal(t, 33, report.FeelsLike)
		assert.Equal(t, "scattered clouds", report.Description)
		require.NotNil(t, report.VisibilityKM)
		assert.Equal(t, 10, *report.VisibilityKM)
	})

	t.Run("serves from cache on repeat lookups", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusOK, body: currentConditionsBody}
		svc := newWeatherService(doer, newMemoryCache())

		_, err := svc.Current(context.Background(), "Lagos")
		require.NoError(t, err)
		_, err = svc.Current(context.Background(), "Lagos")
		require.NoError(t, err)

		assert.Equal(t, 1, doer.requests)
	})

	t.Run("empty city falls back to the configured default", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusOK, body: currentConditionsBody}
		cache := newMemoryCache()
		svc := newWeatherService(doer, cache)

		_, err := svc.Current(context.Background(), "")
		require.NoError(t, err)
		_, cached := cache.Get(context.Background(), "weather:current:Lagos")
		assert.True(t, cached)
	})

	t.Run("unknown city is 404", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusNotFound, body: `{}`}
		svc := newWeatherService(doer, newMemoryCache())

		_, err := svc.Current(context.Background(), "Atlantis")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("bad API key is a generic 500", func(t *testing.T) {
		doer := &fakeDoer{status: http.StatusUnauthorized, body: `{}`}
		svc := newWeatherService(doer, newMemoryCache())

		_, err := svc.Current(context.Background(), "Lagos")
		require.Error(t, err)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
		assert.NotContains(t, domainErr.Message, "key", "upstream detail stays internal")
	})
}

func TestWeatherForecastAggregation(t *testing.T) {
	const forecastBody = `{
		"city": {"name": "Lagos", "country": "NG"},
		"list": [
			{"dt": 1699963200, "main": {"temp": 24.2, "humidity": 80},
			 "weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}],
			 "wind": {"speed": 2.1}},
			{"dt": 1699974000, "main": {"temp": 31.8, "humidity": 60},
			 "weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}],
			 "wind": {"speed": 1.5}},
			{"dt": 1700049600, "main": {"temp": 27.0, "humidity": 70},
			 "weather": [{"main": "Clouds", "description": "few clouds", "icon": "02d"}],
			 "wind": {"speed": 3.0}}
		]
	}`
	doer := &fakeDoer{status: http.StatusOK, body: forecastBody}
	svc := newWeatherService(doer, newMemoryCache())

	forecast, err := svc.Forecast(context.Background(), "Lagos")
	require.NoError(t, err)
	assert.Equal(t, "Lagos", forecast.City)
	require.Len(t, forecast.Forecast, 2, "entries collapse into daily buckets")

	first := forecast.Forecast[0]
	assert.Equal(t, 24, first.Temperature.Min)
	assert.Equal(t, 32, first.Temperature.Max)
	assert.Equal(t, "light rain", first.Description, "first entry of the day sets the description")
}
