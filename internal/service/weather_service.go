package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/persistence"
	"github.com/spec-kit/church-cms/internal/weather"
	apperrors "github.com/spec-kit/church-cms/pkg/util"
)

// WeatherCache stores serialized weather payloads with a TTL.
type WeatherCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// RedisWeatherCache backs WeatherCache with Redis.
type RedisWeatherCache struct {
	redis *persistence.Redis
}

// NewRedisWeatherCache constructs the cache.
func NewRedisWeatherCache(redis *persistence.Redis) *RedisWeatherCache {
	return &RedisWeatherCache{redis: redis}
}

// Get returns the cached payload, treating any Redis failure as a miss.
func (c *RedisWeatherCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.redis == nil || c.redis.Client == nil {
		return nil, false
	}
	val, err := c.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores the payload; failures are ignored, the upstream API remains authoritative.
func (c *RedisWeatherCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c.redis == nil || c.redis.Client == nil {
		return
	}
	c.redis.Client.Set(ctx, key, value, ttl)
}

// WeatherService serves cached weather data for the church location.
type WeatherService struct {
	client   *weather.Client
	cache    WeatherCache
	cacheTTL time.Duration
	city     string
	logger   *zap.Logger
}

// NewWeatherService constructs the service.
func NewWeatherService(cfg config.WeatherConfig, client *weather.Client, cache WeatherCache, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		client:   client,
		cache:    cache,
		cacheTTL: cfg.CacheTTL(),
		city:     cfg.DefaultCity,
		logger:   logger,
	}
}

// Current returns current conditions for the city, defaulting to the
// configured church location. Responses are cached to keep load on the
// upstream API bounded.
func (s *WeatherService) Current(ctx context.Context, city string) (*weather.Report, error) {
	if city == "" {
		city = s.city
	}

	key := "weather:current:" + city
	if cached, ok := s.cache.Get(ctx, key); ok {
		var report weather.Report
		if err := json.Unmarshal(cached, &report); err == nil {
			return &report, nil
		}
	}

	report, err := s.client.Current(ctx, city)
	if err != nil {
		return nil, s.mapError(err)
	}

	if payload, err := json.Marshal(report); err == nil {
		s.cache.Set(ctx, key, payload, s.cacheTTL)
	}
	return report, nil
}

// Forecast returns the aggregated five-day forecast for the city.
func (s *WeatherService) Forecast(ctx context.Context, city string) (*weather.Forecast, error) {
	if city == "" {
		city = s.city
	}

	key := "weather:forecast:" + city
	if cached, ok := s.cache.Get(ctx, key); ok {
		var forecast weather.Forecast
		if err := json.Unmarshal(cached, &forecast); err == nil {
			return &forecast, nil
		}
	}

	forecast, err := s.client.FiveDay(ctx, city)
	if err != nil {
		return nil, s.mapError(err)
	}

	if payload, err := json.Marshal(forecast); err == nil {
		s.cache.Set(ctx, key, payload, s.cacheTTL)
	}
	return forecast, nil
}

// mapError translates client failures; upstream detail is logged, never exposed.
func (s *WeatherService) mapError(err error) error {
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		return apperrors.NewNotFound("city", nil)
	case errors.Is(err, weather.ErrNoAPIKey), errors.Is(err, weather.ErrBadAPIKey):
		s.logger.Error("weather service misconfigured", zap.Error(err))
		return apperrors.NewInternalError(errors.New("weather service is currently unavailable"))
	default:
		s.logger.Warn("weather service unavailable", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
}
