package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/church-cms/internal/service"
)

// WeatherHandler proxies weather lookups for the public site.
type WeatherHandler struct {
	weather *service.WeatherService
}

// NewWeatherHandler constructs handler.
func NewWeatherHandler(weatherService *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weather: weatherService}
}

// Current GET /api/weather?city=.... An absent city falls back to the
// configured default location.
func (h *WeatherHandler) Current(c *fiber.Ctx) error {
	report, err := h.weather.Current(c.Context(), c.Query("city"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// Forecast GET /api/weather/forecast?city=....
func (h *WeatherHandler) Forecast(c *fiber.Ctx) error {
	forecast, err := h.weather.Forecast(c.Context(), c.Query("city"))
	if err != nil {
		return err
	}
	return c.JSON(forecast)
}
