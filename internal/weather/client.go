// Package weather proxies current conditions and forecasts from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/doyensec/safeurl"
)

// Typed failures the service layer maps onto HTTP statuses.
var (
	ErrNoAPIKey     = errors.New("weather API key not configured")
	ErrCityNotFound = errors.New("city not found")
	ErrBadAPIKey    = errors.New("weather service authentication failed")
	ErrUnavailable  = errors.New("weather service unavailable")
)

// HTTPDoer abstracts the outbound HTTP client for testing.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Report is the current-conditions view served to the frontend.
type Report struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feelsLike"`
	Description string  `json:"description"`
	Main        string  `json:"main"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Pressure    int     `json:"pressure"`
	VisibilityKM *int   `json:"visibility"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
	LastUpdated string  `json:"lastUpdated"`
}

// ForecastDay is one aggregated day of the forecast.
type ForecastDay struct {
	Date        string       `json:"date"`
	Temperature TempRange    `json:"temperature"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Humidity    int          `json:"humidity"`
	WindSpeed   float64      `json:"windSpeed"`
}

// TempRange holds rounded daily extremes.
type TempRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Forecast is the multi-day view served to the frontend.
type Forecast struct {
	City     string        `json:"city"`
	Country  string        `json:"country"`
	Forecast []ForecastDay `json:"forecast"`
}

// Client fetches weather data over an SSRF-guarded HTTP client.
type Client struct {
	http    HTTPDoer
	baseURL string
	apiKey  string
}

// NewClient builds a client whose outbound requests are restricted by safeurl:
// private, loopback, link-local and metadata addresses are blocked at dial time.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("https").
		SetAllowedPorts(443).
		Build()

	return &Client{
		http:    safeurl.Client(cfg).Client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// NewClientWithDoer injects a custom HTTP client; used by tests.
func NewClientWithDoer(baseURL, apiKey string, doer HTTPDoer) *Client {
	return &Client{http: doer, baseURL: baseURL, apiKey: apiKey}
}

type owmWeather struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmCurrent struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather    []owmWeather `json:"weather"`
	Wind       struct{ Speed float64 `json:"speed"` } `json:"wind"`
	Visibility int `json:"visibility"`
}

type owmForecast struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []owmWeather `json:"weather"`
		Wind    struct{ Speed float64 `json:"speed"` } `json:"wind"`
	} `json:"list"`
}

// Current fetches current conditions for a city.
func (c *Client) Current(ctx context.Context, city string) (*Report, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var data owmCurrent
	if err := c.get(ctx, "/weather", city, &data); err != nil {
		return nil, err
	}
	if len(data.Weather) == 0 {
		return nil, ErrUnavailable
	}

	report := &Report{
		City:        data.Name,
		Country:     data.Sys.Country,
		Temperature: round(data.Main.Temp),
		FeelsLike:   round(data.Main.FeelsLike),
		Description: data.Weather[0].Description,
		Main:        data.Weather[0].Main,
		Icon:        data.Weather[0].Icon,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		Pressure:    data.Main.Pressure,
		Sunrise:     time.Unix(data.Sys.Sunrise, 0).Format("15:04:05"),
		Sunset:      time.Unix(data.Sys.Sunset, 0).Format("15:04:05"),
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	if data.Visibility > 0 {
		km := round(float64(data.Visibility) / 1000)
		report.VisibilityKM = &km
	}
	return report, nil
}

// FiveDay fetches the forecast and aggregates entries into daily min/max buckets.
func (c *Client) FiveDay(ctx context.Context, city string) (*Forecast, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var data owmForecast
	if err := c.get(ctx, "/forecast", city, &data); err != nil {
		return nil, err
	}

	byDate := map[string]*ForecastDay{}
	var order []string
	for _, item := range data.List {
		if len(item.Weather) == 0 {
			continue
		}
		date := time.Unix(item.Dt, 0).UTC().Format("2006-01-02")
		day, ok := byDate[date]
		if !ok {
			byDate[date] = &ForecastDay{
				Date:        date,
				Temperature: TempRange{Min: round(item.Main.Temp), Max: round(item.Main.Temp)},
				Description: item.Weather[0].Description,
				Icon:        item.Weather[0].Icon,
				Humidity:    item.Main.Humidity,
				WindSpeed:   item.Wind.Speed,
			}
			order = append(order, date)
			continue
		}
		if t := round(item.Main.Temp); t < day.Temperature.Min {
			day.Temperature.Min = t
		} else if t > day.Temperature.Max {
			day.Temperature.Max = t
		}
	}

	forecast := &Forecast{City: data.City.Name, Country: data.City.Country}
	for i, date := range order {
		if i == 5 {
			break
		}
		forecast.Forecast = append(forecast.Forecast, *byDate[date])
	}
	return forecast, nil
}

func (c *Client) get(ctx context.Context, path, city string, out any) error {
	endpoint := fmt.Sprintf("%s%s?q=%s&appid=%s&units=metric",
		c.baseURL, path, url.QueryEscape(city), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ErrUnavailable
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrCityNotFound
	case http.StatusUnauthorized:
		return ErrBadAPIKey
	default:
		return ErrUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrUnavailable
	}
	return nil
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
