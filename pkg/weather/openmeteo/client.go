// Package openmeteo provides a weather.Client backed by the Open-Meteo
// geocoding and forecast APIs.
package openmeteo

import (
	"context"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/domain"
	"pubapis/pkg/serrors"
	"pubapis/pkg/weather"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultGeocodingURL is the Open-Meteo geocoding search endpoint.
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	// DefaultForecastURL is the Open-Meteo forecast endpoint.
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	// timeLayout is the ISO8601 local time format used by Open-Meteo.
	timeLayout = "2006-01-02T15:04"
)

// Options configures the endpoints and request timeout.
type Options struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
}

// Client is safe for concurrent use.
type Client struct {
	api  *apiclient.Client
	opts Options
}

var _ weather.Client = (*Client)(nil)

// New constructs a Client; empty endpoints fall back to the public defaults.
func New(api *apiclient.Client, opts Options) *Client {
	if opts.GeocodingURL == "" {
		opts.GeocodingURL = DefaultGeocodingURL
	}
	if opts.ForecastURL == "" {
		opts.ForecastURL = DefaultForecastURL
	}

	return &Client{api: api, opts: opts}
}

// Geocode looks up the single best match for city.
func (c *Client) Geocode(ctx context.Context, city string) (domain.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Location{}, serrors.With(serrors.ErrBadRequest, "city name cannot be empty")
	}

	var res struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Country   string  `json:"country"`
		} `json:"results"`
	}
	if err := c.api.GetJSON(ctx, apiclient.Request{
		API: "open-meteo-geocoding",
		URL: c.opts.GeocodingURL,
		Query: map[string][]string{
			"name":     {city},
			"count":    {"1"},
			"language": {"en"},
			"format":   {"json"},
		},
		Timeout: c.opts.Timeout,
	}, &res); err != nil {
		return domain.Location{}, err
	}
	if len(res.Results) == 0 {
		return domain.Location{}, serrors.With(serrors.ErrNotFound, "could not find city: %s", city)
	}

	r := res.Results[0]
	name := r.Name
	if name == "" {
		name = city
	}

	return domain.Location{
		Name:      name,
		Country:   r.Country,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}, nil
}

// Current fetches the current weather and the relative humidity of the
// hourly slot the observation falls into.
func (c *Client) Current(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error) {
	var res struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
			Time        string  `json:"time"`
		} `json:"current_weather"`
		Hourly struct {
			Time     []string   `json:"time"`
			Humidity []*float64 `json:"relativehumidity_2m"`
		} `json:"hourly"`
	}
	if err := c.api.GetJSON(ctx, apiclient.Request{
		API: "open-meteo-forecast",
		URL: c.opts.ForecastURL,
		Query: map[string][]string{
			"latitude":         {strconv.FormatFloat(loc.Latitude, 'f', -1, 64)},
			"longitude":        {strconv.FormatFloat(loc.Longitude, 'f', -1, 64)},
			"current_weather":  {"true"},
			"temperature_unit": {"celsius"},
			"hourly":           {"relativehumidity_2m"},
		},
		Timeout: c.opts.Timeout,
	}, &res); err != nil {
		return domain.CurrentWeather{}, err
	}
	if res.CurrentWeather == nil {
		return domain.CurrentWeather{}, serrors.With(serrors.ErrUpstream, "weather data unavailable")
	}

	cw := res.CurrentWeather
	out := domain.CurrentWeather{
		Temperature: cw.Temperature,
		WindSpeed:   cw.WindSpeed,
		WeatherCode: cw.WeatherCode,
	}
	if t, err := time.Parse(timeLayout, cw.Time); err == nil {
		out.ObservedAt = t
		slot := t.Truncate(time.Hour).Format(timeLayout)
		for i, ht := range res.Hourly.Time {
			if ht == slot && i < len(res.Hourly.Humidity) {
				out.Humidity = res.Hourly.Humidity[i]

				break
			}
		}
	}

	return out, nil
}
