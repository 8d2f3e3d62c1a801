// Package weather defines the geocoding and current-weather interface along
// with the interpretation of WMO weather codes and temperature alerts.
package weather

import (
	"context"
	"pubapis/pkg/domain"
)

// Client resolves place names and fetches current conditions.
//
//go:generate mockgen -package mockweather -source=interface.go -destination=mock/mockweather.go *
type Client interface {
	// Geocode resolves a free-form city name to its best matching location.
	// An empty name is rejected with serrors.ErrBadRequest and an unknown one
	// with serrors.ErrNotFound.
	Geocode(ctx context.Context, city string) (domain.Location, error)
	// Current returns the current weather at the location.
	Current(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error)
}
