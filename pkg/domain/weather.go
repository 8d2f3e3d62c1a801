package domain

import "time"

// Location is a geocoded place.
type Location struct {
	// Name is the canonical place name returned by the geocoder.
	Name string
	// Country may be empty for places outside any country.
	Country   string
	Latitude  float64
	Longitude float64
}

// CurrentWeather is the current observation for a location.
type CurrentWeather struct {
	// Temperature in degrees Celsius.
	Temperature float64
	// WindSpeed in km/h.
	WindSpeed float64
	// WeatherCode is the WMO weather interpretation code.
	WeatherCode int
	// ObservedAt is the observation time in the location's timezone, as reported.
	ObservedAt time.Time
	// Humidity is the relative humidity of the matching hourly slot, nil when unknown.
	Humidity *float64
}
