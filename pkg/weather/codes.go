package weather

import (
	"pubapis/pkg/domain"
	"slices"
)

// UnknownCondition is reported for codes missing from the table.
const UnknownCondition = "Unknown"

// conditions maps WMO weather interpretation codes to display text.
var conditions = map[int]string{ //nolint: gochecknoglobals
	0:  "Clear",
	1:  "Mainly Clear",
	2:  "Partly Cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing Rime Fog",
	51: "Light Drizzle",
	53: "Moderate Drizzle",
	55: "Dense Drizzle",
	56: "Light Freezing Drizzle",
	57: "Dense Freezing Drizzle",
	61: "Light Rain",
	63: "Moderate Rain",
	65: "Heavy Rain",
	66: "Light Freezing Rain",
	67: "Heavy Freezing Rain",
	71: "Snowfall",
	73: "Moderate Snowfall",
	75: "Heavy Snowfall",
	77: "Snow Grains",
	80: "Light Rain Showers",
	81: "Moderate Rain Showers",
	82: "Violent Rain Showers",
	85: "Light Snow Showers",
	86: "Heavy Snow Showers",
	95: "Thunderstorm",
	96: "Thunderstorm With Hail",
	99: "Severe Thunderstorm",
}

// rainCodes trigger the umbrella alert.
var rainCodes = []int{51, 61, 63, 80, 81} //nolint: gochecknoglobals

// Condition returns the display text for a WMO weather code.
func Condition(code int) string {
	if c, ok := conditions[code]; ok {
		return c
	}

	return UnknownCondition
}

// AlertKind identifies the reason for an alert.
type AlertKind string

const (
	AlertHot  AlertKind = "hot"
	AlertCold AlertKind = "cold"
	AlertRain AlertKind = "rain"
)

// Alert is a single advisory derived from the current weather.
type Alert struct {
	Kind    AlertKind
	Message string
}

// Thresholds holds the temperatures (°C) beyond which alerts fire.
type Thresholds struct {
	Hot  float64
	Cold float64
}

// DefaultThresholds alert above 35°C and below 15°C.
var DefaultThresholds = Thresholds{Hot: 35, Cold: 15} //nolint: gochecknoglobals

// Alerts returns the temperature alert (at most one of hot or cold) followed
// by the rain alert when the weather code signals rain.
func Alerts(w domain.CurrentWeather, th Thresholds) []Alert {
	var out []Alert
	switch {
	case w.Temperature > th.Hot:
		out = append(out, Alert{Kind: AlertHot, Message: "🔥 ALERT: Very hot! Stay hydrated."})
	case w.Temperature < th.Cold:
		out = append(out, Alert{Kind: AlertCold, Message: "🧥 ALERT: Cold temperature! Wear warm clothes."})
	}
	if slices.Contains(rainCodes, w.WeatherCode) {
		out = append(out, Alert{Kind: AlertRain, Message: "🌧️ ALERT: Chance of rain. Carry an umbrella!"})
	}

	return out
}
