// Package weatherreport runs the city weather checker: it geocodes a city,
// prints the current conditions with alerts and finishes with a joke.
package weatherreport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"pubapis/internal/prompt"
	"pubapis/pkg/domain"
	"pubapis/pkg/logger"
	"pubapis/pkg/serrors"
	"pubapis/pkg/weather"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

const (
	ruleWidth = 55
	boxRule   = "══════════════════════════════════════"
	// clockLayout renders the report time, e.g. 03:04 PM.
	clockLayout = "03:04 PM"
)

// Options alters the report.
type Options struct {
	Thresholds weather.Thresholds
	// NoJoke skips the bonus joke.
	NoJoke bool
}

// Reporter is one weather session. It is not safe for concurrent use.
type Reporter struct {
	weather weather.Client
	joker   *JokeTeller
	prompt  *prompt.Prompter
	out     io.Writer
	opts    Options
	now     func() time.Time
}

// New constructs a Reporter. joker may be nil when Options.NoJoke is set.
func New(client weather.Client, joker *JokeTeller, p *prompt.Prompter, out io.Writer, opts Options) *Reporter {
	return &Reporter{
		weather: client,
		joker:   joker,
		prompt:  p,
		out:     out,
		opts:    opts,
		now:     time.Now,
	}
}

// WithClock replaces the clock used for the report time.
func (r *Reporter) WithClock(now func() time.Time) *Reporter {
	r.now = now

	return r
}

// Run prints the banner, asks for the city when none is given, reports the
// weather and tells a joke after a successful report.
func (r *Reporter) Run(ctx context.Context, city string) error {
	rule := strings.Repeat("=", ruleWidth)
	r.printf("%s\n     SIMPLE AUTOMATION - WEATHER CHECKER\n%s\n", rule, rule)

	if strings.TrimSpace(city) == "" {
		var err error
		city, err = r.prompt.Ask(ctx, "\nEnter any city: ")
		if err != nil {
			return err
		}
	}

	ok, err := r.Report(ctx, city)
	if err != nil {
		return err
	}
	if ok {
		r.printf("\n✅ Success! Weather data fetched.\n\n")
		if !r.opts.NoJoke && r.joker != nil {
			if err := r.joker.Tell(ctx); err != nil {
				return err
			}
		}
	}
	r.printf("%s\n", rule)

	return nil
}

// Report prints the weather of city and reports whether it succeeded.
// Lookup failures are printed; the error is only set for cancellation.
func (r *Reporter) Report(ctx context.Context, city string) (bool, error) {
	loc, err := r.weather.Geocode(ctx, city)
	if err != nil {
		return false, r.fail(ctx, err, geocodeMessage(err, city))
	}

	r.printf("\n🌤️ Fetching weather for %s (%s, %s)...\n",
		loc.Name, formatFloat(loc.Latitude), formatFloat(loc.Longitude))

	current, err := r.weather.Current(ctx, loc)
	if err != nil {
		return false, r.fail(ctx, err, "Weather data unavailable!")
	}

	r.printReport(loc, current)
	r.printAlerts(weather.Alerts(current, r.opts.Thresholds))

	return true, nil
}

func (r *Reporter) printReport(loc domain.Location, w domain.CurrentWeather) {
	name := loc.Name
	if loc.Country != "" {
		name += ", " + loc.Country
	}

	r.printf("\n╔%s╗\n║     WEATHER UPDATE - %s\n╚%s╝\n", boxRule, name, boxRule)
	r.printf("🌡️  Temperature : %s°C\n", formatFloat(w.Temperature))
	r.printf("💨 Wind Speed  : %s km/h\n", formatFloat(w.WindSpeed))
	if w.Humidity != nil {
		r.printf("💧 Humidity    : %s%%\n", formatFloat(*w.Humidity))
	}
	r.printf("🌦️ Condition   : %s\n", weather.Condition(w.WeatherCode))
	r.printf("⏰ Time        : %s\n\n", r.now().Format(clockLayout))
}

func (r *Reporter) printAlerts(alerts []weather.Alert) {
	for _, a := range alerts {
		c := color.New(color.FgYellow)
		switch a.Kind {
		case weather.AlertHot:
			c = color.New(color.FgRed, color.Bold)
		case weather.AlertCold:
			c = color.New(color.FgCyan, color.Bold)
		case weather.AlertRain:
			c = color.New(color.FgBlue, color.Bold)
		}
		_, _ = c.Fprintln(r.out, a.Message)
	}
}

// fail prints the user facing message for err and returns err only when the
// run was cancelled.
func (r *Reporter) fail(ctx context.Context, err error, message string) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return err
	}

	logger.Warn(ctx, "weather lookup failed", zap.Error(err))
	switch serrors.KindOf(err) {
	case serrors.ErrTimeout, serrors.ErrUnavailable, serrors.ErrRateLimited, serrors.ErrUpstream:
		r.printf("❌ Network/API error: %v\n", err)
	}
	r.printf("❌ %s\n", message)

	return nil
}

func geocodeMessage(err error, city string) string {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return "City name cannot be empty!"
	default:
		return "Could not find city: " + strings.TrimSpace(city)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
