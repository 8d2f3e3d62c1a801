package cryptotracker

import (
	"context"
	"errors"
	"math"
	"pubapis/pkg/crypto"
	"pubapis/pkg/domain"
	"pubapis/pkg/logger"
	"pubapis/pkg/serrors"
	"pubapis/pkg/textfmt"
	"strings"

	"github.com/fatih/color"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	boardWidth = 70
	// updatedLayout renders the board time, e.g. 03:04:05 PM, 02 Jan 2006.
	updatedLayout = "03:04:05 PM, 02 Jan 2006"
)

// Banner prints the program banner.
func (t *Tracker) Banner() {
	rule := strings.Repeat("=", boardWidth)
	t.printf("%s\n%s\n%s\n%s\n\n", rule,
		strings.TrimRight(textfmt.Center("  CRYPTOCURRENCY PRICE TRACKER", boardWidth), " "),
		strings.TrimRight(textfmt.Center("  (Powered by CoinGecko API - 100% Free!)", boardWidth), " "),
		rule)
}

// Board fetches the watch list and prints the price board followed by the
// alerts. The fetch error is printed and returned.
func (t *Tracker) Board(ctx context.Context) ([]domain.CoinQuote, error) {
	t.printf("💰 Fetching live crypto prices...\n⏳ Please wait...\n\n")

	quotes, err := t.client.Prices(ctx, t.opts.Coins, t.opts.Currencies)
	if err != nil {
		if isCanceled(ctx, err) {
			return nil, err
		}
		logger.Warn(ctx, "could not fetch crypto prices", zap.Error(err))
		t.printf("❌ Error: %s\n", pricesErrorMessage(err))

		return nil, err
	}

	t.observe(ctx, quotes)
	t.printBoard(quotes)

	return quotes, nil
}

func (t *Tracker) printBoard(quotes []domain.CoinQuote) {
	bar := strings.Repeat("═", boardWidth)
	t.printf("╔%s╗\n", bar)
	t.printf("║%s║\n", textfmt.Center("  LIVE CRYPTOCURRENCY PRICES", boardWidth))
	t.printf("║%s║\n", textfmt.Center("  Updated: "+t.now().Format(updatedLayout), boardWidth))
	t.printf("╚%s╝\n\n", bar)

	primary := t.primary()
	for _, q := range quotes {
		t.printf("━━━ %s ━━━\n", textfmt.Title(q.ID))
		for i, cur := range t.opts.Currencies {
			p, ok := q.Prices[cur]
			if !ok {
				continue
			}
			icon := "💰"
			if i == 0 {
				icon = "💵"
			}
			t.printf("  %s %s: %s\n", icon, strings.ToUpper(cur), formatPrice(cur, p))
		}
		change := q.Change24h[primary]
		trendColor(change).Fprintf(t.out, "  %s 24h Change: %s\n", trend(change), textfmt.SignedPercent(change)) //nolint: errcheck
		if mc, ok := q.MarketCap[primary]; ok {
			t.printf("  📊 Market Cap: %s\n", textfmt.CompactMoney(primary, mc))
		}
		t.printf("\n")
	}

	t.printf("🚨 ALERTS:\n")
	for _, m := range crypto.Movers(quotes, primary, t.opts.AlertThreshold) {
		if m.Up() {
			color.New(color.FgGreen, color.Bold).Fprintf(t.out, "   🚀 %s is UP %.2f%% today!\n", textfmt.Title(m.ID), m.Change) //nolint: errcheck
		} else {
			color.New(color.FgRed, color.Bold).Fprintf(t.out, "   📉 %s is DOWN %.2f%% today!\n", textfmt.Title(m.ID), m.Change) //nolint: errcheck
		}
	}
}

// Tips prints what the user can do next.
func (t *Tracker) Tips() {
	t.printf("\n%s\n", strings.Repeat("=", boardWidth))
	t.printf("\n💡 WHAT YOU CAN DO:\n")
	t.printf("   • This uses CoinGecko's FREE public API\n")
	t.printf("   • NO web scraping - official API endpoint\n")
	t.printf("   • NO API key needed for basic use\n")
	t.printf("   • Updates are real-time!\n\n")
	t.printf("🎯 NEXT STEPS:\n")
	t.printf("   1. Run `pubapis crypto coin bitcoin` for detailed Bitcoin info\n")
	t.printf("   2. Track your favorite coins by editing crypto.coins in the config\n")
	t.printf("   3. Tune crypto.alertThreshold to change when alerts fire\n")
	t.printf("   4. Save price history with `pubapis crypto track --record`\n")
	t.printf("   5. Run `pubapis crypto track` for auto-refresh mode\n\n")
}

func (t *Tracker) observe(ctx context.Context, quotes []domain.CoinQuote) {
	for _, q := range quotes {
		for cur, p := range q.Prices {
			attrs := metric.WithAttributes(attribute.String("coin", q.ID), attribute.String("currency", cur))
			t.price.Record(ctx, p, attrs)
			if c, ok := q.Change24h[cur]; ok {
				t.change.Record(ctx, c, attrs)
			}
		}
	}
}

func trend(change float64) string {
	if change > 0 {
		return "🟢 ↗"
	}

	return "🔴 ↘"
}

func trendColor(change float64) *color.Color {
	if change > 0 {
		return color.New(color.FgGreen)
	}

	return color.New(color.FgRed)
}

// formatPrice keeps two decimals for prices from one unit up and shows
// eight for sub-unit coins.
func formatPrice(currency string, v float64) string {
	if v != 0 && math.Abs(v) < 1 {
		return textfmt.CurrencySymbol(currency) + textfmt.Grouped(v, 8)
	}

	return textfmt.Money(currency, v)
}

func pricesErrorMessage(err error) string {
	switch {
	case errors.Is(err, serrors.ErrRateLimited):
		return "Too many requests. Wait a minute and try again."
	case errors.Is(err, serrors.ErrTimeout):
		return "Request timed out. Check your internet connection."
	default:
		return "Could not fetch data (" + err.Error() + ")"
	}
}
