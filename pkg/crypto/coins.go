package crypto

import (
	"math"
	"pubapis/pkg/domain"
	"strings"
)

// DefaultCoinIDs is the watch list of the price board.
var DefaultCoinIDs = []string{ //nolint: gochecknoglobals
	"bitcoin", "ethereum", "cardano", "solana", "dogecoin",
	"shiba-inu", "polygon", "ripple", "litecoin", "polkadot",
	"chainlink", "stellar", "tron", "avalanche-2", "uniswap",
}

// DefaultCurrencies are the quote currencies of the price board.
var DefaultCurrencies = []string{"usd", "inr"} //nolint: gochecknoglobals

// aliases maps common names and ticker symbols to provider ids.
var aliases = map[string]string{ //nolint: gochecknoglobals
	"btc":   "bitcoin",
	"eth":   "ethereum",
	"doge":  "dogecoin",
	"shib":  "shiba-inu",
	"shiba": "shiba-inu",
	"ada":   "cardano",
	"sol":   "solana",
	"xrp":   "ripple",
	"ltc":   "litecoin",
	"dot":   "polkadot",
	"link":  "chainlink",
	"xlm":   "stellar",
	"trx":   "tron",
	"avax":  "avalanche-2",
	"uni":   "uniswap",
}

// ResolveID returns the provider id for a coin name or symbol. Names that are
// not aliases are assumed to be ids already and are only lower-cased.
func ResolveID(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if id, ok := aliases[n]; ok {
		return id
	}

	return n
}

// PercentFromATH returns (current - ath) / ath * 100. It reports false when
// ath is not positive.
func PercentFromATH(current, ath float64) (float64, bool) {
	if ath <= 0 {
		return 0, false
	}

	return (current - ath) / ath * 100, true
}

// Mover is a coin whose 24h change crossed the alert threshold.
type Mover struct {
	ID     string
	Change float64
}

// Up reports whether the coin rose.
func (m Mover) Up() bool { return m.Change > 0 }

// Movers returns, in quote order, the coins whose 24h change in currency is
// strictly beyond ±threshold percent.
func Movers(quotes []domain.CoinQuote, currency string, threshold float64) []Mover {
	var out []Mover
	for _, q := range quotes {
		change, ok := q.Change24h[currency]
		if !ok {
			continue
		}
		if math.Abs(change) > threshold {
			out = append(out, Mover{ID: q.ID, Change: change})
		}
	}

	return out
}
