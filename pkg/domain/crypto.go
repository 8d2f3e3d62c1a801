package domain

import (
	"time"

	"github.com/google/uuid"
)

// CoinQuote is the market snapshot of one coin in one or more fiat currencies.
// Maps are keyed by lower-case currency code ("usd", "inr").
type CoinQuote struct {
	// ID is the provider coin identifier, e.g. "shiba-inu".
	ID        string
	Prices    map[string]float64
	Change24h map[string]float64
	MarketCap map[string]float64
}

// CoinDetail is the detailed view of a single coin.
type CoinDetail struct {
	ID     string
	Name   string
	Symbol string
	// CurrentPrice, ATH and ATHDate are keyed by lower-case currency code.
	CurrentPrice map[string]float64
	ATH          map[string]float64
	ATHDate      map[string]time.Time
}

// PriceSnapshotID uniquely identifies a stored price snapshot.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PriceSnapshotID uuid.UUID

// PriceSnapshot is one recorded price of a coin in one currency.
type PriceSnapshot struct {
	ID         PriceSnapshotID
	CoinID     string
	Currency   string
	Price      float64
	Change24h  float64
	MarketCap  float64
	RecordedAt time.Time
}
