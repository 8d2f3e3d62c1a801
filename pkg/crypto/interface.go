// Package crypto defines the market data source for coin quotes and details
// and the helpers that interpret them.
package crypto

import (
	"context"
	"pubapis/pkg/domain"
)

// Client fetches coin market data.
//
//go:generate mockgen -package mockcrypto -source=interface.go -destination=mock/mockcrypto.go *
type Client interface {
	// Prices returns one quote per known coin in ids, in the order the
	// provider lists them. Unknown ids are omitted.
	Prices(ctx context.Context, ids, vsCurrencies []string) ([]domain.CoinQuote, error)
	// Coin returns the details of a single coin by provider id.
	Coin(ctx context.Context, id string) (domain.CoinDetail, error)
}
