package crypto_test

import (
	"pubapis/pkg/crypto"
	"pubapis/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveID(t *testing.T) {
	cases := map[string]string{
		"btc":       "bitcoin",
		"BTC":       "bitcoin",
		" eth ":     "ethereum",
		"shib":      "shiba-inu",
		"Shiba":     "shiba-inu",
		"sol":       "solana",
		"ada":       "cardano",
		"doge":      "dogecoin",
		"Bitcoin":   "bitcoin",
		"pepe":      "pepe",
		"Shiba-Inu": "shiba-inu",
	}
	for in, want := range cases {
		require.Equal(t, want, crypto.ResolveID(in), in)
	}
}

func TestPercentFromATH(t *testing.T) {
	p, ok := crypto.PercentFromATH(50, 100)
	require.True(t, ok)
	require.InDelta(t, -50, p, 1e-9)

	p, ok = crypto.PercentFromATH(100, 100)
	require.True(t, ok)
	require.InDelta(t, 0, p, 1e-9)

	_, ok = crypto.PercentFromATH(10, 0)
	require.False(t, ok)
}

func TestMovers(t *testing.T) {
	quotes := []domain.CoinQuote{
		{ID: "bitcoin", Change24h: map[string]float64{"usd": 2.5}},
		{ID: "dogecoin", Change24h: map[string]float64{"usd": 12.25}},
		{ID: "shiba-inu", Change24h: map[string]float64{"usd": -10.5}},
		{ID: "solana", Change24h: map[string]float64{"usd": 10}},
		{ID: "tron", Change24h: map[string]float64{"inr": 50}},
	}

	got := crypto.Movers(quotes, "usd", 10)
	require.Equal(t, []crypto.Mover{
		{ID: "dogecoin", Change: 12.25},
		{ID: "shiba-inu", Change: -10.5},
	}, got)
	require.True(t, got[0].Up())
	require.False(t, got[1].Up())

	require.Empty(t, crypto.Movers(quotes, "usd", 50))
}
