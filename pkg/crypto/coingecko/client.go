// Package coingecko provides a crypto.Client backed by the public CoinGecko
// API. Responses are decoded with jx so the provider's key order survives.
package coingecko

import (
	"context"
	"net/url"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/crypto"
	"pubapis/pkg/domain"
	"pubapis/pkg/serrors"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DefaultBaseURL is the CoinGecko v3 API root.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

const (
	changeSuffix    = "_24h_change"
	marketCapSuffix = "_market_cap"
)

// Options configures the endpoint and request timeout.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// Client is safe for concurrent use.
type Client struct {
	api  *apiclient.Client
	opts Options
}

var _ crypto.Client = (*Client)(nil)

// New constructs a Client; an empty BaseURL falls back to DefaultBaseURL.
func New(api *apiclient.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")

	return &Client{api: api, opts: opts}
}

// Prices calls /simple/price with 24h change and market cap included.
func (c *Client) Prices(ctx context.Context, ids, vsCurrencies []string) ([]domain.CoinQuote, error) {
	if len(ids) == 0 || len(vsCurrencies) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "at least one coin and one currency are required")
	}

	b, err := c.api.Get(ctx, apiclient.Request{
		API: "coingecko",
		URL: c.opts.BaseURL + "/simple/price",
		Query: url.Values{
			"ids":                 {strings.Join(ids, ",")},
			"vs_currencies":       {strings.Join(vsCurrencies, ",")},
			"include_24hr_change": {"true"},
			"include_market_cap":  {"true"},
		},
		Timeout: c.opts.Timeout,
	})
	if err != nil {
		return nil, err
	}

	quotes, err := decodePrices(jx.DecodeBytes(b))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not decode coingecko prices")
	}
	if len(quotes) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "no prices returned for %s", strings.Join(ids, ","))
	}

	return quotes, nil
}

func decodePrices(d *jx.Decoder) ([]domain.CoinQuote, error) {
	var quotes []domain.CoinQuote
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		q := domain.CoinQuote{
			ID:        string(key),
			Prices:    map[string]float64{},
			Change24h: map[string]float64{},
			MarketCap: map[string]float64{},
		}
		if err := d.ObjBytes(func(d *jx.Decoder, field []byte) error {
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Float64()
			if err != nil {
				return errors.Wrapf(err, "%s.%s", q.ID, field)
			}

			name := string(field)
			switch {
			case strings.HasSuffix(name, changeSuffix):
				q.Change24h[strings.TrimSuffix(name, changeSuffix)] = v
			case strings.HasSuffix(name, marketCapSuffix):
				q.MarketCap[strings.TrimSuffix(name, marketCapSuffix)] = v
			default:
				q.Prices[name] = v
			}

			return nil
		}); err != nil {
			return errors.Wrap(err, "coin")
		}
		quotes = append(quotes, q)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return quotes, nil
}

// Coin calls /coins/{id} without tickers, community or developer data.
func (c *Client) Coin(ctx context.Context, id string) (domain.CoinDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.CoinDetail{}, serrors.With(serrors.ErrBadRequest, "coin id cannot be empty")
	}

	b, err := c.api.Get(ctx, apiclient.Request{
		API: "coingecko",
		URL: c.opts.BaseURL + "/coins/" + url.PathEscape(id),
		Query: url.Values{
			"localization":   {"false"},
			"tickers":        {"false"},
			"community_data": {"false"},
			"developer_data": {"false"},
		},
		Timeout: c.opts.Timeout,
	})
	if err != nil {
		return domain.CoinDetail{}, err
	}

	detail, err := decodeCoin(jx.DecodeBytes(b))
	if err != nil {
		return domain.CoinDetail{}, serrors.Wrap(serrors.ErrUpstream, err, "could not decode coingecko coin %s", id)
	}
	if detail.ID == "" {
		detail.ID = id
	}

	return detail, nil
}

func decodeCoin(d *jx.Decoder) (domain.CoinDetail, error) {
	detail := domain.CoinDetail{
		CurrentPrice: map[string]float64{},
		ATH:          map[string]float64{},
		ATHDate:      map[string]time.Time{},
	}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "id":
			return decodeString(d, &detail.ID)
		case "name":
			return decodeString(d, &detail.Name)
		case "symbol":
			var s string
			if err := decodeString(d, &s); err != nil {
				return err
			}
			detail.Symbol = strings.ToUpper(s)

			return nil
		case "market_data":
			if err := decodeMarketData(d, &detail); err != nil {
				return errors.Wrap(err, "market_data")
			}

			return nil
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return domain.CoinDetail{}, err
	}

	return detail, nil
}

func decodeMarketData(d *jx.Decoder, detail *domain.CoinDetail) error {
	if d.Next() == jx.Null {
		return d.Null()
	}

	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "current_price":
			return decodeFloats(d, detail.CurrentPrice)
		case "ath":
			return decodeFloats(d, detail.ATH)
		case "ath_date":
			return decodeDates(d, detail.ATHDate)
		default:
			return d.Skip()
		}
	})
}

func decodeString(d *jx.Decoder, dst *string) error {
	if d.Next() == jx.Null {
		return d.Null()
	}
	s, err := d.Str()
	if err != nil {
		return err
	}
	*dst = s

	return nil
}

// decodeFloats reads an object of currency -> number, skipping nulls.
func decodeFloats(d *jx.Decoder, dst map[string]float64) error {
	if d.Next() == jx.Null {
		return d.Null()
	}

	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if d.Next() == jx.Null {
			return d.Null()
		}
		v, err := d.Float64()
		if err != nil {
			return errors.Wrapf(err, "%s", key)
		}
		dst[string(key)] = v

		return nil
	})
}

// decodeDates reads an object of currency -> timestamp. Values that are not
// RFC 3339 fall back to their leading YYYY-MM-DD.
func decodeDates(d *jx.Decoder, dst map[string]time.Time) error {
	if d.Next() == jx.Null {
		return d.Null()
	}

	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var s string
		if err := decodeString(d, &s); err != nil {
			return errors.Wrapf(err, "%s", key)
		}
		if t, ok := parseDate(s); ok {
			dst[string(key)] = t
		}

		return nil
	})
}

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if len(s) >= len(time.DateOnly) {
		if t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)]); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
