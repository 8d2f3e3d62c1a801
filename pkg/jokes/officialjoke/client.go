// Package officialjoke provides a jokes.Client backed by the Official Joke API.
package officialjoke

import (
	"context"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/domain"
	"pubapis/pkg/jokes"
	"pubapis/pkg/serrors"
	"time"
)

// DefaultURL is the random joke endpoint.
const DefaultURL = "https://official-joke-api.appspot.com/random_joke"

// Options configures the endpoint and request timeout.
type Options struct {
	URL     string
	Timeout time.Duration
}

// Client is safe for concurrent use.
type Client struct {
	api  *apiclient.Client
	opts Options
}

var _ jokes.Client = (*Client)(nil)

// New constructs a Client; an empty URL falls back to DefaultURL.
func New(api *apiclient.Client, opts Options) *Client {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}

	return &Client{api: api, opts: opts}
}

// Random fetches one joke. A joke without a setup or punchline is reported as
// serrors.ErrUpstream.
func (c *Client) Random(ctx context.Context) (domain.Joke, error) {
	var j struct {
		ID        int    `json:"id"`
		Type      string `json:"type"`
		Setup     string `json:"setup"`
		Punchline string `json:"punchline"`
	}
	if err := c.api.GetJSON(ctx, apiclient.Request{
		API:     "officialjoke",
		URL:     c.opts.URL,
		Timeout: c.opts.Timeout,
	}, &j); err != nil {
		return domain.Joke{}, err
	}
	if j.Setup == "" || j.Punchline == "" {
		return domain.Joke{}, serrors.With(serrors.ErrUpstream, "joke api returned an incomplete joke")
	}

	return domain.Joke{ID: j.ID, Type: j.Type, Setup: j.Setup, Punchline: j.Punchline}, nil
}
