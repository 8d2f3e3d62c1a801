// Package thecatapi provides a pets.Client backed by The Cat API for pictures
// and catfact.ninja for facts. Neither needs an API key.
package thecatapi

import (
	"context"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/pets"
	"pubapis/pkg/serrors"
	"time"
)

const (
	// DefaultImagesURL is The Cat API random image search endpoint.
	DefaultImagesURL = "https://api.thecatapi.com/v1/images/search"
	// DefaultFactURL is the catfact.ninja random fact endpoint.
	DefaultFactURL = "https://catfact.ninja/fact"
)

// Options configures the endpoints and request timeout.
type Options struct {
	ImagesURL string
	FactURL   string
	Timeout   time.Duration
}

// Client fetches cat pictures and facts. It is safe for concurrent use.
type Client struct {
	api  *apiclient.Client
	opts Options
}

// Ensure Client conforms to the pets.Client interface at compile time.
var _ pets.Client = (*Client)(nil)

// New constructs a Client; empty endpoints fall back to the public defaults.
func New(api *apiclient.Client, opts Options) *Client {
	if opts.ImagesURL == "" {
		opts.ImagesURL = DefaultImagesURL
	}
	if opts.FactURL == "" {
		opts.FactURL = DefaultFactURL
	}

	return &Client{api: api, opts: opts}
}

// RandomImage returns the URL of the first search result.
func (c *Client) RandomImage(ctx context.Context) (string, error) {
	var images []struct {
		ID     string `json:"id"`
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	if err := c.api.GetJSON(ctx, apiclient.Request{
		API:     "thecatapi",
		URL:     c.opts.ImagesURL,
		Timeout: c.opts.Timeout,
	}, &images); err != nil {
		return "", err
	}
	if len(images) == 0 || images[0].URL == "" {
		return "", serrors.With(serrors.ErrNotFound, "cat api returned no images")
	}

	return images[0].URL, nil
}

// RandomFact returns a random cat fact.
func (c *Client) RandomFact(ctx context.Context) (string, error) {
	var fact struct {
		Fact   string `json:"fact"`
		Length int    `json:"length"`
	}
	if err := c.api.GetJSON(ctx, apiclient.Request{
		API:     "catfact",
		URL:     c.opts.FactURL,
		Timeout: c.opts.Timeout,
	}, &fact); err != nil {
		return "", err
	}
	if fact.Fact == "" {
		return "", serrors.With(serrors.ErrNotFound, "cat facts api returned no fact")
	}

	return fact.Fact, nil
}
