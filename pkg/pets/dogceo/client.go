// Package dogceo provides a pets.Client backed by the Dog CEO API for
// pictures and dogapi.dog for facts.
package dogceo

import (
	"context"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/pets"
	"pubapis/pkg/serrors"
	"time"
)

const (
	// DefaultImageURL is the Dog CEO random image endpoint.
	DefaultImageURL = "https://dog.ceo/api/breeds/image/random"
	// DefaultFactsURL is the dogapi.dog facts endpoint.
	DefaultFactsURL = "https://dogapi.dog/api/v2/facts"
)

// Options configures the endpoints and request timeout.
type Options struct {
	ImageURL string
	FactsURL string
	Timeout  time.Duration
}

// Client fetches dog pictures and facts. It is safe for concurrent use.
type Client struct {
	api  *apiclient.Client
	opts Options
}

var _ pets.Client = (*Client)(nil)

// New constructs a Client; empty endpoints fall back to the public defaults.
func New(api *apiclient.Client, opts Options) *Client {
	if opts.ImageURL == "" {
		opts.ImageURL = DefaultImageURL
	}
	if opts.FactsURL == "" {
		opts.FactsURL = DefaultFactsURL
	}

	return &Client{api: api, opts: opts}
}

// RandomImage returns the image URL carried in the "message" field.
func (c *Client) RandomImage(ctx context.Context) (string, error) {
	var res struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	if err := c.api.GetJSON(ctx, apiclient.Request{
		API:     "dogceo",
		URL:     c.opts.ImageURL,
		Timeout: c.opts.Timeout,
	}, &res); err != nil {
		return "", err
	}
	if res.Status != "" && res.Status != "success" {
		return "", serrors.With(serrors.ErrUpstream, "dog api answered with status %q", res.Status)
	}
	if res.Message == "" {
		return "", serrors.With(serrors.ErrNotFound, "dog api returned no image")
	}

	return res.Message, nil
}

// RandomFact returns the body of the first fact in the response.
func (c *Client) RandomFact(ctx context.Context) (string, error) {
	var res struct {
		Data []struct {
			ID         string `json:"id"`
			Type       string `json:"type"`
			Attributes struct {
				Body string `json:"body"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := c.api.GetJSON(ctx, apiclient.Request{
		API:     "dogfacts",
		URL:     c.opts.FactsURL,
		Timeout: c.opts.Timeout,
	}, &res); err != nil {
		return "", err
	}
	if len(res.Data) == 0 || res.Data[0].Attributes.Body == "" {
		return "", serrors.With(serrors.ErrNotFound, "dog facts api returned no fact")
	}

	return res.Data[0].Attributes.Body, nil
}
