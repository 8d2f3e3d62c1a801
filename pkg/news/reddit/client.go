// Package reddit provides a news.Reddit backed by the public listing JSON of
// reddit.com.
package reddit

import (
	"context"
	"math"
	"net/url"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/domain"
	"pubapis/pkg/news"
	"pubapis/pkg/serrors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	// DefaultBaseURL is the reddit site root. Permalinks are relative to it.
	DefaultBaseURL = "https://www.reddit.com"

	noTitle       = "No title"
	unknownAuthor = "Unknown"
)

// Options configures the endpoint and request timeout.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// Client is safe for concurrent use. Reddit rejects anonymous requests
// without a User-Agent, which the apiclient.Client must provide.
type Client struct {
	api  *apiclient.Client
	opts Options
}

var _ news.Reddit = (*Client)(nil)

// New constructs a Client; an empty BaseURL falls back to DefaultBaseURL.
func New(api *apiclient.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")

	return &Client{api: api, opts: opts}
}

type listing struct {
	Data struct {
		Children []struct {
			Data post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type post struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	Score      int     `json:"score"`
	URL        string  `json:"url"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
	Stickied   bool    `json:"stickied"`
}

// Hot fetches /r/{subreddit}/hot.json.
func (c *Client) Hot(ctx context.Context, subreddit string, limit int) ([]domain.NewsItem, error) {
	subreddit = news.NormalizeSubreddit(subreddit)
	if subreddit == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "subreddit name cannot be empty")
	}
	if limit <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "limit must be positive, got %d", limit)
	}

	var l listing
	if err := c.api.GetJSON(ctx, apiclient.Request{
		API:     "reddit",
		URL:     c.opts.BaseURL + "/r/" + url.PathEscape(subreddit) + "/hot.json",
		Query:   url.Values{"limit": {strconv.Itoa(limit)}},
		Timeout: c.opts.Timeout,
	}, &l); err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, limit)
	for _, child := range l.Data.Children {
		p := child.Data
		if p.Stickied {
			continue
		}
		items = append(items, c.toItem(p))
		if len(items) >= limit {
			break
		}
	}

	return items, nil
}

func (c *Client) toItem(p post) domain.NewsItem {
	item := domain.NewsItem{
		ID:     p.ID,
		Title:  html.UnescapeString(p.Title),
		Author: p.Author,
		Score:  p.Score,
		URL:    p.URL,
	}
	if item.Title == "" {
		item.Title = noTitle
	}
	if item.Author == "" {
		item.Author = unknownAuthor
	}
	if p.Permalink != "" {
		item.CommentsURL = c.opts.BaseURL + p.Permalink
	}
	if item.URL == "" {
		item.URL = item.CommentsURL
	}
	if p.CreatedUTC > 0 {
		sec, frac := math.Modf(p.CreatedUTC)
		item.CreatedAt = time.Unix(int64(sec), int64(frac*1e9)).UTC()
	}

	return item
}
