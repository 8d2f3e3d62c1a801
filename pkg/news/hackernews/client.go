// Package hackernews provides a news.HackerNews backed by the Hacker News
// Firebase API.
package hackernews

import (
	"context"
	"errors"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/domain"
	"pubapis/pkg/logger"
	"pubapis/pkg/news"
	"pubapis/pkg/serrors"
	"strconv"
	"strings"
	"time"

	fxerrors "github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Firebase API root.
	DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"
	// ItemPageURL is the discussion page of a story, by id.
	ItemPageURL = "https://news.ycombinator.com/item?id="

	noTitle       = "No title"
	unknownAuthor = "Unknown"
)

// Options configures the endpoint and the timeouts of the top stories and
// the per-story requests.
type Options struct {
	BaseURL     string
	Timeout     time.Duration
	ItemTimeout time.Duration
}

// Client is safe for concurrent use.
type Client struct {
	api  *apiclient.Client
	opts Options
}

var _ news.HackerNews = (*Client)(nil)

// New constructs a Client; an empty BaseURL falls back to DefaultBaseURL.
func New(api *apiclient.Client, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")

	return &Client{api: api, opts: opts}
}

// Top fetches the top story ids and then each of the first n stories, one
// after another.
func (c *Client) Top(ctx context.Context, n int) ([]domain.NewsItem, error) {
	if n <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "story count must be positive, got %d", n)
	}

	ids, err := c.topIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) > n {
		ids = ids[:n]
	}

	items := make([]domain.NewsItem, 0, len(ids))
	for i, id := range ids {
		item, ok, err := c.item(ctx, id)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return items, err
			}
			logger.Warn(ctx, "skipping hacker news story", zap.Int64("id", id), zap.Error(err))

			continue
		}
		if ok {
			item.Rank = i + 1
			items = append(items, item)
		}
	}

	return items, nil
}

func (c *Client) topIDs(ctx context.Context) ([]int64, error) {
	b, err := c.api.Get(ctx, apiclient.Request{
		API:     "hackernews",
		URL:     c.opts.BaseURL + "/topstories.json",
		Timeout: c.opts.Timeout,
	})
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := jx.DecodeBytes(b).Arr(func(d *jx.Decoder) error {
		id, err := d.Int64()
		if err != nil {
			return fxerrors.Wrap(err, "story id")
		}
		ids = append(ids, id)

		return nil
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not decode hacker news top stories")
	}

	return ids, nil
}

// item returns false for deleted stories, which the API reports as null.
func (c *Client) item(ctx context.Context, id int64) (domain.NewsItem, bool, error) {
	b, err := c.api.Get(ctx, apiclient.Request{
		API:     "hackernews",
		URL:     c.opts.BaseURL + "/item/" + strconv.FormatInt(id, 10) + ".json",
		Timeout: c.opts.ItemTimeout,
	})
	if err != nil {
		return domain.NewsItem{}, false, err
	}

	d := jx.DecodeBytes(b)
	if d.Next() == jx.Null {
		return domain.NewsItem{}, false, nil
	}

	idStr := strconv.FormatInt(id, 10)
	item := domain.NewsItem{
		ID:          idStr,
		CommentsURL: ItemPageURL + idStr,
	}
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "title":
			return decodeString(d, &item.Title)
		case "by":
			return decodeString(d, &item.Author)
		case "url":
			return decodeString(d, &item.URL)
		case "score":
			v, err := d.Int()
			if err != nil {
				return fxerrors.Wrap(err, "score")
			}
			item.Score = v
		case "time":
			v, err := d.Int64()
			if err != nil {
				return fxerrors.Wrap(err, "time")
			}
			item.CreatedAt = time.Unix(v, 0).UTC()
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return domain.NewsItem{}, false, serrors.Wrap(serrors.ErrUpstream, err, "could not decode hacker news story %d", id)
	}

	if item.Title == "" {
		item.Title = noTitle
	}
	if item.Author == "" {
		item.Author = unknownAuthor
	}
	if item.URL == "" {
		item.URL = item.CommentsURL
	}

	return item, true, nil
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
