// Package news defines the Reddit and Hacker News listing sources.
package news

import (
	"context"
	"pubapis/pkg/domain"
	"strings"
)

// Reddit lists the hot posts of a subreddit.
//
//go:generate mockgen -package mocknews -source=interface.go -destination=mock/mocknews.go *
type Reddit interface {
	// Hot returns at most limit non-stickied posts of the subreddit. A subreddit
	// without posts yields an empty slice and no error.
	Hot(ctx context.Context, subreddit string, limit int) ([]domain.NewsItem, error)
}

// HackerNews lists the current top stories.
type HackerNews interface {
	// Top returns the first n top stories that could be fetched, in rank
	// order. Stories that fail to load are skipped.
	Top(ctx context.Context, n int) ([]domain.NewsItem, error)
}

// NormalizeSubreddit trims whitespace and an optional "r/" or "/r/" prefix.
func NormalizeSubreddit(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "/")
	if len(name) >= 2 && strings.EqualFold(name[:2], "r/") {
		name = name[2:]
	}

	return strings.Trim(name, "/ ")
}
