package domain

import "time"

// NewsItem is a single post or story from a news source.
type NewsItem struct {
	// ID is the source-specific identifier.
	ID     string
	Title  string
	Author string
	Score  int
	// URL is the linked article (or the discussion page when there is none).
	URL string
	// CommentsURL points to the discussion page; empty when the source has none.
	CommentsURL string
	CreatedAt   time.Time
	// Rank is the 1-based position in the source listing. Items that could
	// not be loaded keep their rank, so ranks may have gaps. Zero means the
	// source does not rank its items.
	Rank int
}
