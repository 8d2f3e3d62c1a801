// Package newsfeed prints Reddit and Hacker News listings and the source menu.
package newsfeed

import (
	"context"
	"fmt"
	"io"
	"pubapis/internal/prompt"
	"pubapis/pkg/domain"
	"pubapis/pkg/logger"
	"pubapis/pkg/news"
	"pubapis/pkg/textfmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const ruleWidth = 70

// Options holds the listing defaults.
type Options struct {
	// DefaultSubreddit is used for invalid menu choices.
	DefaultSubreddit string
	RedditLimit      int
	HackerNewsLimit  int
	// WaitForExit makes Menu wait for Enter before returning.
	WaitForExit bool
}

// Feed is not safe for concurrent use.
type Feed struct {
	reddit news.Reddit
	hn     news.HackerNews
	prompt *prompt.Prompter
	out    io.Writer
	opts   Options
	now    func() time.Time
}

// New constructs a Feed. Zero options fall back to r/worldnews, ten posts
// and fifteen stories.
func New(reddit news.Reddit, hn news.HackerNews, p *prompt.Prompter, out io.Writer, opts Options) *Feed {
	if opts.DefaultSubreddit == "" {
		opts.DefaultSubreddit = "worldnews"
	}
	if opts.RedditLimit <= 0 {
		opts.RedditLimit = 10
	}
	if opts.HackerNewsLimit <= 0 {
		opts.HackerNewsLimit = 15
	}

	return &Feed{reddit: reddit, hn: hn, prompt: p, out: out, opts: opts, now: time.Now}
}

// WithClock replaces the clock used for elapsed times.
func (f *Feed) WithClock(now func() time.Time) *Feed {
	f.now = now

	return f
}

// Reddit prints the hot posts of a subreddit. A zero limit uses the
// configured one. The fetch error is printed and returned.
func (f *Feed) Reddit(ctx context.Context, subreddit string, limit int) error {
	if limit <= 0 {
		limit = f.opts.RedditLimit
	}
	subreddit = news.NormalizeSubreddit(subreddit)

	f.printf("\n🌍 Fetching latest posts from r/%s...\n\n", subreddit)
	f.printf("%s\n", strings.Repeat("=", ruleWidth))

	posts, err := f.reddit.Hot(ctx, subreddit, limit)
	if err != nil {
		logger.Warn(ctx, "could not fetch reddit posts", zap.String("subreddit", subreddit), zap.Error(err))
		f.printf("❌ Error: %v\n", err)

		return err
	}
	if len(posts) == 0 {
		f.printf("No posts found!\n")

		return nil
	}

	now := f.now()
	for i, p := range posts {
		f.printf("\n📰 Post %d\n", i+1)
		f.printf("Title: %s\n", p.Title)
		f.printf("Posted: %s | Score: %d↑\n", textfmt.TimeAgo(now, p.CreatedAt), p.Score)
		f.printf("Link: %s\n", p.URL)
		f.printf("Comments: %s\n", p.CommentsURL)
		f.printf("%s\n", strings.Repeat("-", ruleWidth))
	}
	f.printf("\n✅ Successfully fetched %d current posts!\n", len(posts))

	return nil
}

// HackerNews prints the top n stories; zero uses the configured count.
// Stories fetched before a failure are still printed.
func (f *Feed) HackerNews(ctx context.Context, n int) error {
	if n <= 0 {
		n = f.opts.HackerNewsLimit
	}

	f.printf("\n💻 Fetching top stories from Hacker News...\n\n")
	f.printf("%s\n", strings.Repeat("=", ruleWidth))

	stories, err := f.hn.Top(ctx, n)
	f.printStories(stories)
	if err != nil {
		logger.Warn(ctx, "could not fetch hacker news stories", zap.Error(err))
		f.printf("❌ Error: %v\n", err)

		return err
	}
	f.printf("\n✅ Successfully fetched %d current stories!\n", len(stories))

	return nil
}

// printStories numbers stories by their rank on the front page, so a story
// that failed to load leaves a gap.
func (f *Feed) printStories(stories []domain.NewsItem) {
	now := f.now()
	for i, s := range stories {
		rank := s.Rank
		if rank == 0 {
			rank = i + 1
		}
		f.printf("\n📰 Story %d\n", rank)
		f.printf("Title: %s\n", s.Title)
		f.printf("Posted: %s | Score: %d↑ | By: %s\n", textfmt.TimeAgo(now, s.CreatedAt), s.Score, s.Author)
		f.printf("Link: %s\n", s.URL)
		f.printf("%s\n", strings.Repeat("-", ruleWidth))
	}
}

func (f *Feed) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(f.out, format, args...)
}
