package newsfeed_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"pubapis/internal/newsfeed"
	"pubapis/internal/prompt"
	"pubapis/pkg/domain"
	mocknews "pubapis/pkg/news/mock"
	"pubapis/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	reddit *mocknews.MockReddit
	hn     *mocknews.MockHackerNews
	out    *bytes.Buffer
}

func newFeed(t *testing.T, input string) (*newsfeed.Feed, fixture) {
	t.Helper()

	return newFeedWith(t, input, newsfeed.Options{WaitForExit: true})
}

func newFeedWith(t *testing.T, input string, opts newsfeed.Options) (*newsfeed.Feed, fixture) {
	t.Helper()

	return newFeedFrom(t, strings.NewReader(input), opts)
}

func newFeedFrom(t *testing.T, in io.Reader, opts newsfeed.Options) (*newsfeed.Feed, fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		reddit: mocknews.NewMockReddit(ctrl),
		hn:     mocknews.NewMockHackerNews(ctrl),
		out:    &bytes.Buffer{},
	}
	feed := newsfeed.New(f.reddit, f.hn, prompt.New(in, f.out), f.out, opts)

	return feed.WithClock(func() time.Time { return fixedNow }), f
}

func posts() []domain.NewsItem {
	return []domain.NewsItem{
		{
			ID:          "abc",
			Title:       "Rock & Roll is back",
			Author:      "someone",
			Score:       1234,
			URL:         "https://example.test/article",
			CommentsURL: "https://www.reddit.com/r/worldnews/comments/abc/",
			CreatedAt:   fixedNow.Add(-3 * time.Hour),
		},
		{
			ID:          "def",
			Title:       "Second",
			Score:       5,
			URL:         "https://www.reddit.com/r/worldnews/comments/def/",
			CommentsURL: "https://www.reddit.com/r/worldnews/comments/def/",
			CreatedAt:   fixedNow.Add(-45 * time.Second),
		},
	}
}

func TestFeed_Reddit(t *testing.T) {
	feed, f := newFeed(t, "")
	f.reddit.EXPECT().Hot(gomock.Any(), "technology", 10).Return(posts(), nil)

	require.NoError(t, feed.Reddit(context.Background(), "r/technology", 0))

	out := f.out.String()
	require.Contains(t, out, "🌍 Fetching latest posts from r/technology...")
	require.Contains(t, out, "📰 Post 1\nTitle: Rock & Roll is back\nPosted: 3 hours ago | Score: 1234↑\n"+
		"Link: https://example.test/article\nComments: https://www.reddit.com/r/worldnews/comments/abc/\n"+
		strings.Repeat("-", 70))
	require.Contains(t, out, "📰 Post 2\nTitle: Second\nPosted: 45 seconds ago | Score: 5↑")
	require.Contains(t, out, "✅ Successfully fetched 2 current posts!")
}

func TestFeed_Reddit_empty(t *testing.T) {
	feed, f := newFeed(t, "")
	f.reddit.EXPECT().Hot(gomock.Any(), "quiet", 3).Return(nil, nil)

	require.NoError(t, feed.Reddit(context.Background(), "quiet", 3))
	require.Contains(t, f.out.String(), "No posts found!")
	require.NotContains(t, f.out.String(), "Successfully")
}

func TestFeed_Reddit_error(t *testing.T) {
	feed, f := newFeed(t, "")
	fetchErr := serrors.With(serrors.ErrNotFound, "reddit request failed")
	f.reddit.EXPECT().Hot(gomock.Any(), "nope", 10).Return(nil, fetchErr)

	err := feed.Reddit(context.Background(), "nope", 0)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Contains(t, f.out.String(), "❌ Error: reddit request failed")
}

func TestFeed_HackerNews(t *testing.T) {
	feed, f := newFeed(t, "")
	f.hn.EXPECT().Top(gomock.Any(), 15).Return([]domain.NewsItem{{
		ID:        "42",
		Title:     "Show HN: a thing",
		Author:    "pg",
		Score:     99,
		URL:       "https://news.ycombinator.com/item?id=42",
		CreatedAt: fixedNow.Add(-2 * 24 * time.Hour),
	}}, nil)

	require.NoError(t, feed.HackerNews(context.Background(), 0))

	out := f.out.String()
	require.Contains(t, out, "💻 Fetching top stories from Hacker News...")
	require.Contains(t, out, "📰 Story 1\nTitle: Show HN: a thing\nPosted: 2 days ago | Score: 99↑ | By: pg\n"+
		"Link: https://news.ycombinator.com/item?id=42\n")
	require.Contains(t, out, "✅ Successfully fetched 1 current stories!")
}

func TestFeed_HackerNews_rankGaps(t *testing.T) {
	feed, f := newFeed(t, "")
	f.hn.EXPECT().Top(gomock.Any(), 3).Return([]domain.NewsItem{
		{ID: "1", Title: "First", Rank: 1, CreatedAt: fixedNow},
		{ID: "3", Title: "Third", Rank: 3, CreatedAt: fixedNow},
	}, nil)

	require.NoError(t, feed.HackerNews(context.Background(), 3))

	out := f.out.String()
	require.Contains(t, out, "📰 Story 1\nTitle: First\n")
	require.Contains(t, out, "📰 Story 3\nTitle: Third\n")
	require.NotContains(t, out, "📰 Story 2\n")
	require.Contains(t, out, "✅ Successfully fetched 2 current stories!")
}

func TestFeed_HackerNews_partial(t *testing.T) {
	feed, f := newFeed(t, "")
	f.hn.EXPECT().Top(gomock.Any(), 5).
		Return([]domain.NewsItem{{ID: "1", Title: "Only one", CreatedAt: fixedNow}}, context.Canceled)

	err := feed.HackerNews(context.Background(), 5)
	require.ErrorIs(t, err, context.Canceled)
	require.Contains(t, f.out.String(), "Title: Only one")
	require.NotContains(t, f.out.String(), "Successfully")
}

func TestFeed_Menu(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect func(f fixture)
		want   string
	}{
		{
			name:  "science",
			input: "3\n\n",
			expect: func(f fixture) {
				f.reddit.EXPECT().Hot(gomock.Any(), "science", 10).Return(posts(), nil)
			},
			want: "r/science",
		},
		{
			name:  "hacker news",
			input: "5\n\n",
			expect: func(f fixture) {
				f.hn.EXPECT().Top(gomock.Any(), 15).Return(nil, nil)
			},
			want: "Hacker News...",
		},
		{
			name:  "custom",
			input: "6\n r/golang \n\n",
			expect: func(f fixture) {
				f.reddit.EXPECT().Hot(gomock.Any(), "golang", 10).Return(posts(), nil)
			},
			want: "r/golang",
		},
		{
			name:  "custom empty",
			input: "6\nr/\n\n",
			expect: func(f fixture) {
				f.reddit.EXPECT().Hot(gomock.Any(), "worldnews", 10).Return(posts(), nil)
			},
			want: "Subreddit name cannot be empty. Using r/worldnews",
		},
		{
			name:  "invalid",
			input: "9\n\n",
			expect: func(f fixture) {
				f.reddit.EXPECT().Hot(gomock.Any(), "worldnews", 10).Return(posts(), nil)
			},
			want: "Invalid choice. Using r/worldnews",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			feed, f := newFeed(t, tc.input)
			tc.expect(f)

			require.NoError(t, feed.Menu(context.Background()))

			out := f.out.String()
			require.Contains(t, out, "📱 CURRENT NEWS FETCHER")
			require.Contains(t, out, "  5. Hacker News (Tech/Startup news)")
			require.Contains(t, out, tc.want)
			require.True(t, strings.HasSuffix(out, "Press Enter to exit..."))
		})
	}
}

func TestFeed_Menu_fetchErrorAfterEnter(t *testing.T) {
	feed, f := newFeed(t, "1\n\n")
	f.reddit.EXPECT().Hot(gomock.Any(), "worldnews", 10).Return(nil, errors.New("boom"))

	require.EqualError(t, feed.Menu(context.Background()), "boom")
	require.Contains(t, f.out.String(), "Press Enter to exit...")
}

func TestFeed_Menu_canceled(t *testing.T) {
	feed, f := newFeed(t, "5\n")
	ctx, cancel := context.WithCancel(context.Background())
	f.hn.EXPECT().Top(gomock.Any(), 15).DoAndReturn(func(context.Context, int) ([]domain.NewsItem, error) {
		cancel()

		return nil, context.Canceled
	})

	require.NoError(t, feed.Menu(ctx))
	require.Contains(t, f.out.String(), "👋 Goodbye!")
	require.NotContains(t, f.out.String(), "Press Enter to exit...")
}

func TestFeed_Menu_interruptedAtChoice(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	feed, f := newFeedFrom(t, r, newsfeed.Options{WaitForExit: true})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() { done <- feed.Menu(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Menu kept waiting for a choice after the context was cancelled")
	}
	require.Contains(t, f.out.String(), "Enter choice (1-6): ")
	require.True(t, strings.HasSuffix(f.out.String(), "👋 Goodbye!\n"))
}

func TestFeed_Menu_interruptedAtExitPrompt(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	feed, f := newFeedFrom(t, r, newsfeed.Options{WaitForExit: true})
	f.reddit.EXPECT().Hot(gomock.Any(), "news", 10).Return(posts(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _, _ = io.WriteString(w, "4\n") }()

	done := make(chan error, 1)
	go func() { done <- feed.Menu(ctx) }()
	time.AfterFunc(50*time.Millisecond, cancel)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Menu kept waiting for Enter after the context was cancelled")
	}
	require.Contains(t, f.out.String(), "Press Enter to exit...")
	require.True(t, strings.HasSuffix(f.out.String(), "👋 Goodbye!\n"))
}

func TestFeed_Menu_noWait(t *testing.T) {
	feed, f := newFeedWith(t, "2\n", newsfeed.Options{RedditLimit: 3})
	f.reddit.EXPECT().Hot(gomock.Any(), "technology", 3).Return(posts(), nil)

	require.NoError(t, feed.Menu(context.Background()))
	require.NotContains(t, f.out.String(), "Press Enter to exit...")
}
