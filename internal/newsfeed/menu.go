package newsfeed

import (
	"context"
	"pubapis/pkg/news"
	"strings"
)

type source struct {
	label     string
	subreddit string
}

var menu = []source{ //nolint: gochecknoglobals
	{label: "Reddit World News (r/worldnews)", subreddit: "worldnews"},
	{label: "Reddit Technology (r/technology)", subreddit: "technology"},
	{label: "Reddit Science (r/science)", subreddit: "science"},
	{label: "Reddit General News (r/news)", subreddit: "news"},
	{label: "Hacker News (Tech/Startup news)"},
	{label: "Custom Reddit subreddit"},
}

const (
	choiceHackerNews = "5"
	choiceCustom     = "6"
)

// Menu asks for a news source and prints its listing, then waits for Enter
// when WaitForExit is set. Invalid choices fall back to the default
// subreddit.
func (f *Feed) Menu(ctx context.Context) error {
	f.printf("\n%s\n📱 CURRENT NEWS FETCHER\n%s\n", strings.Repeat("=", ruleWidth), strings.Repeat("=", ruleWidth))
	f.printf("\nChoose your news source:\n")
	for i, s := range menu {
		f.printf("  %d. %s\n", i+1, s.label)
	}

	choice, err := f.prompt.Ask(ctx, "\nEnter choice (1-6): ")
	if err != nil {
		return f.goodbye(ctx, err)
	}

	fetchErr := f.dispatch(ctx, choice)
	if ctx.Err() != nil {
		return f.goodbye(ctx, ctx.Err())
	}
	if f.opts.WaitForExit {
		if err := f.prompt.WaitEnter(ctx, "\nPress Enter to exit..."); err != nil {
			return f.goodbye(ctx, err)
		}
	}

	return fetchErr
}

// goodbye turns an interrupt into a clean exit. Other errors pass through.
func (f *Feed) goodbye(ctx context.Context, err error) error {
	if ctx.Err() == nil {
		return err
	}
	f.printf("\n\n👋 Goodbye!\n")

	return nil
}

func (f *Feed) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1", "2", "3", "4":
		return f.Reddit(ctx, menu[choice[0]-'1'].subreddit, 0)
	case choiceHackerNews:
		return f.HackerNews(ctx, 0)
	case choiceCustom:
		name, err := f.prompt.Ask(ctx, "Enter subreddit name (without r/): ")
		if err != nil {
			return err
		}
		if name = news.NormalizeSubreddit(name); name == "" {
			f.printf("Subreddit name cannot be empty. Using r/%s\n", f.opts.DefaultSubreddit)
			name = f.opts.DefaultSubreddit
		}

		return f.Reddit(ctx, name, 0)
	default:
		f.printf("Invalid choice. Using r/%s\n", f.opts.DefaultSubreddit)

		return f.Reddit(ctx, f.opts.DefaultSubreddit, 0)
	}
}
