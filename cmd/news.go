package main

import (
	"os"
	"pubapis/internal/newsfeed"
	"pubapis/internal/prompt"
	"pubapis/pkg/news/hackernews"
	"pubapis/pkg/news/reddit"

	"github.com/spf13/cobra"
)

func (a *app) newFeed(cmd *cobra.Command) (*newsfeed.Feed, error) {
	api, err := a.apiClient(nil)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()

	return newsfeed.New(
		reddit.New(api, reddit.Options{
			BaseURL: a.cfg.APIs.Reddit.BaseURL,
			Timeout: a.cfg.APIs.Reddit.Timeout,
		}),
		hackernews.New(api, hackernews.Options{
			BaseURL:     a.cfg.APIs.HackerNews.BaseURL,
			Timeout:     a.cfg.APIs.HackerNews.Timeout,
			ItemTimeout: a.cfg.APIs.HackerNews.ItemTimeout,
		}),
		prompt.New(os.Stdin, out),
		out,
		newsfeed.Options{
			DefaultSubreddit: a.cfg.News.DefaultSubreddit,
			RedditLimit:      a.cfg.News.RedditLimit,
			HackerNewsLimit:  a.cfg.News.HackerNewsLimit,
			WaitForExit:      a.interactive,
		}), nil
}

func (a *app) newsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Current posts from Reddit and Hacker News",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			feed, err := a.newFeed(cmd)
			if err != nil {
				return err
			}

			return reported(feed.Menu(cmd.Context()))
		},
	}
	cmd.AddCommand(a.newsRedditCommand(), a.newsHackerNewsCommand())

	return cmd
}

func (a *app) newsRedditCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "reddit [subreddit]",
		Short: "Hot posts of a subreddit (defaults to news.defaultSubreddit)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, err := a.newFeed(cmd)
			if err != nil {
				return err
			}
			subreddit := a.cfg.News.DefaultSubreddit
			if len(args) == 1 {
				subreddit = args[0]
			}

			return reported(feed.Reddit(cmd.Context(), subreddit, limit))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of posts (defaults to news.redditLimit)")

	return cmd
}

func (a *app) newsHackerNewsCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "hn",
		Aliases: []string{"hackernews"},
		Short:   "Top Hacker News stories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			feed, err := a.newFeed(cmd)
			if err != nil {
				return err
			}

			return reported(feed.HackerNews(cmd.Context(), limit))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of stories (defaults to news.hackerNewsLimit)")

	return cmd
}
