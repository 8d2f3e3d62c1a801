package news_test

import (
	"pubapis/pkg/news"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSubreddit(t *testing.T) {
	cases := map[string]string{
		"worldnews":      "worldnews",
		"  golang ":      "golang",
		"r/science":      "science",
		"/r/technology/": "technology",
		"R/news":         "news",
		"":               "",
		"r/":             "",
	}
	for in, want := range cases {
		require.Equal(t, want, news.NormalizeSubreddit(in), in)
	}
}
