// Package jokes defines the random joke source.
package jokes

import (
	"context"
	"pubapis/pkg/domain"
)

// Client returns random two-part jokes.
//
//go:generate mockgen -package mockjokes -source=interface.go -destination=mock/mockjokes.go *
type Client interface {
	Random(ctx context.Context) (domain.Joke, error)
}
