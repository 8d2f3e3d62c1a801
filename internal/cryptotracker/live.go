package cryptotracker

import (
	"context"
	"errors"
	"pubapis/pkg/apiclient"
	"pubapis/pkg/logger"
	"pubapis/pkg/serrors"
	"strings"

	"go.uber.org/zap"
)

// Track refreshes the board every Interval until ctx is canceled, optionally
// recording each refresh. Rate limited refreshes wait for the server
// provided Retry-After when it is longer than the interval. Fetch failures
// never stop the loop; a canceled context ends it with a nil error.
func (t *Tracker) Track(ctx context.Context) error {
	secs := int(t.opts.Interval.Seconds())
	t.printf("\n🔴 LIVE TRACKER MODE\n")
	t.printf("Updating every %d seconds...\n", secs)
	t.printf("Press Ctrl+C to stop\n\n")
	if t.opts.Interval < MinRecommendedInterval {
		t.printf("⚠️  Refreshing more often than every %d seconds will likely hit the rate limit.\n\n",
			int(MinRecommendedInterval.Seconds()))
	}

	for {
		wait := t.opts.Interval

		quotes, err := t.Board(ctx)
		switch {
		case err == nil:
			if t.opts.Record {
				if err := t.Record(ctx, quotes); err != nil {
					if isCanceled(ctx, err) {
						return t.stopped()
					}
					logger.Error(ctx, "could not record prices", zap.Error(err))
					t.printf("❌ Could not record prices: %v\n", err)
				}
			}
		case isCanceled(ctx, err):
			return t.stopped()
		case errors.Is(err, serrors.ErrRateLimited):
			if d, ok := apiclient.RetryAfter(err); ok && d > wait {
				wait = d
			}
		}

		t.printf("\n⏳ Refreshing in %d seconds...\n", int(wait.Seconds()))
		if err := t.sleep(ctx, wait); err != nil {
			return t.stopped()
		}
		t.printf("\n%s\n\n", strings.Repeat("=", boardWidth))
	}
}

func (t *Tracker) stopped() error {
	t.printf("\n\n✋ Tracker stopped by user. Goodbye!\n")

	return nil
}
