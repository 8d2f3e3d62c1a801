package cryptotracker

import (
	"context"
	"errors"
	"pubapis/pkg/crypto"
	"pubapis/pkg/logger"
	"pubapis/pkg/serrors"
	"pubapis/pkg/textfmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const coinBoxWidth = 50

// ShowCoin prints the detailed view of a coin given by id or ticker alias.
// The fetch error is printed and returned.
func (t *Tracker) ShowCoin(ctx context.Context, name string) error {
	t.printf("\n🔍 Fetching detailed info for %s...\n\n", name)

	id := crypto.ResolveID(name)
	detail, err := t.client.Coin(ctx, id)
	if err != nil {
		if isCanceled(ctx, err) {
			return err
		}
		logger.Warn(ctx, "could not fetch coin details", zap.String("coin", id), zap.Error(err))
		if errors.Is(err, serrors.ErrRateLimited) || errors.Is(err, serrors.ErrTimeout) {
			t.printf("❌ Error: %s\n", pricesErrorMessage(err))
		} else {
			t.printf("❌ Could not find crypto: %s\n", name)
		}

		return err
	}

	bar := strings.Repeat("═", coinBoxWidth)
	t.printf("╔%s╗\n", bar)
	t.printf("║%s║\n", textfmt.PadRight("  "+detail.Name+" ("+detail.Symbol+")", coinBoxWidth))
	t.printf("╚%s╝\n\n", bar)

	for i, cur := range t.opts.Currencies {
		p, ok := detail.CurrentPrice[cur]
		if !ok {
			continue
		}
		icon := "💰"
		if i == 0 {
			icon = "💵"
		}
		t.printf("%s Current Price (%s): %s\n", icon, strings.ToUpper(cur), formatPrice(cur, p))
	}

	primary := t.primary()
	ath, ok := detail.ATH[primary]
	if !ok {
		return nil
	}
	date := "unknown date"
	if d, ok := detail.ATHDate[primary]; ok {
		date = d.Format(time.DateOnly)
	}
	t.printf("🏆 All-Time High: %s (on %s)\n", formatPrice(primary, ath), date)
	if pct, ok := crypto.PercentFromATH(detail.CurrentPrice[primary], ath); ok {
		t.printf("📉 Down from ATH: %.2f%%\n", pct)
	}

	return nil
}
