package postgres

import (
	"pubapis/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgPriceSnapshot is the row layout of the price_snapshots table.
type PgPriceSnapshot struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	CoinID   string `db:"coin_id"`
	Currency string `db:"currency"`

	Price     float64 `db:"price"`
	Change24h float64 `db:"change_24h"`
	MarketCap float64 `db:"market_cap"`

	RecordedAt time.Time `db:"recorded_at"`
	CreatedAt  time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPriceSnapshot) ToDomain() domain.PriceSnapshot {
	return domain.PriceSnapshot{
		ID:         domain.PriceSnapshotID(p.ID),
		CoinID:     p.CoinID,
		Currency:   p.Currency,
		Price:      p.Price,
		Change24h:  p.Change24h,
		MarketCap:  p.MarketCap,
		RecordedAt: p.RecordedAt,
	}
}

func (p *PgPriceSnapshot) FromDomain(s domain.PriceSnapshot) {
	*p = PgPriceSnapshot{
		ID:         uuid.UUID(s.ID),
		CoinID:     s.CoinID,
		Currency:   s.Currency,
		Price:      s.Price,
		Change24h:  s.Change24h,
		MarketCap:  s.MarketCap,
		RecordedAt: s.RecordedAt.UTC(),
	}
}

func domainSnapshotsToPg(snapshots []domain.PriceSnapshot) []PgPriceSnapshot {
	out := make([]PgPriceSnapshot, len(snapshots))
	for i := range out {
		out[i].FromDomain(snapshots[i])
	}

	return out
}

func pgSnapshotsToDomain(rows []PgPriceSnapshot) []domain.PriceSnapshot {
	out := make([]domain.PriceSnapshot, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
