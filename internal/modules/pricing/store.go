// README: Rate store backed by PostgreSQL.
package pricing

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRate means the category has no rate row; callers fall back to DefaultRate.
var ErrNoRate = errors.New("no rate for item category")

// RateSource resolves the rate for an item category.
type RateSource interface {
	GetRate(ctx context.Context, itemCategoryID string) (Rate, error)
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var _ RateSource = (*Store)(nil)

func (s *Store) GetRate(ctx context.Context, itemCategoryID string) (Rate, error) {
	row := s.db.QueryRow(ctx, `
		SELECT item_category_id, base_fare, per_km, currency
		FROM rates
		WHERE item_category_id = $1`, itemCategoryID,
	)
	var r Rate
	err := row.Scan(&r.ItemCategoryID, &r.BaseFare, &r.PerKm, &r.Currency)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return Rate{}, ErrNoRate
	}
	if err != nil {
		return Rate{}, err
	}
	return r, nil
}
