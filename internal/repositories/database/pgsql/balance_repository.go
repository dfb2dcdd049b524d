package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// balanceRepository applies single-statement increments. Concurrent
// adjustments are serialised by PostgreSQL row locks.
type balanceRepository struct {
	q querier
}

func (r *balanceRepository) AdjustAccount(ctx context.Context, accountID string, delta decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE accounts SET balance = balance + $2 WHERE account_id = $1;`, accountID, delta)
	if err != nil {
		return mapWriteError(err, "adjust account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s does not exist", apperrors.ErrConstraint, accountID)
	}
	return nil
}

func (r *balanceRepository) AdjustStock(ctx context.Context, itemID string, delta decimal.Decimal) (decimal.Decimal, error) {
	var qty decimal.Decimal
	err := r.q.QueryRow(ctx,
		`UPDATE items SET stock_quantity = stock_quantity + $2 WHERE item_id = $1 RETURNING stock_quantity;`,
		itemID, delta,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: item %s does not exist", apperrors.ErrConstraint, itemID)
		}
		return decimal.Zero, mapWriteError(err, "adjust stock of item "+itemID)
	}
	return qty, nil
}

func (r *balanceRepository) AdjustPartyBalance(ctx context.Context, partyID string, delta decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE parties SET balance = balance + $2 WHERE party_id = $1;`, partyID, delta)
	if err != nil {
		return mapWriteError(err, "adjust party "+partyID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: party %s does not exist", apperrors.ErrConstraint, partyID)
	}
	return nil
}
