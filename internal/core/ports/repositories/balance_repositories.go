package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceStore applies atomic increments to the running balances.
// An unknown id must be reported as apperrors.ErrConstraint.
type BalanceStore interface {
	// AdjustAccount adds delta to the account balance.
	AdjustAccount(ctx context.Context, accountID string, delta decimal.Decimal) error

	// AdjustStock adds delta to the item stock quantity and returns the new quantity.
	AdjustStock(ctx context.Context, itemID string, delta decimal.Decimal) (decimal.Decimal, error)

	// AdjustPartyBalance adds delta to the party balance. The sign is decided
	// by the caller through accounting.PartyDelta.
	AdjustPartyBalance(ctx context.Context, partyID string, delta decimal.Decimal) error
}
