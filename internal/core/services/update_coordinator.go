package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
)

// UpdateCoordinator replaces a posted transaction by reversing it and
// posting the new version in the same unit of work. If the post fails the
// reversal is rolled back with it.
type UpdateCoordinator struct {
	BaseService
	uow      portsrepo.UnitOfWork
	poster   *LedgerPoster
	reverser *LedgerReverser
	guard    stockGuard
}

// NewUpdateCoordinator creates an UpdateCoordinator.
func NewUpdateCoordinator(uow portsrepo.UnitOfWork, poster *LedgerPoster, reverser *LedgerReverser, policy domain.StockPolicy) *UpdateCoordinator {
	return &UpdateCoordinator{
		uow:      uow,
		poster:   poster,
		reverser: reverser,
		guard:    stockGuard{policy: policy},
	}
}

// Update reverses transactionID and posts txn, returning the new id.
func (c *UpdateCoordinator) Update(ctx context.Context, transactionID string, txn domain.Transaction) (string, error) {
	if err := ValidateTransaction(txn); err != nil {
		c.LogWarn(ctx, "Rejected replacement transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return "", err
	}

	var newID string
	err := c.uow.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		unit := newLedgerUnit(store)
		if err := c.reverser.reverse(ctx, unit, transactionID); err != nil {
			return err
		}
		var err error
		if newID, err = c.poster.post(ctx, unit, txn); err != nil {
			return err
		}
		return c.guard.check(ctx, "update", unit)
	})
	if err != nil {
		err = asPostingFailure("update", err)
		c.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return "", err
	}

	c.LogInfo(ctx, "Transaction replaced", slog.String("old_transaction_id", transactionID), slog.String("transaction_id", newID))
	return newID, nil
}
