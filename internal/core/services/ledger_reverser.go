package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trading_ledger/internal/utils/accounting"
)

// LedgerReverser undoes every side effect of a posted transaction and then
// removes it. Steps run in the inverse order of posting.
type LedgerReverser struct {
	BaseService
	uow       portsrepo.UnitOfWork
	taxWriter *TaxRegisterWriter
	guard     stockGuard
}

// NewLedgerReverser creates a LedgerReverser.
func NewLedgerReverser(uow portsrepo.UnitOfWork, taxWriter *TaxRegisterWriter, policy domain.StockPolicy) *LedgerReverser {
	return &LedgerReverser{
		uow:       uow,
		taxWriter: taxWriter,
		guard:     stockGuard{policy: policy},
	}
}

// Reverse removes the transaction with the given id, restoring every
// balance it touched. A missing transaction yields apperrors.ErrNotFound.
func (r *LedgerReverser) Reverse(ctx context.Context, transactionID string) error {
	err := r.uow.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		unit := newLedgerUnit(store)
		if err := r.reverse(ctx, unit, transactionID); err != nil {
			return err
		}
		return r.guard.check(ctx, "reverse", unit)
	})
	if err != nil {
		err = asPostingFailure("reverse", err)
		if errors.Is(err, apperrors.ErrNotFound) {
			r.LogWarn(ctx, "Transaction to reverse not found", slog.String("transaction_id", transactionID))
		} else {
			r.LogError(ctx, err, "Failed to reverse transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}

	r.LogInfo(ctx, "Transaction reversed", slog.String("transaction_id", transactionID))
	return nil
}

// reverse is the single reversal primitive shared by delete and update.
func (r *LedgerReverser) reverse(ctx context.Context, unit *ledgerUnit, transactionID string) error {
	store := unit.store

	txn, err := store.LockTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("transaction " + transactionID)
		}
		return apperrors.NewPostingError("reverse", "load header", err)
	}
	lines, err := store.FindLinesByTransactionID(ctx, transactionID)
	if err != nil {
		return apperrors.NewPostingError("reverse", "load lines", err)
	}

	for _, line := range lines {
		step := fmt.Sprintf("line %d", line.LineNo)
		if err := store.AdjustAccount(ctx, line.AccountID, accounting.AccountDelta(line).Neg()); err != nil {
			return apperrors.NewPostingError("reverse", step+" account "+line.AccountID, err)
		}
		if delta, ok := accounting.StockDelta(txn.Type, line); ok {
			if err := unit.adjustStock(ctx, *line.ItemID, delta.Neg()); err != nil {
				return apperrors.NewPostingError("reverse", step+" stock "+*line.ItemID, err)
			}
		}
	}

	if txn.HasParty() {
		if delta, ok := accounting.PartyDelta(txn.Type, accounting.PostingValue(lines)); ok {
			if err := store.AdjustPartyBalance(ctx, *txn.PartyID, delta.Neg()); err != nil {
				return apperrors.NewPostingError("reverse", "party "+*txn.PartyID, err)
			}
		}
	}

	if txn.Type.Taxable() {
		if err := r.taxWriter.Delete(ctx, store, transactionID); err != nil {
			return apperrors.NewPostingError("reverse", "tax register", err)
		}
	}
	if err := store.DeleteLines(ctx, transactionID); err != nil {
		return apperrors.NewPostingError("reverse", "delete lines", err)
	}
	if err := store.DeleteTransaction(ctx, transactionID); err != nil {
		return apperrors.NewPostingError("reverse", "delete header", err)
	}
	return nil
}
