package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ledgerUnit is the state one unit of work carries across post and reverse
// steps: the store handle plus the opening and latest stock level of each
// touched item.
type ledgerUnit struct {
	store portsrepo.LedgerStore
	start map[string]decimal.Decimal
	stock map[string]decimal.Decimal
}

func newLedgerUnit(store portsrepo.LedgerStore) *ledgerUnit {
	return &ledgerUnit{
		store: store,
		start: make(map[string]decimal.Decimal),
		stock: make(map[string]decimal.Decimal),
	}
}

func (u *ledgerUnit) adjustStock(ctx context.Context, itemID string, delta decimal.Decimal) error {
	qty, err := u.store.AdjustStock(ctx, itemID, delta)
	if err != nil {
		return err
	}
	if _, ok := u.start[itemID]; !ok {
		u.start[itemID] = qty.Sub(delta)
	}
	u.stock[itemID] = qty
	return nil
}

// stockGuard applies the configured StockPolicy once all steps of a unit
// have run, so an update that removes and re-adds stock is judged on the
// final quantity only. An item is flagged when the unit lowered it and left
// it below zero; a unit that raises an already negative item passes.
type stockGuard struct {
	BaseService
	policy domain.StockPolicy
}

func (g stockGuard) check(ctx context.Context, op string, u *ledgerUnit) error {
	ids := make([]string, 0, len(u.stock))
	for id, qty := range u.stock {
		if qty.IsNegative() && qty.LessThan(u.start[id]) {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)

	if g.policy == domain.StockPolicyWarn {
		for _, id := range ids {
			g.LogWarn(ctx, "Stock went negative", slog.String("op", op), slog.String("item_id", id), slog.String("quantity", u.stock[id].String()))
		}
		return nil
	}
	return apperrors.NewPostingError(op, "stock check",
		fmt.Errorf("%w: item %s would hold %s", apperrors.ErrInsufficientStock, ids[0], u.stock[ids[0]].String()))
}
