package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trading_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PosterOption configures a LedgerPoster.
type PosterOption func(*LedgerPoster)

// WithIDGenerator replaces the uuid generator used for new rows.
func WithIDGenerator(gen func() string) PosterOption {
	return func(p *LedgerPoster) {
		p.newID = gen
	}
}

// WithClock replaces the clock used for created_at.
func WithClock(now func() time.Time) PosterOption {
	return func(p *LedgerPoster) {
		p.now = now
	}
}

// LedgerPoster applies every side effect of a new transaction inside one
// unit of work: header and lines, account balances, stock, the party
// balance and, for taxed sales and purchases, the tax register.
type LedgerPoster struct {
	BaseService
	uow       portsrepo.UnitOfWork
	taxWriter *TaxRegisterWriter
	guard     stockGuard
	newID     func() string
	now       func() time.Time
}

// NewLedgerPoster creates a LedgerPoster.
func NewLedgerPoster(uow portsrepo.UnitOfWork, taxWriter *TaxRegisterWriter, policy domain.StockPolicy, opts ...PosterOption) *LedgerPoster {
	p := &LedgerPoster{
		uow:       uow,
		taxWriter: taxWriter,
		guard:     stockGuard{policy: policy},
		newID:     uuid.NewString,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Post validates txn and posts it, returning the new transaction id.
func (p *LedgerPoster) Post(ctx context.Context, txn domain.Transaction) (string, error) {
	if err := ValidateTransaction(txn); err != nil {
		p.LogWarn(ctx, "Rejected transaction", slog.String("voucher_no", txn.VoucherNo), slog.String("error", err.Error()))
		return "", err
	}

	var id string
	err := p.uow.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		unit := newLedgerUnit(store)
		var err error
		if id, err = p.post(ctx, unit, txn); err != nil {
			return err
		}
		return p.guard.check(ctx, "post", unit)
	})
	if err != nil {
		err = asPostingFailure("post", err)
		p.LogError(ctx, err, "Failed to post transaction", slog.String("voucher_no", txn.VoucherNo))
		return "", err
	}

	p.LogInfo(ctx, "Transaction posted", slog.String("transaction_id", id), slog.String("type", string(txn.Type)))
	return id, nil
}

// post is the single posting primitive. Create and update both go through it.
func (p *LedgerPoster) post(ctx context.Context, unit *ledgerUnit, txn domain.Transaction) (string, error) {
	store := unit.store
	id := p.newID()

	header := txn
	header.TransactionID = id
	header.TotalAmount = decimal.Zero
	header.CreatedAt = p.now()
	header.Lines = nil
	if err := store.InsertTransaction(ctx, header); err != nil {
		return "", apperrors.NewPostingError("post", "insert header", err)
	}

	total, tax := decimal.Zero, decimal.Zero
	lines := make([]domain.TransactionLine, len(txn.Lines))
	for i, line := range txn.Lines {
		step := fmt.Sprintf("line %d", i+1)
		line.LineID = p.newID()
		line.TransactionID = id
		line.LineNo = i + 1

		if err := store.InsertLine(ctx, line); err != nil {
			return "", apperrors.NewPostingError("post", step+" insert", err)
		}
		if err := store.AdjustAccount(ctx, line.AccountID, accounting.AccountDelta(line)); err != nil {
			return "", apperrors.NewPostingError("post", step+" account "+line.AccountID, err)
		}
		if delta, ok := accounting.StockDelta(txn.Type, line); ok {
			if err := unit.adjustStock(ctx, *line.ItemID, delta); err != nil {
				return "", apperrors.NewPostingError("post", step+" stock "+*line.ItemID, err)
			}
		}
		tax = tax.Add(line.TaxAmount)
		total = total.Add(line.TotalAmount)
		lines[i] = line
	}

	if err := store.UpdateTransactionTotal(ctx, id, total); err != nil {
		return "", apperrors.NewPostingError("post", "update total", err)
	}

	value := accounting.PostingValue(lines)
	if txn.HasParty() {
		if delta, ok := accounting.PartyDelta(txn.Type, value); ok {
			if err := store.AdjustPartyBalance(ctx, *txn.PartyID, delta); err != nil {
				return "", apperrors.NewPostingError("post", "party "+*txn.PartyID, err)
			}
		}
	}

	if tax.IsPositive() && txn.Type.Taxable() && txn.HasParty() {
		taxable := value.Sub(tax)
		entry := domain.TaxRegisterEntry{
			TransactionID: id,
			InvoiceDate:   txn.Date,
			InvoiceNumber: txn.VoucherNo,
			PartyID:       *txn.PartyID,
			TaxableAmount: taxable,
			TaxRate:       accounting.TaxRate(tax, taxable),
			TaxAmount:     tax,
			TotalAmount:   value,
			InvoiceType:   txn.Type,
		}
		if err := p.taxWriter.Insert(ctx, store, entry); err != nil {
			return "", apperrors.NewPostingError("post", "tax register", err)
		}
	}

	return id, nil
}

// asPostingFailure leaves posting and not-found errors alone and wraps
// anything else, such as a failed commit, as a PostingError.
func asPostingFailure(op string, err error) error {
	if apperrors.IsPostingFailure(err) || errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return apperrors.NewPostingError(op, "unit of work", err)
}
