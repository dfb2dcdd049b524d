package services

import (
	"errors"
	"fmt"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/SscSPs/trading_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrVoucherNoMissing    = errors.New("voucher_no is required")
	ErrDateMissing         = errors.New("date is required")
	ErrInvalidType         = errors.New("type must be one of Sales, Purchase, Payment, Receipt, Journal")
	ErrTooFewLines         = errors.New("transaction must have at least two lines")
	ErrPartyIDEmpty        = errors.New("party_id must not be empty when given")
	ErrNegativeAmount      = errors.New("amounts must not be negative")
	ErrLineAccountMissing  = errors.New("line account_id is required")
	ErrInvalidSide         = errors.New("line type must be Debit or Credit")
	ErrNonPositiveTotal    = errors.New("line total_amount must be positive")
	ErrItemQuantityMissing = errors.New("item lines need a positive quantity")
	ErrUnbalanced          = errors.New("debit and credit totals differ")
	ErrTooPrecise          = errors.New("money allows 2 decimal places and quantities 4")
	ErrOutOfRange          = errors.New("value exceeds the storable range")
	ErrTaxExceedsTotal     = errors.New("line tax_amount must not exceed total_amount")
	ErrTaxExceedsValue     = errors.New("tax must be less than the posting value")
)

const (
	moneyScale    = 2
	quantityScale = 4
)

var (
	// NUMERIC(18,2) and NUMERIC(18,4) hold 16 and 14 integer digits,
	// NUMERIC(9,2) holds 7.
	moneyLimit    = decimal.New(1, 16)
	quantityLimit = decimal.New(1, 14)
	rateLimit     = decimal.New(1, 7)
)

// checkDecimal reports whether d fits a column with the given scale and
// exclusive magnitude limit.
func checkDecimal(d decimal.Decimal, scale int32, limit decimal.Decimal) error {
	if !d.Equal(d.Truncate(scale)) {
		return ErrTooPrecise
	}
	if d.Abs().GreaterThanOrEqual(limit) {
		return ErrOutOfRange
	}
	return nil
}

// ValidateTransaction checks a submission before any mutation happens.
// Every failure wraps apperrors.ErrValidation.
func ValidateTransaction(txn domain.Transaction) error {
	invalid := func(err error, format string, args ...any) error {
		if format == "" {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, err, fmt.Sprintf(format, args...))
	}

	if txn.VoucherNo == "" {
		return invalid(ErrVoucherNoMissing, "")
	}
	if txn.Date.IsZero() {
		return invalid(ErrDateMissing, "")
	}
	if !txn.Type.Valid() {
		return invalid(ErrInvalidType, "got %q", txn.Type)
	}
	if txn.PartyID != nil && *txn.PartyID == "" {
		return invalid(ErrPartyIDEmpty, "")
	}
	if txn.Amount.IsNegative() || txn.TaxAmount.IsNegative() {
		return invalid(ErrNegativeAmount, "header")
	}
	for _, d := range []decimal.Decimal{txn.Amount, txn.TaxAmount} {
		if err := checkDecimal(d, moneyScale, moneyLimit); err != nil {
			return invalid(err, "header")
		}
	}
	if len(txn.Lines) < 2 {
		return invalid(ErrTooFewLines, "got %d", len(txn.Lines))
	}

	for i, line := range txn.Lines {
		n := i + 1
		if line.AccountID == "" {
			return invalid(ErrLineAccountMissing, "line %d", n)
		}
		if !line.Side.Valid() {
			return invalid(ErrInvalidSide, "line %d got %q", n, line.Side)
		}
		if line.Amount.IsNegative() || line.TaxAmount.IsNegative() || line.TaxRate.IsNegative() {
			return invalid(ErrNegativeAmount, "line %d", n)
		}
		if !line.TotalAmount.GreaterThan(decimal.Zero) {
			return invalid(ErrNonPositiveTotal, "line %d", n)
		}
		if err := checkLineDecimals(line); err != nil {
			return invalid(err, "line %d", n)
		}
		if line.TaxAmount.GreaterThan(line.TotalAmount) {
			return invalid(ErrTaxExceedsTotal, "line %d", n)
		}
		if txn.Type.MovesStock() && line.HasItem() && !line.QuantityOrZero().GreaterThan(decimal.Zero) {
			return invalid(ErrItemQuantityMissing, "line %d", n)
		}
	}

	if err := accounting.ValidateBalance(txn.Lines); err != nil {
		return invalid(ErrUnbalanced, "%s", err.Error())
	}

	if txn.Type.Taxable() {
		value := accounting.PostingValue(txn.Lines)
		tax := decimal.Zero
		for _, line := range txn.Lines {
			tax = tax.Add(line.TaxAmount)
		}
		if tax.IsPositive() {
			if tax.GreaterThanOrEqual(value) {
				return invalid(ErrTaxExceedsValue, "tax %s, value %s", tax.StringFixed(2), value.StringFixed(2))
			}
			if accounting.TaxRate(tax, value.Sub(tax)).GreaterThanOrEqual(rateLimit) {
				return invalid(ErrOutOfRange, "tax rate")
			}
		}
	}
	return nil
}

func checkLineDecimals(line domain.TransactionLine) error {
	money := []decimal.Decimal{line.Amount, line.TaxAmount, line.TotalAmount}
	if line.Rate != nil {
		money = append(money, *line.Rate)
	}
	for _, d := range money {
		if err := checkDecimal(d, moneyScale, moneyLimit); err != nil {
			return err
		}
	}
	if err := checkDecimal(line.TaxRate, moneyScale, rateLimit); err != nil {
		return err
	}
	if line.Quantity != nil {
		return checkDecimal(*line.Quantity, quantityScale, quantityLimit)
	}
	return nil
}
