package accounting

import (
	"fmt"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AccountDelta returns the balance change a line applies to its account:
// +total for a Debit, -total for a Credit.
func AccountDelta(line domain.TransactionLine) decimal.Decimal {
	if line.Side == domain.Credit {
		return line.TotalAmount.Neg()
	}
	return line.TotalAmount
}

// StockDelta returns the stock change a line applies to its item and whether
// the line moves stock at all. Sales remove quantity, purchases add it.
func StockDelta(txType domain.TransactionType, line domain.TransactionLine) (decimal.Decimal, bool) {
	if !txType.MovesStock() || !line.HasItem() {
		return decimal.Zero, false
	}
	qty := line.QuantityOrZero()
	if txType == domain.Sales {
		return qty.Neg(), true
	}
	return qty, true
}

// PartyDelta returns the signed change to a party balance for a transaction
// of the given type and posting value. Journals never touch party balances.
func PartyDelta(txType domain.TransactionType, value decimal.Decimal) (decimal.Decimal, bool) {
	switch txType {
	case domain.Sales, domain.Payment:
		return value, true
	case domain.Purchase, domain.Receipt:
		return value.Neg(), true
	}
	return decimal.Zero, false
}

// PostingValue is the sum of Debit line totals. For a balanced transaction it
// equals the sum of Credit line totals.
func PostingValue(lines []domain.TransactionLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		if l.Side == domain.Debit {
			sum = sum.Add(l.TotalAmount)
		}
	}
	return sum
}

// TaxRate returns tax as a percentage of taxable, or zero when taxable is zero.
func TaxRate(tax, taxable decimal.Decimal) decimal.Decimal {
	if taxable.IsZero() {
		return decimal.Zero
	}
	return tax.Div(taxable).Mul(hundred).Round(2)
}

// ValidateBalance checks that the debit and credit totals of lines agree.
func ValidateBalance(lines []domain.TransactionLine) error {
	debits, credits := decimal.Zero, decimal.Zero
	for _, l := range lines {
		switch l.Side {
		case domain.Debit:
			debits = debits.Add(l.TotalAmount)
		case domain.Credit:
			credits = credits.Add(l.TotalAmount)
		}
	}
	if !debits.Equal(credits) {
		return fmt.Errorf("debits %s do not equal credits %s", debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}
