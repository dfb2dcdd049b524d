package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	VoucherNo     string          `db:"voucher_no"`
	Date          time.Time       `db:"date"`
	Type          string          `db:"type"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PartyID       *string         `db:"party_id"` // Nullable
	CreatedAt     time.Time       `db:"created_at"`
}

// TransactionLine is a row of the transaction_lines table.
type TransactionLine struct {
	LineID        string              `db:"line_id"`
	TransactionID string              `db:"transaction_id"`
	LineNo        int                 `db:"line_no"`
	AccountID     string              `db:"account_id"`
	ItemID        *string             `db:"item_id"`  // Nullable
	Quantity      decimal.NullDecimal `db:"quantity"` // Nullable
	Rate          decimal.NullDecimal `db:"rate"`     // Nullable
	Amount        decimal.Decimal     `db:"amount"`
	TaxRate       decimal.Decimal     `db:"tax_rate"`
	TaxAmount     decimal.Decimal     `db:"tax_amount"`
	TotalAmount   decimal.Decimal     `db:"total_amount"`
	Side          string              `db:"side"`
}
