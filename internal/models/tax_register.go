package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRegisterEntry is a row of the tax_register table.
type TaxRegisterEntry struct {
	EntryID       string          `db:"entry_id"`
	TransactionID string          `db:"transaction_id"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	InvoiceNumber string          `db:"invoice_number"`
	PartyID       string          `db:"party_id"`
	PartyNTN      string          `db:"party_ntn"`
	PartySTRN     string          `db:"party_strn"`
	TaxableAmount decimal.Decimal `db:"taxable_amount"`
	TaxRate       decimal.Decimal `db:"tax_rate"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	InvoiceType   string          `db:"invoice_type"`
}
