package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRegisterEntry is the regulatory record written for a taxed sale or purchase.
type TaxRegisterEntry struct {
	EntryID       string          `json:"id"`
	TransactionID string          `json:"transactionID"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	InvoiceNumber string          `json:"invoiceNumber"`
	PartyID       string          `json:"partyID"`
	PartyNTN      string          `json:"partyNTN"`
	PartySTRN     string          `json:"partySTRN"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	InvoiceType   TransactionType `json:"invoiceType"`
}
