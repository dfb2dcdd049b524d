package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a submitted voucher and drives its side effects.
type TransactionType string

const (
	Sales    TransactionType = "Sales"
	Purchase TransactionType = "Purchase"
	Payment  TransactionType = "Payment"
	Receipt  TransactionType = "Receipt"
	Journal  TransactionType = "Journal"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Sales, Purchase, Payment, Receipt, Journal:
		return true
	}
	return false
}

// MovesStock reports whether item lines of this type change stock levels.
func (t TransactionType) MovesStock() bool {
	return t == Sales || t == Purchase
}

// Taxable reports whether this type is recorded in the tax register.
func (t TransactionType) Taxable() bool {
	return t == Sales || t == Purchase
}

// Side indicates whether a transaction line is a Debit or a Credit.
type Side string

const (
	Debit  Side = "Debit"
	Credit Side = "Credit"
)

// Valid reports whether s is Debit or Credit.
func (s Side) Valid() bool {
	return s == Debit || s == Credit
}

// Transaction is the header of a posted voucher.
type Transaction struct {
	TransactionID string            `json:"id"`
	VoucherNo     string            `json:"voucherNo"`
	Date          time.Time         `json:"date"`
	Type          TransactionType   `json:"type"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	TaxAmount     decimal.Decimal   `json:"taxAmount"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"` // Σ line total_amount, set by the poster
	PartyID       *string           `json:"partyID,omitempty"`
	Lines         []TransactionLine `json:"lines,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// HasParty reports whether a counterparty is attached.
func (t Transaction) HasParty() bool {
	return t.PartyID != nil && *t.PartyID != ""
}

// TransactionLine is a single line of a Transaction, affecting one account.
type TransactionLine struct {
	LineID        string           `json:"id"`
	TransactionID string           `json:"transactionID"`
	LineNo        int              `json:"lineNo"`
	AccountID     string           `json:"accountID"`
	ItemID        *string          `json:"itemID,omitempty"`
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	TaxRate       decimal.Decimal  `json:"taxRate"`
	TaxAmount     decimal.Decimal  `json:"taxAmount"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	Side          Side             `json:"side"`
}

// HasItem reports whether the line references an inventory item.
func (l TransactionLine) HasItem() bool {
	return l.ItemID != nil && *l.ItemID != ""
}

// QuantityOrZero returns the line quantity, or zero when none was given.
func (l TransactionLine) QuantityOrZero() decimal.Decimal {
	if l.Quantity == nil {
		return decimal.Zero
	}
	return *l.Quantity
}
