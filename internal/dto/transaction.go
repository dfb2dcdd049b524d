package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted for voucher dates.
const DateLayout = "2006-01-02"

// TransactionLineRequest is one line of a submitted transaction.
type TransactionLineRequest struct {
	AccountID   string           `json:"account_id" binding:"required"`
	ItemID      *string          `json:"item_id,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxAmount   *decimal.Decimal `json:"tax_amount,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"` // defaults to amount
	Type        string           `json:"type" binding:"required,ledgerside" example:"Debit"`
}

// TransactionRequest is the body accepted to create or replace a transaction.
type TransactionRequest struct {
	VoucherNo   string                   `json:"voucher_no" binding:"required" example:"S-1"`
	Date        string                   `json:"date" binding:"required" example:"2024-01-15"`
	Type        string                   `json:"type" binding:"required,txntype" example:"Sales"`
	Description string                   `json:"description"`
	Amount      decimal.Decimal          `json:"amount"`
	PartyID     *string                  `json:"party_id,omitempty"`
	TaxAmount   *decimal.Decimal         `json:"tax_amount,omitempty"`
	Details     []TransactionLineRequest `json:"details" binding:"required,min=2,dive"`
}

// ToDomain converts the request into an unposted domain.Transaction.
// Malformed dates are reported as validation errors.
func (r TransactionRequest) ToDomain() (domain.Transaction, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := domain.Transaction{
		VoucherNo:   r.VoucherNo,
		Date:        date,
		Type:        domain.TransactionType(r.Type),
		Description: r.Description,
		Amount:      r.Amount,
		TaxAmount:   valueOrZero(r.TaxAmount),
		PartyID:     r.PartyID,
		Lines:       make([]domain.TransactionLine, len(r.Details)),
	}
	for i, d := range r.Details {
		total := d.Amount
		if d.TotalAmount != nil {
			total = *d.TotalAmount
		}
		txn.Lines[i] = domain.TransactionLine{
			LineNo:      i + 1,
			AccountID:   d.AccountID,
			ItemID:      d.ItemID,
			Quantity:    d.Quantity,
			Rate:        d.Rate,
			Amount:      d.Amount,
			TaxRate:     valueOrZero(d.TaxRate),
			TaxAmount:   valueOrZero(d.TaxAmount),
			TotalAmount: total,
			Side:        domain.Side(d.Type),
		}
	}
	return txn, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// TransactionIDResponse is returned by create and update.
type TransactionIDResponse struct {
	ID string `json:"id"`
}

// TransactionLineResponse defines the data returned for a transaction line.
type TransactionLineResponse struct {
	ID          string           `json:"id"`
	LineNo      int              `json:"line_no"`
	AccountID   string           `json:"account_id"`
	ItemID      *string          `json:"item_id,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	TaxRate     decimal.Decimal  `json:"tax_rate"`
	TaxAmount   decimal.Decimal  `json:"tax_amount"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Type        string           `json:"type"`
}

// TaxRegisterEntryResponse defines the data returned for a tax register row.
type TaxRegisterEntryResponse struct {
	ID            string          `json:"id"`
	InvoiceDate   string          `json:"invoice_date"`
	InvoiceNumber string          `json:"invoice_number"`
	PartyID       string          `json:"party_id"`
	PartyNTN      string          `json:"party_ntn"`
	PartySTRN     string          `json:"party_strn"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	InvoiceType   string          `json:"invoice_type"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string                    `json:"id"`
	VoucherNo   string                    `json:"voucher_no"`
	Date        string                    `json:"date"`
	Type        string                    `json:"type"`
	Description string                    `json:"description"`
	Amount      decimal.Decimal           `json:"amount"`
	TaxAmount   decimal.Decimal           `json:"tax_amount"`
	TotalAmount decimal.Decimal           `json:"total_amount"`
	PartyID     *string                   `json:"party_id,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	Details     []TransactionLineResponse `json:"details,omitempty"`
	TaxRegister *TaxRegisterEntryResponse `json:"tax_register,omitempty"`
}

// ListTransactionsParams holds the query parameters for listing transactions.
type ListTransactionsParams struct {
	Type      string  `form:"type" binding:"omitempty,txntype"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction, with any lines it
// carries, to a TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          txn.TransactionID,
		VoucherNo:   txn.VoucherNo,
		Date:        txn.Date.Format(DateLayout),
		Type:        string(txn.Type),
		Description: txn.Description,
		Amount:      txn.Amount,
		TaxAmount:   txn.TaxAmount,
		TotalAmount: txn.TotalAmount,
		PartyID:     txn.PartyID,
		CreatedAt:   txn.CreatedAt,
	}
	if len(txn.Lines) > 0 {
		resp.Details = make([]TransactionLineResponse, len(txn.Lines))
		for i, l := range txn.Lines {
			resp.Details[i] = TransactionLineResponse{
				ID:          l.LineID,
				LineNo:      l.LineNo,
				AccountID:   l.AccountID,
				ItemID:      l.ItemID,
				Quantity:    l.Quantity,
				Rate:        l.Rate,
				Amount:      l.Amount,
				TaxRate:     l.TaxRate,
				TaxAmount:   l.TaxAmount,
				TotalAmount: l.TotalAmount,
				Type:        string(l.Side),
			}
		}
	}
	return resp
}

// ToTaxRegisterEntryResponse converts a domain.TaxRegisterEntry to its DTO.
func ToTaxRegisterEntryResponse(e *domain.TaxRegisterEntry) *TaxRegisterEntryResponse {
	if e == nil {
		return nil
	}
	return &TaxRegisterEntryResponse{
		ID:            e.EntryID,
		InvoiceDate:   e.InvoiceDate.Format(DateLayout),
		InvoiceNumber: e.InvoiceNumber,
		PartyID:       e.PartyID,
		PartyNTN:      e.PartyNTN,
		PartySTRN:     e.PartySTRN,
		TaxableAmount: e.TaxableAmount,
		TaxRate:       e.TaxRate,
		TaxAmount:     e.TaxAmount,
		TotalAmount:   e.TotalAmount,
		InvoiceType:   string(e.InvoiceType),
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
