package mapping

import (
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/SscSPs/trading_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction header to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		VoucherNo:     d.VoucherNo,
		Date:          d.Date,
		Type:          string(d.Type),
		Description:   d.Description,
		Amount:        d.Amount,
		TaxAmount:     d.TaxAmount,
		TotalAmount:   d.TotalAmount,
		PartyID:       d.PartyID,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction without lines
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		VoucherNo:     m.VoucherNo,
		Date:          m.Date,
		Type:          domain.TransactionType(m.Type),
		Description:   m.Description,
		Amount:        m.Amount,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		PartyID:       m.PartyID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelTransactionLine converts a domain TransactionLine to a model TransactionLine
func ToModelTransactionLine(d domain.TransactionLine) models.TransactionLine {
	return models.TransactionLine{
		LineID:        d.LineID,
		TransactionID: d.TransactionID,
		LineNo:        d.LineNo,
		AccountID:     d.AccountID,
		ItemID:        d.ItemID,
		Quantity:      toNullDecimal(d.Quantity),
		Rate:          toNullDecimal(d.Rate),
		Amount:        d.Amount,
		TaxRate:       d.TaxRate,
		TaxAmount:     d.TaxAmount,
		TotalAmount:   d.TotalAmount,
		Side:          string(d.Side),
	}
}

// ToDomainTransactionLine converts a model TransactionLine to a domain TransactionLine
func ToDomainTransactionLine(m models.TransactionLine) domain.TransactionLine {
	return domain.TransactionLine{
		LineID:        m.LineID,
		TransactionID: m.TransactionID,
		LineNo:        m.LineNo,
		AccountID:     m.AccountID,
		ItemID:        m.ItemID,
		Quantity:      fromNullDecimal(m.Quantity),
		Rate:          fromNullDecimal(m.Rate),
		Amount:        m.Amount,
		TaxRate:       m.TaxRate,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		Side:          domain.Side(m.Side),
	}
}

// ToDomainTransactionLineSlice converts model lines to domain lines
func ToDomainTransactionLineSlice(ms []models.TransactionLine) []domain.TransactionLine {
	ds := make([]domain.TransactionLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionLine(m)
	}
	return ds
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
