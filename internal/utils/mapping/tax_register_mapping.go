package mapping

import (
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/SscSPs/trading_ledger/internal/models"
)

// ToModelTaxRegisterEntry converts a domain TaxRegisterEntry to a model TaxRegisterEntry
func ToModelTaxRegisterEntry(d domain.TaxRegisterEntry) models.TaxRegisterEntry {
	return models.TaxRegisterEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		InvoiceDate:   d.InvoiceDate,
		InvoiceNumber: d.InvoiceNumber,
		PartyID:       d.PartyID,
		PartyNTN:      d.PartyNTN,
		PartySTRN:     d.PartySTRN,
		TaxableAmount: d.TaxableAmount,
		TaxRate:       d.TaxRate,
		TaxAmount:     d.TaxAmount,
		TotalAmount:   d.TotalAmount,
		InvoiceType:   string(d.InvoiceType),
	}
}

// ToDomainTaxRegisterEntry converts a model TaxRegisterEntry to a domain TaxRegisterEntry
func ToDomainTaxRegisterEntry(m models.TaxRegisterEntry) domain.TaxRegisterEntry {
	return domain.TaxRegisterEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		InvoiceDate:   m.InvoiceDate,
		InvoiceNumber: m.InvoiceNumber,
		PartyID:       m.PartyID,
		PartyNTN:      m.PartyNTN,
		PartySTRN:     m.PartySTRN,
		TaxableAmount: m.TaxableAmount,
		TaxRate:       m.TaxRate,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		InvoiceType:   domain.TransactionType(m.InvoiceType),
	}
}
