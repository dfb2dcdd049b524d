package repositories

import (
	"context"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
)

// TaxRegisterStore persists tax register rows.
type TaxRegisterStore interface {
	// FindPartyTaxIDs returns the NTN and STRN recorded for a party.
	FindPartyTaxIDs(ctx context.Context, partyID string) (ntn, strn string, err error)

	InsertTaxRegisterEntry(ctx context.Context, entry domain.TaxRegisterEntry) error

	// DeleteTaxRegisterEntries removes every register row of a transaction.
	DeleteTaxRegisterEntries(ctx context.Context, transactionID string) error
}

// TaxRegisterReader reads tax register rows outside a unit of work.
type TaxRegisterReader interface {
	FindTaxRegisterEntry(ctx context.Context, transactionID string) (*domain.TaxRegisterEntry, error)
}
