package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// TaxRegisterWriter records and removes tax register rows for taxed sales
// and purchases. It never opens a unit of work itself.
type TaxRegisterWriter struct {
	newID func() string
}

// NewTaxRegisterWriter creates a TaxRegisterWriter.
func NewTaxRegisterWriter() *TaxRegisterWriter {
	return &TaxRegisterWriter{newID: uuid.NewString}
}

// Insert writes one register row, copying the party's NTN and STRN onto it.
func (w *TaxRegisterWriter) Insert(ctx context.Context, store portsrepo.TaxRegisterStore, entry domain.TaxRegisterEntry) error {
	ntn, strn, err := store.FindPartyTaxIDs(ctx, entry.PartyID)
	if err != nil {
		return fmt.Errorf("loading tax ids of party %s: %w", entry.PartyID, err)
	}
	entry.PartyNTN = ntn
	entry.PartySTRN = strn
	if entry.EntryID == "" {
		entry.EntryID = w.newID()
	}
	return store.InsertTaxRegisterEntry(ctx, entry)
}

// Delete removes the register rows of a transaction. Missing rows are not an error.
func (w *TaxRegisterWriter) Delete(ctx context.Context, store portsrepo.TaxRegisterStore, transactionID string) error {
	return store.DeleteTaxRegisterEntries(ctx, transactionID)
}
