package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/SscSPs/trading_ledger/internal/models"
	"github.com/SscSPs/trading_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type taxRegisterRepository struct {
	q querier
}

// FindPartyTaxIDs returns the NTN and STRN recorded for a party.
func (r *taxRegisterRepository) FindPartyTaxIDs(ctx context.Context, partyID string) (string, string, error) {
	var ntn, strn string
	err := r.q.QueryRow(ctx, `SELECT ntn, strn FROM parties WHERE party_id = $1;`, partyID).Scan(&ntn, &strn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", fmt.Errorf("%w: party %s does not exist", apperrors.ErrConstraint, partyID)
		}
		return "", "", fmt.Errorf("failed to load tax ids of party %s: %w", partyID, err)
	}
	return ntn, strn, nil
}

// InsertTaxRegisterEntry writes one register row.
func (r *taxRegisterRepository) InsertTaxRegisterEntry(ctx context.Context, entry domain.TaxRegisterEntry) error {
	m := mapping.ToModelTaxRegisterEntry(entry)
	_, err := r.q.Exec(ctx, `
		INSERT INTO tax_register (entry_id, transaction_id, invoice_date, invoice_number, party_id, party_ntn, party_strn,
			taxable_amount, tax_rate, tax_amount, total_amount, invoice_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.EntryID,
		m.TransactionID,
		m.InvoiceDate,
		m.InvoiceNumber,
		m.PartyID,
		m.PartyNTN,
		m.PartySTRN,
		m.TaxableAmount,
		m.TaxRate,
		m.TaxAmount,
		m.TotalAmount,
		m.InvoiceType,
	)
	if err != nil {
		return mapWriteError(err, "insert tax register entry for "+entry.InvoiceNumber)
	}
	return nil
}

// DeleteTaxRegisterEntries removes the register rows of a transaction.
func (r *taxRegisterRepository) DeleteTaxRegisterEntries(ctx context.Context, transactionID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tax_register WHERE transaction_id = $1;`, transactionID); err != nil {
		return mapWriteError(err, "delete tax register entries of "+transactionID)
	}
	return nil
}

// FindTaxRegisterEntry retrieves the register row of a transaction.
func (r *taxRegisterRepository) FindTaxRegisterEntry(ctx context.Context, transactionID string) (*domain.TaxRegisterEntry, error) {
	var m models.TaxRegisterEntry
	err := r.q.QueryRow(ctx, `
		SELECT entry_id, transaction_id, invoice_date, invoice_number, party_id, party_ntn, party_strn,
			taxable_amount, tax_rate, tax_amount, total_amount, invoice_type
		FROM tax_register
		WHERE transaction_id = $1
		LIMIT 1;`, transactionID).Scan(
		&m.EntryID,
		&m.TransactionID,
		&m.InvoiceDate,
		&m.InvoiceNumber,
		&m.PartyID,
		&m.PartyNTN,
		&m.PartySTRN,
		&m.TaxableAmount,
		&m.TaxRate,
		&m.TaxAmount,
		&m.TotalAmount,
		&m.InvoiceType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tax register entry for %s: %w", transactionID, err)
	}
	entry := mapping.ToDomainTaxRegisterEntry(m)
	return &entry, nil
}
