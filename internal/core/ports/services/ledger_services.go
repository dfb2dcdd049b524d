package services

import (
	"context"

	"github.com/SscSPs/trading_ledger/internal/dto"
)

// LedgerWriterSvc defines the posting operations of the ledger.
type LedgerWriterSvc interface {
	// PostTransaction validates and posts a new transaction, returning its id.
	PostTransaction(ctx context.Context, req dto.TransactionRequest) (string, error)

	// UpdateTransaction replaces a posted transaction, returning the id of the replacement.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.TransactionRequest) (string, error)

	// DeleteTransaction reverses every effect of a posted transaction and removes it.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerReaderSvc defines read operations for posted transactions.
type LedgerReaderSvc interface {
	// GetTransaction retrieves a transaction with its lines and tax register row.
	GetTransaction(ctx context.Context, transactionID string) (*dto.TransactionResponse, error)

	// ListTransactions retrieves a page of transaction headers, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
