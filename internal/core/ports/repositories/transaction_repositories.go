package repositories

import (
	"context"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for posted transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction header by id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindLinesByTransactionID retrieves the lines of a transaction in line order.
	FindLinesByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionLine, error)

	// ListTransactions returns transaction headers, newest first, optionally
	// filtered by type. It returns a token for the next page, if any.
	ListTransactions(ctx context.Context, txType *domain.TransactionType, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transactions and their lines.
type TransactionWriter interface {
	// LockTransaction loads a transaction header and locks its row until the
	// surrounding unit of work ends.
	LockTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	InsertTransaction(ctx context.Context, txn domain.Transaction) error
	InsertLine(ctx context.Context, line domain.TransactionLine) error
	UpdateTransactionTotal(ctx context.Context, transactionID string, total decimal.Decimal) error
	DeleteLines(ctx context.Context, transactionID string) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}
