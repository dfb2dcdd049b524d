package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trading_ledger/internal/core/ports/services"
	"github.com/SscSPs/trading_ledger/internal/dto"
)

const defaultListLimit = 20

// ledgerService is the entry point the handlers use. Writes go through the
// poster, reverser and update coordinator; reads go straight to the store.
type ledgerService struct {
	BaseService
	poster      *LedgerPoster
	reverser    *LedgerReverser
	coordinator *UpdateCoordinator
	reader      portsrepo.LedgerReader
}

// NewLedgerService creates the ledger service facade.
func NewLedgerService(poster *LedgerPoster, reverser *LedgerReverser, coordinator *UpdateCoordinator, reader portsrepo.LedgerReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		poster:      poster,
		reverser:    reverser,
		coordinator: coordinator,
		reader:      reader,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) PostTransaction(ctx context.Context, req dto.TransactionRequest) (string, error) {
	txn, err := req.ToDomain()
	if err != nil {
		return "", err
	}
	return s.poster.Post(ctx, txn)
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.TransactionRequest) (string, error) {
	txn, err := req.ToDomain()
	if err != nil {
		return "", err
	}
	return s.coordinator.Update(ctx, transactionID, txn)
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.reverser.Reverse(ctx, transactionID)
}

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	txn, err := s.reader.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID)
		}
		s.LogError(ctx, err, "Failed to load transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	lines, err := s.reader.FindLinesByTransactionID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transaction lines", slog.String("transaction_id", transactionID))
		return nil, err
	}
	txn.Lines = lines

	resp := dto.ToTransactionResponse(txn)
	if txn.Type.Taxable() {
		entry, err := s.reader.FindTaxRegisterEntry(ctx, transactionID)
		switch {
		case err == nil:
			resp.TaxRegister = dto.ToTaxRegisterEntryResponse(entry)
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to load tax register entry", slog.String("transaction_id", transactionID))
			return nil, err
		}
	}
	return &resp, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	var txType *domain.TransactionType
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidType)
		}
		txType = &t
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	txns, nextToken, err := s.reader.ListTransactions(ctx, txType, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
