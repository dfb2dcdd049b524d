package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	"github.com/SscSPs/trading_ledger/internal/models"
	"github.com/SscSPs/trading_ledger/internal/utils/mapping"
	"github.com/SscSPs/trading_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, voucher_no, date, type, description, amount, tax_amount, total_amount, party_id, created_at`

const lineColumns = `line_id, transaction_id, line_no, account_id, item_id, quantity, rate, amount, tax_rate, tax_amount, total_amount, side`

type transactionRepository struct {
	q querier
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.VoucherNo,
		&m.Date,
		&m.Type,
		&m.Description,
		&m.Amount,
		&m.TaxAmount,
		&m.TotalAmount,
		&m.PartyID,
		&m.CreatedAt,
	)
	return m, err
}

func (r *transactionRepository) findTransaction(ctx context.Context, query, transactionID string) (*domain.Transaction, error) {
	m, err := scanTransaction(r.q.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionByID retrieves a transaction header by its ID.
func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findTransaction(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1;`, transactionID)
}

// LockTransaction retrieves a transaction header and holds a row lock on it
// until the surrounding database transaction ends.
func (r *transactionRepository) LockTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return r.findTransaction(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID)
}

// FindLinesByTransactionID retrieves the lines of a transaction in submission order.
func (r *transactionRepository) FindLinesByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionLine, error) {
	rows, err := r.q.Query(ctx, `SELECT `+lineColumns+` FROM transaction_lines WHERE transaction_id = $1 ORDER BY line_no;`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	lines := []models.TransactionLine{}
	for rows.Next() {
		var m models.TransactionLine
		if err := rows.Scan(
			&m.LineID,
			&m.TransactionID,
			&m.LineNo,
			&m.AccountID,
			&m.ItemID,
			&m.Quantity,
			&m.Rate,
			&m.Amount,
			&m.TaxRate,
			&m.TaxAmount,
			&m.TotalAmount,
			&m.Side,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line row for transaction %s: %w", transactionID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows for transaction %s: %w", transactionID, err)
	}
	return mapping.ToDomainTransactionLineSlice(lines), nil
}

// ListTransactions retrieves transaction headers, newest first, using
// token-based pagination. One extra row is fetched to detect a next page.
func (r *transactionRepository) ListTransactions(ctx context.Context, txType *domain.TransactionType, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	var where []string
	var args []any
	if txType != nil {
		args = append(args, string(*txType))
		where = append(where, "type = $"+strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		where = append(where, fmt.Sprintf("(date, created_at, transaction_id) < ($%d, $%d, $%d)", n-2, n-1, n))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY date DESC, created_at DESC, transaction_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	results := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextTokenVal = &token
		results = results[:limit]
	}
	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// InsertTransaction inserts a transaction header.
func (r *transactionRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.q.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.TransactionID,
		m.VoucherNo,
		m.Date,
		m.Type,
		m.Description,
		m.Amount,
		m.TaxAmount,
		m.TotalAmount,
		m.PartyID,
		m.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "insert transaction "+txn.VoucherNo)
	}
	return nil
}

// InsertLine inserts one transaction line.
func (r *transactionRepository) InsertLine(ctx context.Context, line domain.TransactionLine) error {
	m := mapping.ToModelTransactionLine(line)
	_, err := r.q.Exec(ctx, `
		INSERT INTO transaction_lines (`+lineColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.LineID,
		m.TransactionID,
		m.LineNo,
		m.AccountID,
		m.ItemID,
		m.Quantity,
		m.Rate,
		m.Amount,
		m.TaxRate,
		m.TaxAmount,
		m.TotalAmount,
		m.Side,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("insert line %d", line.LineNo))
	}
	return nil
}

// UpdateTransactionTotal sets the header total once all lines are posted.
func (r *transactionRepository) UpdateTransactionTotal(ctx context.Context, transactionID string, total decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE transactions SET total_amount = $2 WHERE transaction_id = $1;`, transactionID, total)
	if err != nil {
		return mapWriteError(err, "update total of transaction "+transactionID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLines removes all lines of a transaction.
func (r *transactionRepository) DeleteLines(ctx context.Context, transactionID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM transaction_lines WHERE transaction_id = $1;`, transactionID); err != nil {
		return mapWriteError(err, "delete lines of transaction "+transactionID)
	}
	return nil
}

// DeleteTransaction removes a transaction header.
func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
		return mapWriteError(err, "delete transaction "+transactionID)
	}
	return nil
}
