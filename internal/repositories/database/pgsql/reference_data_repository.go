package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/trading_ledger/internal/apperrors"
	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/trading_ledger/internal/models"
	"github.com/SscSPs/trading_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceDataRepository stores accounts, parties and items. Saves are
// upserts keyed by id so a seed file can be applied repeatedly.
type PgxReferenceDataRepository struct {
	BaseRepository
}

func newPgxReferenceDataRepository(pool *pgxpool.Pool) *PgxReferenceDataRepository {
	return &PgxReferenceDataRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceDataRepository = (*PgxReferenceDataRepository)(nil)

// SaveAccount inserts or updates an account.
func (r *PgxReferenceDataRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO accounts (account_id, code, name, group_id, balance)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id) DO UPDATE
		SET code = EXCLUDED.code, name = EXCLUDED.name, group_id = EXCLUDED.group_id, balance = EXCLUDED.balance;`,
		m.AccountID, m.Code, m.Name, m.GroupID, m.Balance,
	)
	if err != nil {
		return mapWriteError(err, "save account "+account.AccountID)
	}
	return nil
}

// SaveParty inserts or updates a party.
func (r *PgxReferenceDataRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO parties (party_id, code, name, party_type, ntn, strn, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (party_id) DO UPDATE
		SET code = EXCLUDED.code, name = EXCLUDED.name, party_type = EXCLUDED.party_type,
			ntn = EXCLUDED.ntn, strn = EXCLUDED.strn, balance = EXCLUDED.balance;`,
		m.PartyID, m.Code, m.Name, m.PartyType, m.NTN, m.STRN, m.Balance,
	)
	if err != nil {
		return mapWriteError(err, "save party "+party.PartyID)
	}
	return nil
}

// SaveItem inserts or updates an item.
func (r *PgxReferenceDataRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO items (item_id, code, name, stock_quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (item_id) DO UPDATE
		SET code = EXCLUDED.code, name = EXCLUDED.name, stock_quantity = EXCLUDED.stock_quantity;`,
		m.ItemID, m.Code, m.Name, m.StockQuantity,
	)
	if err != nil {
		return mapWriteError(err, "save item "+item.ItemID)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxReferenceDataRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var m models.Account
	err := r.Pool.QueryRow(ctx,
		`SELECT account_id, code, name, group_id, balance FROM accounts WHERE account_id = $1;`, accountID,
	).Scan(&m.AccountID, &m.Code, &m.Name, &m.GroupID, &m.Balance)
	if err != nil {
		return nil, notFoundOr(err, "account "+accountID)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxReferenceDataRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	var m models.Party
	err := r.Pool.QueryRow(ctx,
		`SELECT party_id, code, name, party_type, ntn, strn, balance FROM parties WHERE party_id = $1;`, partyID,
	).Scan(&m.PartyID, &m.Code, &m.Name, &m.PartyType, &m.NTN, &m.STRN, &m.Balance)
	if err != nil {
		return nil, notFoundOr(err, "party "+partyID)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

// FindItemByID retrieves an item by its ID.
func (r *PgxReferenceDataRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	var m models.Item
	err := r.Pool.QueryRow(ctx,
		`SELECT item_id, code, name, stock_quantity FROM items WHERE item_id = $1;`, itemID,
	).Scan(&m.ItemID, &m.Code, &m.Name, &m.StockQuantity)
	if err != nil {
		return nil, notFoundOr(err, "item "+itemID)
	}
	d := mapping.ToDomainItem(m)
	return &d, nil
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}
