package repositories

import (
	"context"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
)

// ReferenceDataRepository stores the accounts, parties and items that
// transactions point at. The ledger itself only adjusts their balances.
type ReferenceDataRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	SaveParty(ctx context.Context, party domain.Party) error
	SaveItem(ctx context.Context, item domain.Item) error

	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)
}
