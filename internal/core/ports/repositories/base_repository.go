package repositories

import (
	"context"
)

// UnitOfWork runs fn against a LedgerStore bound to a single database
// transaction. The transaction commits if fn returns nil and rolls back
// otherwise, so every mutation made through store is applied all or nothing.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store LedgerStore) error) error
}
