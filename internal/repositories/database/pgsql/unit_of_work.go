package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork runs ledger work inside one read-committed pgx transaction.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	return &PgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

// WithinTx begins a transaction, hands fn a store bound to it and commits
// when fn succeeds. Any error, or a cancelled ctx, rolls everything back.
func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.LedgerStore) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = u.Rollback(ctx, tx)
	}()

	if err := fn(ctx, newLedgerStore(tx)); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

// ledgerStore groups the repositories that take part in a unit of work.
type ledgerStore struct {
	*balanceRepository
	*transactionRepository
	*taxRegisterRepository
}

func newLedgerStore(q querier) *ledgerStore {
	return &ledgerStore{
		balanceRepository:     &balanceRepository{q: q},
		transactionRepository: &transactionRepository{q: q},
		taxRegisterRepository: &taxRegisterRepository{q: q},
	}
}

var (
	_ portsrepo.UnitOfWork  = (*PgxUnitOfWork)(nil)
	_ portsrepo.LedgerStore = (*ledgerStore)(nil)
)
