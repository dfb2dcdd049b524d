package pgsql

import (
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ledgerReader serves read-only ledger queries straight from the pool.
type ledgerReader struct {
	*transactionRepository
	*taxRegisterRepository
}

var _ portsrepo.LedgerReader = (*ledgerReader)(nil)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UnitOfWork: newPgxUnitOfWork(dbPool),
		LedgerReader: &ledgerReader{
			transactionRepository: &transactionRepository{q: dbPool},
			taxRegisterRepository: &taxRegisterRepository{q: dbPool},
		},
		ReferenceRepo: newPgxReferenceDataRepository(dbPool),
	}
}
