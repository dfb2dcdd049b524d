package repositories

// LedgerStore is the store handle a unit of work hands to the ledger
// services. Every call made through it joins the same database transaction.
type LedgerStore interface {
	BalanceStore
	TransactionReader
	TransactionWriter
	TaxRegisterStore
}

// LedgerReader serves read-only queries outside a unit of work.
type LedgerReader interface {
	TransactionReader
	TaxRegisterReader
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UnitOfWork    UnitOfWork
	LedgerReader  LedgerReader
	ReferenceRepo ReferenceDataRepository
}
