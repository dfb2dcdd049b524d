package services

// ServiceContainer holds instances of all the application services.
// It is what the handlers receive.
type ServiceContainer struct {
	Ledger LedgerSvcFacade
}
