package services

import (
	"fmt"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trading_ledger/internal/core/ports/services"
	"github.com/SscSPs/trading_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	policy, err := domain.ParseStockPolicy(cfg.StockPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid STOCK_POLICY: %w", err)
	}

	taxWriter := NewTaxRegisterWriter()
	poster := NewLedgerPoster(repos.UnitOfWork, taxWriter, policy)
	reverser := NewLedgerReverser(repos.UnitOfWork, taxWriter, policy)
	coordinator := NewUpdateCoordinator(repos.UnitOfWork, poster, reverser, policy)

	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(poster, reverser, coordinator, repos.LedgerReader),
	}, nil
}
