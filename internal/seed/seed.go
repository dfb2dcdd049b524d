// Package seed loads reference data (accounts, parties, items) from a YAML
// fixture and stores it, so a fresh database can accept postings.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/trading_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trading_ledger/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk shape of a seed file.
type Fixture struct {
	Accounts []domain.Account `yaml:"accounts"`
	Parties  []domain.Party   `yaml:"parties"`
	Items    []domain.Item    `yaml:"items"`
}

// Load reads and validates a fixture from path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture and checks that every row has an id and that
// party types are known.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, a := range f.Accounts {
		if a.AccountID == "" {
			return nil, fmt.Errorf("account %d: id is required", i)
		}
	}
	for i, p := range f.Parties {
		if p.PartyID == "" {
			return nil, fmt.Errorf("party %d: id is required", i)
		}
		if p.PartyType != domain.Customer && p.PartyType != domain.Supplier {
			return nil, fmt.Errorf("party %s: unknown party_type %q", p.PartyID, p.PartyType)
		}
	}
	for i, it := range f.Items {
		if it.ItemID == "" {
			return nil, fmt.Errorf("item %d: id is required", i)
		}
	}
	return &f, nil
}

// Apply upserts every fixture row. It stops at the first failure.
func Apply(ctx context.Context, repo portsrepo.ReferenceDataRepository, f *Fixture) error {
	for _, a := range f.Accounts {
		if err := repo.SaveAccount(ctx, a); err != nil {
			return fmt.Errorf("saving account %s: %w", a.AccountID, err)
		}
	}
	for _, p := range f.Parties {
		if err := repo.SaveParty(ctx, p); err != nil {
			return fmt.Errorf("saving party %s: %w", p.PartyID, err)
		}
	}
	for _, it := range f.Items {
		if err := repo.SaveItem(ctx, it); err != nil {
			return fmt.Errorf("saving item %s: %w", it.ItemID, err)
		}
	}

	slog.InfoContext(ctx, "Seed data applied",
		slog.Int("accounts", len(f.Accounts)),
		slog.Int("parties", len(f.Parties)),
		slog.Int("items", len(f.Items)))
	return nil
}
