package commands

import (
	"fmt"

	"github.com/SscSPs/trading_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/trading_ledger/internal/seed"
	"github.com/SscSPs/trading_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load accounts, parties and items from a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := seed.Load(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dbPool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, true)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer database.ClosePgxPool(dbPool)

			return seed.Apply(cmd.Context(), pgsql.NewRepositoryProvider(dbPool).ReferenceRepo, fixture)
		},
	}
}
