package commands

import (
	"fmt"
	"time"

	"github.com/SscSPs/trading_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue API bearer tokens and signing secrets",
	}

	var subject string
	var ttl time.Duration
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Print a bearer token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			signed, err := utils.IssueAPIToken(subject, cfg.JWTSecret, cfg.JWTIssuer, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	issue.Flags().StringVar(&subject, "subject", "", "token subject (required)")
	_ = issue.MarkFlagRequired("subject")
	issue.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.AddCommand(issue)

	cmd.AddCommand(&cobra.Command{
		Use:   "secret",
		Short: "Print a random value for JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := utils.GenerateSigningSecret(32)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	})

	return cmd
}
