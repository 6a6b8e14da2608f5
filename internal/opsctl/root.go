// Package opsctl implements the operator command line.
package opsctl

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokengate-backend/internal/metrics"
	"github.com/goodnatureofminers/tokengate-backend/internal/repository/sqlstore"
)

var validFormats = []string{"text", "json"}

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	Database string
	Format   string
	Verbose  bool
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "opsctl",
		Short:         "Operate the credential-gated action service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "postgres:// dsn or sqlite file path")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(newDLQCommand(opts))
	cmd.AddCommand(newActionsCommand(opts))
	cmd.AddCommand(newTreeCommand(opts))
	cmd.AddCommand(newAuditCommand(opts))

	return cmd
}

func (o *RootOptions) openStore() (*sqlstore.Repository, error) {
	if o.Database == "" {
		return nil, errors.New("--db is required")
	}
	store, err := sqlstore.NewRepository(o.Database, metrics.NewSQLRepository())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return store, nil
}

func (o *RootOptions) logger() *zap.Logger {
	if !o.Verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func (o *RootOptions) printer(cmd *cobra.Command) printer {
	return printer{json: o.Format == "json", w: cmd.OutOrStdout()}
}
