package opsctl

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/goodnatureofminers/tokengate-backend/internal/metrics"
	"github.com/goodnatureofminers/tokengate-backend/internal/repository/clickhouse"
)

type auditView struct {
	At          string   `json:"at"`
	ActionType  string   `json:"action_type"`
	DataHash    string   `json:"data_hash"`
	ProofDigest string   `json:"proof_digest"`
	Roots       []string `json:"roots"`
	Status      string   `json:"status"`
	ErrorKind   string   `json:"error_kind,omitempty"`
	Error       string   `json:"error,omitempty"`
	Source      string   `json:"source"`
	DurationMS  int64    `json:"duration_ms"`
}

func newAuditCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Read the action audit trail",
	}
	cmd.AddCommand(newAuditShowCommand(opts))
	return cmd
}

func newAuditShowCommand(opts *RootOptions) *cobra.Command {
	var (
		dsn   string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "show <action-id>",
		Short: "Show the most recent audit events for an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := clickhouse.NewRepository(dsn, metrics.NewAuditRepository())
			if err != nil {
				return err
			}
			defer repo.Close()

			events, err := repo.AuditEventsByAction(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			views := make([]auditView, 0, len(events))
			rows := make([][]string, 0, len(events))
			for _, e := range events {
				v := auditView{
					At:          e.At.UTC().Format(time.RFC3339Nano),
					ActionType:  string(e.ActionType),
					DataHash:    e.DataHash,
					ProofDigest: e.ProofDigest,
					Roots:       e.Roots,
					Status:      string(e.Status),
					ErrorKind:   e.ErrorKind,
					Error:       e.Error,
					Source:      e.Source,
					DurationMS:  e.Duration.Milliseconds(),
				}
				views = append(views, v)
				rows = append(rows, []string{v.At, v.Status, v.Source, v.DataHash, strconv.FormatInt(v.DurationMS, 10), v.ErrorKind})
			}
			return opts.printer(cmd).table(views, []string{"AT", "STATUS", "SOURCE", "DATA HASH", "MS", "ERROR"}, rows)
		},
	}
	cmd.Flags().StringVar(&dsn, "clickhouse-dsn", "", "audit trail dsn (required)")
	_ = cmd.MarkFlagRequired("clickhouse-dsn")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum events to show")
	return cmd
}
