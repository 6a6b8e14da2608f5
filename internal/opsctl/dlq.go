package opsctl

import (
	"errors"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/goodnatureofminers/tokengate-backend/internal/dispatch"
	"github.com/goodnatureofminers/tokengate-backend/internal/model"
)

type jobView struct {
	ID          string `json:"id"`
	ActionID    string `json:"action_id"`
	ActionType  string `json:"action_type"`
	DataHash    string `json:"data_hash"`
	Status      string `json:"status"`
	Attempts    int    `json:"attempts"`
	MaxAttempts int    `json:"max_attempts"`
	LastError   string `json:"last_error,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

func newJobView(j model.Job) jobView {
	return jobView{
		ID:          j.ID,
		ActionID:    j.ActionID,
		ActionType:  string(j.ActionType),
		DataHash:    j.DataHash,
		Status:      string(j.Status),
		Attempts:    j.Attempts,
		MaxAttempts: j.MaxAttempts,
		LastError:   j.LastError,
		UpdatedAt:   j.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func newDLQCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dlq",
		Short: "Inspect and replay dead dispatch jobs",
	}
	cmd.AddCommand(newDLQListCommand(opts), newDLQReplayCommand(opts))
	return cmd
}

func newDLQListCommand(opts *RootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dead jobs, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			queue, err := dispatch.NewQueue(store, opts.logger())
			if err != nil {
				return err
			}

			jobs, err := queue.DeadLetters(cmd.Context(), limit)
			if err != nil {
				return err
			}
			views := make([]jobView, 0, len(jobs))
			rows := make([][]string, 0, len(jobs))
			for _, j := range jobs {
				v := newJobView(j)
				views = append(views, v)
				rows = append(rows, []string{v.ID, v.ActionID, v.ActionType, strconv.Itoa(v.Attempts), v.UpdatedAt, v.LastError})
			}
			return opts.printer(cmd).table(views, []string{"ID", "ACTION", "TYPE", "ATTEMPTS", "UPDATED", "ERROR"}, rows)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum jobs to list")
	return cmd
}

type replayView struct {
	Replayed []string `json:"replayed"`
}

func newDLQReplayCommand(opts *RootOptions) *cobra.Command {
	var (
		all   bool
		limit int
	)
	cmd := &cobra.Command{
		Use:   "replay [job-id...]",
		Short: "Return dead jobs to the queue with a fresh attempt budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return errors.New("pass job ids or --all")
			}
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			queue, err := dispatch.NewQueue(store, opts.logger())
			if err != nil {
				return err
			}

			replayed := []string{}
			if all {
				replayed, err = queue.ReplayAll(cmd.Context(), limit)
				if err != nil {
					return err
				}
			} else {
				for _, id := range args {
					job, err := queue.Replay(cmd.Context(), id)
					if err != nil {
						return err
					}
					replayed = append(replayed, job.ID)
				}
			}
			return opts.printer(cmd).line(replayView{Replayed: replayed}, "replayed %d job(s)", len(replayed))
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "replay every dead job")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum jobs to replay with --all")
	return cmd
}
