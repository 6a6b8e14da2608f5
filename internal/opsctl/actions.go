package opsctl

import (
	"github.com/spf13/cobra"

	"github.com/goodnatureofminers/tokengate-backend/internal/registry"
)

func newActionsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Manage the action registry",
	}
	cmd.AddCommand(newActionsImportCommand(opts), newActionsListCommand(opts))
	return cmd
}

type importView struct {
	Credentials int `json:"credentials"`
	Actions     int `json:"actions"`
}

func newActionsImportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import credentials and actions from a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := registry.LoadFile(args[0])
			if err != nil {
				return err
			}
			// Validate before touching the database.
			if _, _, err := file.Definitions(); err != nil {
				return err
			}
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			creds, actions, err := registry.Import(cmd.Context(), store, file)
			if err != nil {
				return err
			}
			return opts.printer(cmd).line(importView{Credentials: creds, Actions: actions},
				"imported %d credential(s) and %d action(s)", creds, actions)
		},
	}
}

type actionView struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Credential   string   `json:"credential"`
	Target       string   `json:"target"`
	Account      string   `json:"account"`
	Destinations []string `json:"destinations,omitempty"`
}

func newActionsListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			defs, err := store.ListActionDefinitions(cmd.Context())
			if err != nil {
				return err
			}
			views := make([]actionView, 0, len(defs))
			rows := make([][]string, 0, len(defs))
			for _, d := range defs {
				v := actionView{
					ID:         d.ID,
					Type:       string(d.Type),
					Credential: d.CredentialID,
					Target:     string(d.Target),
					Account:    d.TargetAccount,
				}
				for _, dest := range d.Destinations {
					v.Destinations = append(v.Destinations, string(dest.Target)+":"+dest.Account)
				}
				views = append(views, v)
				rows = append(rows, []string{v.ID, v.Type, v.Credential, v.Target, v.Account})
			}
			return opts.printer(cmd).table(views, []string{"ID", "TYPE", "CREDENTIAL", "TARGET", "ACCOUNT"}, rows)
		},
	}
}
