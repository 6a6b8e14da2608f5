package opsctl

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/goodnatureofminers/tokengate-backend/internal/credential"
	"github.com/goodnatureofminers/tokengate-backend/internal/metrics"
	"github.com/goodnatureofminers/tokengate-backend/internal/snapshot"
)

func newTreeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build and inspect credential trees",
	}
	cmd.AddCommand(newTreeBuildCommand(opts), newTreeShowCommand(opts))
	return cmd
}

type buildView struct {
	CredentialID string `json:"credential_id"`
	Root         string `json:"root"`
	Holders      int    `json:"holders"`
	Pushed       bool   `json:"pushed"`
}

func newTreeBuildCommand(opts *RootOptions) *cobra.Command {
	var (
		indexURL    string
		indexAPIKey string
		cacheDir    string
		depth       int
		ringSize    int
	)
	cmd := &cobra.Command{
		Use:   "build <credential-id>",
		Short: "Snapshot holders and publish a new root for one credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger()
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			cred, err := store.GetCredential(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			balances, err := snapshot.NewClient(snapshot.Config{BaseURL: indexURL, APIKey: indexAPIKey},
				metrics.NewHTTPClient("balance_index"), logger)
			if err != nil {
				return err
			}
			cache, err := credential.NewBadgerTreeCache(cacheDir, logger)
			if err != nil {
				return err
			}
			defer cache.Close()
			builder, err := credential.NewBuilder(balances, store, cache, metrics.NewCredentialTree(), depth, ringSize, logger)
			if err != nil {
				return err
			}

			res, err := builder.Build(cmd.Context(), cred)
			if err != nil {
				return err
			}
			v := buildView{CredentialID: cred.ID, Root: res.Root, Holders: res.Holders, Pushed: res.Pushed}
			return opts.printer(cmd).line(v, "%s root=%s holders=%d pushed=%t", v.CredentialID, v.Root, v.Holders, v.Pushed)
		},
	}
	cmd.Flags().StringVar(&indexURL, "balance-index-url", "", "balance index base url (required)")
	_ = cmd.MarkFlagRequired("balance-index-url")
	cmd.Flags().StringVar(&indexAPIKey, "balance-index-api-key", "", "balance index api key")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "badger dir to publish the tree to, empty keeps it in memory")
	cmd.Flags().IntVar(&depth, "depth", credential.DefaultDepth, "tree depth")
	cmd.Flags().IntVar(&ringSize, "ring-size", credential.DefaultRingSize, "recent roots kept valid")
	return cmd
}

type rootView struct {
	Root      string `json:"root"`
	CreatedAt string `json:"created_at"`
}

type treeView struct {
	CredentialID string     `json:"credential_id"`
	Token        string     `json:"token"`
	ChainID      uint64     `json:"chain_id"`
	MinBalance   string     `json:"min_balance"`
	Roots        []rootView `json:"roots"`
}

func newTreeShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <credential-id>",
		Short: "Show a credential and its currently valid roots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			cred, err := store.GetCredential(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			roots, err := store.Roots(cmd.Context(), cred.ID)
			if err != nil {
				return err
			}
			v := treeView{
				CredentialID: cred.ID,
				Token:        cred.TokenAddress,
				ChainID:      cred.ChainID,
				MinBalance:   cred.MinBalance.String(),
				Roots:        make([]rootView, 0, len(roots)),
			}
			rows := make([][]string, 0, len(roots))
			for i, r := range roots {
				rv := rootView{Root: r.Root, CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339)}
				v.Roots = append(v.Roots, rv)
				rows = append(rows, []string{strconv.Itoa(i), rv.Root, rv.CreatedAt})
			}
			p := opts.printer(cmd)
			if p.json {
				return p.object(v)
			}
			if err := p.line(nil, "%s token=%s chain=%d min=%s", v.CredentialID, v.Token, v.ChainID, v.MinBalance); err != nil {
				return err
			}
			return p.table(nil, []string{"#", "ROOT", "CREATED"}, rows)
		},
	}
}
