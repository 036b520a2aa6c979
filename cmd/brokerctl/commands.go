package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"broker/internal/bootstrap"
	"broker/internal/dashboard"
	"broker/internal/evidence/entities"
	"broker/internal/evidence/licenses"
	"broker/internal/platform/config"
	"broker/internal/platform/logger"
	"broker/internal/profile"
	"broker/internal/profile/store"
	"broker/pkg/domain"
)

type app struct {
	service *profile.Service
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var verbose bool

	root := &cobra.Command{
		Use:          "brokerctl",
		Short:        "Look up Norwegian organisations in public registries",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			level := "warn"
			if verbose {
				level = "debug"
			}
			a.logger = logger.NewWithWriter(cmd.ErrOrStderr(), level, "text")

			svc, err := bootstrap.NewUpstreams(cfg, a.logger).NewService(
				profile.WithLogger(a.logger),
				profile.WithStore(store.NewInMemoryStore(0)),
				profile.WithEvidenceTimeout(cfg.Upstreams.Timeout),
			)
			if err != nil {
				return err
			}
			a.service = svc
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log upstream calls to stderr")

	root.AddCommand(newSearchCmd(a), newProfileCmd(a), newLicensesCmd(a))
	return root
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		kommune string
		size    int
	)
	cmd := &cobra.Command{
		Use:   "search NAME",
		Short: "Search the entity registry by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.service.Search(cmd.Context(), entities.SearchQuery{
				Name:             strings.Join(args, " "),
				MunicipalityCode: kommune,
				Size:             size,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderSearch(results))
			return nil
		},
	}
	cmd.Flags().StringVar(&kommune, "kommune", "", "municipality number filter")
	cmd.Flags().IntVar(&size, "size", entities.DefaultPageSize, "maximum number of results (1-100)")
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "profile ORGNR",
		Short: "Show the broker profile of an organisation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			orgnr, err := domain.ParseOrgNumber(args[0])
			if err != nil {
				return err
			}
			p, err := a.service.Profile(ctx, orgnr)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}

			records, err := a.service.Licenses(ctx, orgnr)
			if err != nil {
				a.logger.WarnContext(ctx, "license lookup failed", "orgnr", orgnr, "error", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderProfile(p, records))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw profile as JSON")
	return cmd
}

func newLicensesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "licenses ORGNR",
		Short: "List licenses registered with the financial supervisory authority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgnr, err := domain.ParseOrgNumber(args[0])
			if err != nil {
				return err
			}
			records, err := a.service.Licenses(cmd.Context(), orgnr)
			if err != nil {
				return err
			}
			if records == nil {
				records = []licenses.LicenseRecord{}
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"orgnr": orgnr, "licenses": records})
			}
			fmt.Fprintln(cmd.OutOrStdout(), dashboard.RenderLicenses(records))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the records as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
