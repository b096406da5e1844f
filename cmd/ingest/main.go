package main

import (
	"fmt"
	"log/slog"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/avelent/draftday/internal/app"
	"github.com/avelent/draftday/internal/config"
	"github.com/avelent/draftday/internal/platform/logging"
	"github.com/avelent/draftday/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type ingestEnv struct {
	cfg      config.Config
	services *app.Services
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	var season int
	var env *ingestEnv

	root := &cobra.Command{
		Use:           "ingest",
		Short:         "Run draftday source imports from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: logging.SlogLevel(cfg.LogLevel),
			}))
			logging.SetDefault(logging.NewJSON(cfg.LogLevel))

			services, err := app.NewServices(cfg, logger)
			if err != nil {
				return fmt.Errorf("build services: %w", err)
			}
			if season <= 0 {
				season = cfg.Season
			}
			env = &ingestEnv{cfg: cfg, services: services, logger: logger}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if env == nil {
				return nil
			}
			return env.services.Close()
		},
	}
	root.PersistentFlags().IntVar(&season, "season", 0, "season to import for (defaults to APP_SEASON)")

	root.AddCommand(&cobra.Command{
		Use:   "players",
		Short: "Import the player catalog from Sleeper",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printResult(env.services.Catalog.ImportPlayers(cmd.Context(), season))
		},
	})

	rankings := &cobra.Command{
		Use:   "rankings <file-or-url>",
		Short: "Import consensus rankings from a CSV file or a ranking page URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(env.services.Rankings.ImportAuto(cmd.Context(), season, args[0]))
		},
	}
	root.AddCommand(rankings)

	var adpSource string
	adp := &cobra.Command{
		Use:   "adp <file-or-url>",
		Short: "Import average draft position data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(env.services.ADP.ImportAuto(cmd.Context(), season, args[0], adpSource))
		},
	}
	adp.Flags().StringVar(&adpSource, "source", "", "source label for the ADP provider (default fp_composite)")
	root.AddCommand(adp)

	root.AddCommand(&cobra.Command{
		Use:   "injuries",
		Short: "Import the league-wide injury report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printResult(env.services.Injury.ImportInjuries(cmd.Context(), season))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "seed <file>",
		Short: "Import an authoritative seed CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(env.services.Seed.ImportSeedCSV(cmd.Context(), args[0]))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Load the built-in demo dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printResult(env.services.Seed.ImportDemo(cmd.Context(), season))
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every configured source for the season",
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := env.services.Refresh.RefreshAll(cmd.Context(), season)
			if err != nil {
				return err
			}
			out, err := sonic.ConfigDefault.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("encode results: %w", err)
			}
			fmt.Println(string(out))
			for name, result := range results {
				if len(result.Errors) > 0 {
					return fmt.Errorf("source %s finished with errors", name)
				}
			}
			return nil
		},
	})

	return root
}

func printResult(result usecase.IngestResult) error {
	out, err := sonic.ConfigDefault.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	if len(result.Errors) > 0 {
		return fmt.Errorf("import finished with errors")
	}
	return nil
}
