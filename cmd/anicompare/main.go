package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PizzaHomicide/anicompare/internal/api"
	"github.com/PizzaHomicide/anicompare/internal/compare"
	"github.com/PizzaHomicide/anicompare/internal/config"
	"github.com/PizzaHomicide/anicompare/internal/log"
	"github.com/PizzaHomicide/anicompare/internal/repository/anilist"
	"github.com/PizzaHomicide/anicompare/internal/service"
	"github.com/PizzaHomicide/anicompare/internal/ui/tui"
	"github.com/PizzaHomicide/anicompare/internal/version"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "anicompare",
		Short:         "Compare the anime lists of two AniList users",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompareCmd(a), newServeCmd(a), newVersionCmd())
	return root
}

// setup loads the config and the logger.  The TUI owns the terminal so it logs to file, everything else to stderr.
// Callers must defer close once setup succeeds.
func (a *app) setup(stderrLogs bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.New(log.Config{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.FilePath,
		Stderr:   stderrLogs,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise logger: %w", err)
	}

	log.SetDefaultLogger(logger)
	a.cfg, a.logger = cfg, logger
	log.Info("Starting up anicompare", "version", version.Version, "build_time", version.BuildTime)
	return nil
}

// close releases the logger installed by setup, whichever way the command ended
func (a *app) close() {
	log.SetDefaultLogger(nil)
	if a.logger != nil {
		a.logger.Close()
		a.logger = nil
	}
}

func (a *app) newService() *service.ComparisonService {
	client := anilist.NewClient(anilist.Options{
		Endpoint:   a.cfg.AniList.Endpoint,
		Timeout:    a.cfg.AniList.Timeout,
		MaxRetries: a.cfg.AniList.MaxRetries,
	})
	repo := anilist.NewCollectionRepository(client)
	return service.NewComparisonService(repo, a.cfg.Cache.TTL, a.cfg.Cache.CleanupInterval)
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		asJSON    bool
		fromFiles bool
	)

	cmd := &cobra.Command{
		Use:   "compare <user1> <user2>",
		Short: "Compare two users interactively, or print the comparison as JSON",
		Long: "Compare two users interactively, or print the comparison as JSON.\n\n" +
			"With --files the arguments are paths to saved MediaListCollection documents instead of user names.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(asJSON); err != nil {
				return err
			}
			defer a.close()

			load := a.loader(args[0], args[1], fromFiles)
			if asJSON {
				result, err := load(cmd.Context(), false)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if err := tui.Run(a.cfg, args[0], args[1], load); err != nil {
				log.Error("Unhandled error while running TUI", "error", err)
				return err
			}
			log.Info("anicompare shutting down.  Goodbye!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the comparison as JSON instead of starting the TUI")
	cmd.Flags().BoolVar(&fromFiles, "files", false, "treat the arguments as paths to saved collection documents")
	return cmd
}

// loader builds the function producing the comparison, either from AniList or from saved documents
func (a *app) loader(arg1, arg2 string, fromFiles bool) func(ctx context.Context, refresh bool) (*compare.Result, error) {
	svc := a.newService()

	if fromFiles {
		return func(_ context.Context, _ bool) (*compare.Result, error) {
			doc1, err := anilist.LoadDocument(arg1)
			if err != nil {
				return nil, err
			}
			doc2, err := anilist.LoadDocument(arg2)
			if err != nil {
				return nil, err
			}
			return svc.CompareDocuments(doc1, doc2)
		}
	}

	return func(ctx context.Context, refresh bool) (*compare.Result, error) {
		if refresh {
			svc.Forget(arg1, arg2)
		}
		return svc.Compare(ctx, arg1, arg2)
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve comparisons over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(true); err != nil {
				return err
			}
			defer a.close()
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.NewServer(addr, a.newService()).Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overriding the configured server.addr")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo())
		},
	}
}
