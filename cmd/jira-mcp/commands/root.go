package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jira-mcp/internal/config"
	"jira-mcp/internal/jira"
	"jira-mcp/internal/logging"
	"jira-mcp/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose  bool
	httpAddr string
	cfg      *config.AppConfig

	jiraClient jira.Client
)

var rootCmd = &cobra.Command{
	Use:   "jira-mcp",
	Short: "jira-mcp is an MCP Server for Jira Cloud",
	Long: `An MCP Server that lets tool-calling clients read, search, create and update
Jira Cloud issues, list comments and workflow transitions, and extract acceptance criteria.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// Initialize Jira Client
		jiraClient = jira.NewClient(cfg.Jira)

		logStartup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := mcp.NewServer(mcp.NewDispatcher(jiraClient, cfg.Jira), Version)
		if httpAddr == "" {
			return server.Run(ctx)
		}
		return serveHTTP(ctx, httpAddr, server.HTTPHandler())
	},
}

// logStartup writes the one startup line. The serving mode is part of it so the
// server itself stays quiet until requests arrive.
func logStartup(cmd *cobra.Command) {
	event := log.Info().
		Str("version", Version).
		Str("commit", Commit).
		Str("buildDate", BuildDate).
		Str("jira", cfg.Jira.BaseURL).
		Str("logDir", cfg.LogDir)
	switch {
	case cmd.HasParent():
		event = event.Str("command", cmd.Name())
	case httpAddr != "":
		event = event.Str("transport", "http").Str("addr", httpAddr)
	default:
		event = event.Str("transport", "stdio")
	}
	event.Msg("jira-mcp starting")
}

// skipSetup replaces the root PersistentPreRun for commands that never reach Jira,
// so they neither create the log directory nor warn about unset credentials.
func skipSetup(*cobra.Command, []string) {}

// serveHTTP runs the listener until ctx ends, then shuts it down gracefully.
func serveHTTP(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Debug().Str("addr", addr).Msg("HTTP listener started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("Shutting down HTTP listener")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().StringVar(&httpAddr, "http", "", "serve streamable HTTP on this address (e.g. :8080) instead of stdio")
}
