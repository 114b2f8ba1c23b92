// Package cmd implements the yclists command line: the MCP server and
// operator subcommands that query the same dataset.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mieltoinc/yclistdedalus/internal/config"
	"github.com/mieltoinc/yclistdedalus/internal/domain"
	"github.com/mieltoinc/yclistdedalus/internal/logger"
	"github.com/mieltoinc/yclistdedalus/internal/query"
	"github.com/mieltoinc/yclistdedalus/internal/retry"
	"github.com/mieltoinc/yclistdedalus/internal/store"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	dataSource string
	debug      bool
}

// Execute runs the root command until it finishes or SIGINT/SIGTERM arrives.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "yclists",
		Short: "MCP server for querying the Y Combinator company directory",
		Long: `yclists loads the YC company directory and serves it to MCP clients over
stdio (default) or HTTP. The query subcommands run the same engine from the
terminal.

Examples:
  # Serve MCP over stdio
  yclists --stdio

  # Serve MCP over HTTP on port 5000
  yclists --port 5000

  # Fintech companies that are hiring
  yclists search --industry Fintech --hiring`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $CONFIG_PATH or ./config.yml)")
	pf.StringVar(&flags.dataSource, "data", "", "dataset file path or http(s) URL (overrides dataset.path/url)")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	addServeFlags(root, flags)

	root.AddCommand(
		newSearchCmd(flags),
		newStatsCmd(flags),
		newCompanyCmd(flags),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		path = config.GetConfigPath(config.DefaultConfigPath)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flags.debug {
		cfg.Service.Debug = true
		cfg.Logging.Level = "debug"
	}
	if flags.dataSource != "" {
		if isURL(flags.dataSource) {
			cfg.Dataset.URL = flags.dataSource
			cfg.Dataset.Path = ""
		} else {
			cfg.Dataset.Path = flags.dataSource
			cfg.Dataset.URL = ""
		}
	}
	return cfg, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// newLogger builds the service logger writing to outputPath.
func newLogger(cfg *config.Config, outputPath string) (logger.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: !cfg.IsProduction() && cfg.Service.Debug,
		OutputPaths: []string{outputPath},
	})
}

// loadDataset loads the configured dataset. A failed load is logged and
// yields an empty store, so callers always get something to query.
func loadDataset(ctx context.Context, cfg *config.Config, log logger.Logger) *store.Store {
	rc := retry.DefaultConfig()
	rc.MaxAttempts = cfg.Dataset.MaxRetries + 1

	src := store.Source{Path: cfg.Dataset.Path, URL: cfg.Dataset.URL}
	st, err := store.Load(ctx, src,
		store.WithTimeout(cfg.Dataset.Timeout),
		store.WithRetry(rc),
		store.WithLogger(log),
	)
	if err != nil {
		log.Error("Failed to load dataset",
			logger.String("source", src.String()),
			logger.Error(err),
		)
		return st
	}

	log.Info("Dataset loaded",
		logger.String("source", st.Source()),
		logger.Int("companies", st.Count()),
	)
	return st
}

func limits(cfg *config.Config) domain.Limits {
	return domain.Limits{
		DefaultPageSize: cfg.Query.DefaultPageSize,
		MaxPageSize:     cfg.Query.MaxPageSize,
	}
}

// queryEnv is what the query subcommands share.
type queryEnv struct {
	cfg     *config.Config
	log     logger.Logger
	store   *store.Store
	service *query.Service
}

// setupQuery loads config and dataset for a one-shot query. Logs go to
// stderr so stdout carries only the rendered result.
func setupQuery(cmd *cobra.Command, flags *globalFlags) (*queryEnv, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	if !flags.debug {
		cfg.Logging.Level = "warn"
	}

	log, err := newLogger(cfg, "stderr")
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	st := loadDataset(cmd.Context(), cfg, log)
	return &queryEnv{
		cfg:     cfg,
		log:     log,
		store:   st,
		service: query.NewService(st, log),
	}, nil
}
