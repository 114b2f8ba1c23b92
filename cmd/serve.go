package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mieltoinc/yclistdedalus/internal/api"
	"github.com/mieltoinc/yclistdedalus/internal/config"
	"github.com/mieltoinc/yclistdedalus/internal/logger"
	"github.com/mieltoinc/yclistdedalus/internal/mcp"
	"github.com/mieltoinc/yclistdedalus/internal/metrics"
	"github.com/mieltoinc/yclistdedalus/internal/query"
)

type serveFlags struct {
	stdio bool
	http  bool
	port  int
}

// addServeFlags makes the root command itself the server.
func addServeFlags(root *cobra.Command, flags *globalFlags) {
	sf := &serveFlags{}
	root.Flags().BoolVar(&sf.stdio, "stdio", false, "serve MCP over stdin/stdout (default transport)")
	root.Flags().BoolVar(&sf.http, "http", false, "serve MCP over HTTP on the configured port")
	root.Flags().IntVar(&sf.port, "port", 0, "serve MCP over HTTP on this port")
	root.MarkFlagsMutuallyExclusive("stdio", "http")
	root.MarkFlagsMutuallyExclusive("stdio", "port")

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd, flags, sf)
	}
}

func (sf *serveFlags) useHTTP() bool {
	return !sf.stdio && (sf.http || sf.port != 0)
}

func runServe(cmd *cobra.Command, flags *globalFlags, sf *serveFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if sf.port != 0 {
		cfg.Service.Port = sf.port
		if validateErr := cfg.Validate(); validateErr != nil {
			return fmt.Errorf("invalid configuration: %w", validateErr)
		}
	}

	// stdout is reserved for protocol frames in stdio mode.
	output := "stdout"
	if !sf.useHTTP() {
		output = "stderr"
	}
	log, err := newLogger(cfg, output)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log = log.With(logger.String("service", cfg.Service.Name))
	ctx := cmd.Context()

	st := loadDataset(ctx, cfg, log)
	m := metrics.New()
	m.SetDataset(st.Count(), st.Loaded())

	mcpServer, err := mcp.NewServer(query.NewService(st, log), st,
		mcp.WithLogger(log),
		mcp.WithRecorder(m),
		mcp.WithLimits(limits(cfg)),
		mcp.WithServerInfo(cfg.Service.Name, cfg.Service.Version),
	)
	if err != nil {
		return fmt.Errorf("create mcp server: %w", err)
	}

	if sf.useHTTP() {
		return serveHTTP(cmd, cfg, mcpServer, st, m, log)
	}

	log.Info("Serving MCP over stdio", logger.Int("tools", len(mcpServer.Tools())))
	if serveErr := mcpServer.ServeStdio(ctx, os.Stdin, os.Stdout); serveErr != nil && ctx.Err() == nil {
		return fmt.Errorf("stdio transport: %w", serveErr)
	}
	return nil
}

func serveHTTP(
	cmd *cobra.Command,
	cfg *config.Config,
	mcpServer *mcp.Server,
	dataset mcp.Dataset,
	m *metrics.Metrics,
	log logger.Logger,
) error {
	srv := api.NewServer(api.NewConfig(cfg), mcpServer, dataset, log, api.WithMetrics(m))
	return srv.Run(cmd.Context())
}
