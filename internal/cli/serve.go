package cli

import (
	"fmt"

	"skilladvisor/internal/advisor"
	"skilladvisor/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for the advisory pipeline",
	Long: `Start an HTTP server that provides REST API endpoints for the
advisory pipeline.

Available endpoints:
- POST /advise: Full pipeline (recommendations, plan, chart specs)
- POST /extract: Resume extraction only
- GET /plan/download: Download the learning plan as a JSON file
- GET /catalog: Current role catalog
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info

With --watch-catalog and a catalog file configured, catalog edits are
hot-reloaded without restarting the server.`,
	RunE: runServe,
}

var (
	servePort         string
	serveHost         string
	serveCatalogFile  string
	serveWatchCatalog bool
)

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&serveCatalogFile, "catalog", "", "Role catalog YAML file (default from config)")
	serveCmd.Flags().BoolVar(&serveWatchCatalog, "watch-catalog", false, "Hot-reload the catalog file on change")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Apply flag overrides
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if serveCatalogFile != "" {
		cfg.Advisor.CatalogFile = serveCatalogFile
	}
	if cmd.Flags().Changed("watch-catalog") {
		cfg.Advisor.WatchCatalog = serveWatchCatalog
	}

	catalog, err := cfg.ResolveCatalog()
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}
	svc := advisor.NewService(catalog, cfg.Advisor.TopRoles, logger)

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.App.MaxFileSize,
		RateLimit:      &cfg.Server.RateLimit,
	}
	return server.NewServer(cfg, svc, serverCfg, logger).Start()
}
