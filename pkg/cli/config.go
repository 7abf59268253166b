package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sarefinport/sarefinport/pkg/config"
	"github.com/sarefinport/sarefinport/pkg/logging"
)

// serveFlags override configuration values. Commands register the subset
// they use; unregistered flags are never Changed.
type serveFlags struct {
	host     string
	port     int
	basePath string
	dbDriver string
	dbURL    string
	logLevel string
}

var serveOpts serveFlags

func addServeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&serveOpts.host, "host", "", "Interface to listen on")
	f.IntVarP(&serveOpts.port, "port", "p", 0, "HTTP port (default 3000)")
	f.StringVar(&serveOpts.basePath, "base-path", "", "Path prefix for API routes (default /api)")
	addDatabaseFlags(cmd)
}

func addDatabaseFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&serveOpts.dbDriver, "db-driver", "", "Database driver: sqlite or postgres")
	f.StringVar(&serveOpts.dbURL, "database-url", "", "SQLite file path or Postgres connection string")
	f.StringVar(&serveOpts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

// loadConfig builds and validates the configuration for cmd. Only flags the
// user actually set override file and environment values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("host") {
		cfg.Server.Host = serveOpts.host
	}
	if f.Changed("port") {
		cfg.Server.Port = serveOpts.port
	}
	if f.Changed("base-path") {
		cfg.Server.BasePath = serveOpts.basePath
	}
	if f.Changed("db-driver") {
		cfg.Database.Driver = serveOpts.dbDriver
	}
	if f.Changed("database-url") {
		cfg.Database.URL = serveOpts.dbURL
	}
	if f.Changed("log-level") {
		cfg.Log.Level = serveOpts.logLevel
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logging.FromStrings(cfg.Log.Level, cfg.Log.Format, w).With("service", "sarefinport")
}
