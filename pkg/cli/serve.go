package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sarefinport/sarefinport/pkg/api"
	"github.com/sarefinport/sarefinport/pkg/auth"
	"github.com/sarefinport/sarefinport/pkg/config"
	"github.com/sarefinport/sarefinport/pkg/metrics"
	"github.com/sarefinport/sarefinport/pkg/store"
	"github.com/sarefinport/sarefinport/pkg/store/gormstore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server (default command)",
	Long: `Start the API server.

The schema is migrated on startup. The server stops gracefully on SIGINT or
SIGTERM, waiting up to server.shutdownTimeout for in-flight requests.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}
	return serve(ctx, cfg, log, ln)
}

// serve runs the API on ln until ctx is done, then shuts down gracefully.
// ln is closed on return.
func serve(ctx context.Context, cfg *config.Config, log *slog.Logger, ln net.Listener) error {
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		_ = ln.Close()
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("close database", "error", err)
		}
	}()

	handler, err := buildAPI(cfg, st, log)
	if err != nil {
		_ = ln.Close()
		return err
	}
	srv := newHTTPServer(cfg, handler, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Info("server listening",
		"addr", ln.Addr().String(),
		"basePath", handler.BasePath(),
		"database", cfg.Database.Driver,
		"login", handler.LoginEnabled(),
		"version", Version,
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// openStore connects to the configured database and migrates the schema.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gormstore.Store, error) {
	st, err := gormstore.Open(cfg.Database.Driver, cfg.Database.URL,
		gormstore.WithLogger(log.With("component", "store")),
		gormstore.WithQueryTimeout(cfg.Database.QueryTimeout),
		gormstore.WithMaxOpenConns(cfg.Database.MaxOpenConns),
	)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

func buildAPI(cfg *config.Config, st store.Store, log *slog.Logger) (*api.API, error) {
	secret := []byte(cfg.Auth.JWTSecret)
	verifier, err := auth.NewVerifier(secret, cfg.Auth.Issuer)
	if err != nil {
		return nil, err
	}

	cors := api.DefaultCORSConfig()
	cors.AllowedOrigins = cfg.CORS.AllowedOrigins

	opts := []api.Option{
		api.WithLogger(log.With("component", "api")),
		api.WithMetrics(metrics.New()),
		api.WithBasePath(cfg.Server.BasePath),
		api.WithCORS(cors),
		api.WithVersion(Version),
	}
	if cfg.LoginEnabled() {
		issuer, err := auth.NewIssuer(secret, cfg.Auth.Issuer)
		if err != nil {
			return nil, err
		}
		opts = append(opts, api.WithLogin(issuer, auth.Credentials{
			Email:        cfg.Auth.AdminEmail,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		}, cfg.Auth.TokenTTL))
	}
	return api.New(st, verifier, opts...), nil
}

func newHTTPServer(cfg *config.Config, h http.Handler, log *slog.Logger) *http.Server {
	return &http.Server{
		Handler:           h,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       2 * cfg.Server.ReadTimeout,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}
}
