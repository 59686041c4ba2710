package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/target/finance-web/config"
	httpx "github.com/target/finance-web/internal/http"
	"github.com/target/finance-web/internal/service"
)

const shutdownTimeout = 10 * time.Second

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config  *config.AppConfig
	Auth    *AuthComponents
	Finance *service.FinanceService
	Logger  *slog.Logger
}

func (c *HTTPServerConfig) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// BuildHTTPHandler builds the router with middleware.
// Order: Recover -> Logging -> Router (guard runs inside the router).
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Finance == nil {
		return nil, errors.New("http server requires auth and finance services")
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}
	logger := cfg.logger()

	router, err := httpx.NewRouter(httpx.RouterServices{
		Auth:          cfg.Auth.Service,
		Finance:       cfg.Finance,
		Authenticator: cfg.Auth.Authenticator,
		CookieDomain:  appCfg.HTTP.CookieDomain,
		IsDev:         appCfg.IsDev,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	return httpx.Chain(router, httpx.Recover(logger), httpx.Logging(logger)), nil
}

// Server is a running HTTP server and the channel its serve error arrives on.
type Server struct {
	HTTP *http.Server
	// Addr is the bound listener address, useful when configured with port 0.
	Addr string
	errs chan error
}

// Errors reports a serve failure other than a clean shutdown.
func (s *Server) Errors() <-chan error { return s.errs }

// StartHTTPServer binds the configured address and serves in the background.
func StartHTTPServer(ctx context.Context, cfg *HTTPServerConfig) (*Server, error) {
	handler, err := BuildHTTPHandler(cfg)
	if err != nil {
		return nil, err
	}

	addr := ":8081"
	if cfg.Config != nil && cfg.Config.HTTP.Addr != "" {
		addr = cfg.Config.HTTP.Addr
	}

	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		HTTP: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		Addr: ln.Addr().String(),
		errs: make(chan error, 1),
	}

	logger := cfg.logger()
	go func() {
		logger.Info("starting HTTP server", "addr", srv.Addr)
		if serveErr := srv.HTTP.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", serveErr)
			srv.errs <- serveErr
		}
		close(srv.errs)
	}()

	return srv, nil
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, srv *Server, logger *slog.Logger) error {
	if srv == nil || srv.HTTP == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.HTTP.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("HTTP server stopped")
	return nil
}

// WaitForShutdown blocks until SIGINT/SIGTERM, ctx cancellation or a serve
// failure, then stops the server.
func WaitForShutdown(ctx context.Context, srv *Server, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		logger.Info("shutdown signal received")
		return ShutdownHTTPServer(ctx, srv, logger)
	case <-ctx.Done():
		return ShutdownHTTPServer(ctx, srv, logger)
	case err, ok := <-srv.Errors():
		if !ok {
			return nil
		}
		if stopErr := ShutdownHTTPServer(ctx, srv, logger); stopErr != nil {
			logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}
