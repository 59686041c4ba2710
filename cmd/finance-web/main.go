package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/target/finance-web/config"
	"github.com/target/finance-web/internal/bootstrap"
	"github.com/target/finance-web/internal/service"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.API.Debug {
		logger = bootstrap.NewLogger(true)
	}

	logStartupInfo(ctx, logger, &cfg)

	api, err := bootstrap.BuildFinanceClient(cfg.API, logger)
	if err != nil {
		return err
	}

	redisClient, err := initInfrastructure(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	auth, err := bootstrap.BuildAuth(ctx, bootstrap.AuthConfig{
		Auth:        cfg.Auth,
		API:         api,
		RedisClient: redisClient,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("build auth: %w", err)
	}

	srv, err := bootstrap.StartHTTPServer(ctx, &bootstrap.HTTPServerConfig{
		Config:  &cfg,
		Auth:    auth,
		Finance: service.NewFinanceService(service.FinanceServiceOptions{API: api}),
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("start http server: %w", err)
	}

	return bootstrap.WaitForShutdown(ctx, srv, logger)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting finance web",
		"api_base_url", cfg.API.BaseURL,
		"api_timeout", cfg.API.Timeout,
		"guard_mode", cfg.Auth.GuardMode,
		"http_addr", cfg.HTTP.Addr,
		"dev", cfg.IsDev)
}

// initInfrastructure connects redis when the session store needs it.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func initInfrastructure(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	if !cfg.UsesRedis() {
		return nil, nil
	}
	client, err := bootstrap.ConnectRedis(ctx, bootstrap.RedisConnectConfig{
		Redis:  cfg.Redis,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}
