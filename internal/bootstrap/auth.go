package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/target/finance-web/config"
	"github.com/target/finance-web/internal/adapters/memory"
	redisadapter "github.com/target/finance-web/internal/adapters/redis"
	httpx "github.com/target/finance-web/internal/http"
	"github.com/target/finance-web/internal/ports"
	"github.com/target/finance-web/internal/service"
)

// AuthConfig contains configuration for the auth wiring.
type AuthConfig struct {
	Auth        config.AuthConfig
	API         ports.FinanceAPI
	RedisClient redis.UniversalClient // required for the redis session store
	Logger      *slog.Logger
}

// AuthComponents is the auth service paired with the guard's authenticator.
type AuthComponents struct {
	Service       *service.AuthService
	Authenticator httpx.Authenticator
	// Sessions is nil in flag mode.
	Sessions ports.SessionStore
}

// BuildAuth wires the auth service and navigation authenticator for the configured guard mode.
func BuildAuth(ctx context.Context, cfg AuthConfig) (*AuthComponents, error) {
	if cfg.API == nil {
		return nil, errors.New("finance API client is required")
	}

	switch cfg.Auth.GuardMode {
	case config.GuardModeFlag, "":
		logInfo(ctx, cfg.Logger, "auth guard configured", "mode", config.GuardModeFlag)
		return &AuthComponents{
			Service:       service.NewAuthService(service.AuthServiceOptions{API: cfg.API}),
			Authenticator: httpx.FlagAuthenticator{},
		}, nil

	case config.GuardModeSession:
		store, err := buildSessionStore(cfg)
		if err != nil {
			return nil, err
		}
		svc := service.NewAuthService(service.AuthServiceOptions{
			API:      cfg.API,
			Sessions: store,
			TTL:      cfg.Auth.SessionTTL,
		})
		logInfo(ctx, cfg.Logger, "auth guard configured",
			"mode", config.GuardModeSession,
			"store", cfg.Auth.SessionStore,
			"ttl", cfg.Auth.SessionTTL,
		)
		return &AuthComponents{
			Service:       svc,
			Authenticator: httpx.SessionAuthenticator{Sessions: svc},
			Sessions:      store,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported auth guard mode %q", cfg.Auth.GuardMode)
	}
}

//nolint:ireturn // the store kind is chosen at runtime.
func buildSessionStore(cfg AuthConfig) (ports.SessionStore, error) {
	switch cfg.Auth.SessionStore {
	case config.SessionStoreRedis:
		if cfg.RedisClient == nil {
			return nil, errors.New("redis session store requires a redis client")
		}
		return redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, cfg.Auth.SessionKeyPrefix), nil
	case config.SessionStoreMemory, "":
		return memory.NewSessionStore(), nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.Auth.SessionStore)
	}
}

func logInfo(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.InfoContext(ctx, msg, args...)
	}
}
