package bootstrap

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/target/finance-web/config"
)

const redisPingTimeout = 5 * time.Second

// RedisConnectConfig contains configuration for the redis connection.
type RedisConnectConfig struct {
	Redis  config.RedisConfig
	Logger *slog.Logger
}

// ConnectRedis establishes a connection to Redis, picking a single, sentinel
// or cluster client from the configuration, and pings it before returning.
//
//nolint:ireturn // returning redis.UniversalClient lets us pick single, sentinel, or cluster clients at runtime.
func ConnectRedis(ctx context.Context, cfg RedisConnectConfig) (redis.UniversalClient, error) {
	client, addrDesc, err := newRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if cfg.Logger != nil {
		cfg.Logger.InfoContext(ctx, "redis connected", "addr", redactAddr(addrDesc))
	}

	return client, nil
}

//nolint:ireturn // see ConnectRedis.
func newRedisClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	switch {
	case cfg.UseCluster:
		return newClusterClient(cfg)
	case cfg.UseSentinel:
		return newSentinelClient(cfg)
	default:
		return newDirectClient(cfg)
	}
}

// redactAddr strips credentials from an address before it is logged.
func redactAddr(addr string) string {
	if u, err := url.Parse(addr); err == nil && u.User != nil {
		u.User = nil
		return u.String()
	}
	if i := strings.LastIndex(addr, "@"); i > -1 {
		return addr[i+1:]
	}
	return addr
}

//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func newClusterClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	addrs := normalizeAddrs(cfg.ClusterNodes)
	opts := &redis.ClusterOptions{Addrs: addrs, Password: cfg.Password}

	if len(addrs) == 0 {
		fallback, err := clusterFallbackFromURI(cfg.URI, cfg.Password)
		if err != nil {
			return nil, "", err
		}
		if fallback.addr != "" {
			opts.Addrs = []string{fallback.addr}
			opts.Username = fallback.username
			opts.Password = fallback.password
			opts.TLSConfig = fallback.tls
		}
	}

	if len(opts.Addrs) == 0 {
		return nil, "", errors.New("redis cluster configuration requires at least one address")
	}

	return redis.NewClusterClient(opts), "cluster:" + strings.Join(opts.Addrs, ","), nil
}

//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func newSentinelClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	nodes := normalizeAddrs(cfg.SentinelNodes)
	if len(nodes) == 0 {
		return nil, "", errors.New("redis sentinel configuration requires at least one sentinel node")
	}

	client := redis.NewFailoverClient(&redis.FailoverOptions{
		MasterName:       cfg.SentinelMasterName,
		SentinelAddrs:    nodes,
		Password:         cfg.Password,
		SentinelPassword: cfg.SentinelPassword,
	})
	return client, "sentinel:" + cfg.SentinelMasterName, nil
}

//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func newDirectClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return nil, "", errors.New("redis direct configuration requires a URI")
	}

	if isRedisURL(uri) {
		opt, err := redis.ParseURL(uri)
		if err != nil {
			return nil, "", fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), opt.Addr, nil
	}

	return redis.NewClient(&redis.Options{Addr: uri, Password: cfg.Password}), uri, nil
}

func normalizeAddrs(raw []string) []string {
	result := make([]string, 0, len(raw))
	for _, addr := range raw {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

type clusterFallback struct {
	addr     string
	username string
	password string
	tls      *tls.Config
}

// clusterFallbackFromURI lets REDIS_URI seed a cluster when no nodes are listed.
func clusterFallbackFromURI(uri, defaultPassword string) (clusterFallback, error) {
	out := clusterFallback{password: defaultPassword}
	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return out, nil
	}
	if !isRedisURL(trimmed) {
		out.addr = trimmed
		return out, nil
	}

	opt, err := redis.ParseURL(trimmed)
	if err != nil {
		return out, fmt.Errorf("parse redis cluster url: %w", err)
	}
	out.addr = opt.Addr
	out.username = opt.Username
	out.tls = opt.TLSConfig
	if opt.Password != "" {
		out.password = opt.Password
	}
	return out, nil
}

func isRedisURL(value string) bool {
	return strings.HasPrefix(value, "redis://") || strings.HasPrefix(value, "rediss://")
}
