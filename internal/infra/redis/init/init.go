package infra_redis_init

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/popcorn/core/internal/config"
)

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 3 * time.Second
	poolSize    = 20
)

func options(cfg config.RedisCache) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		PoolSize:     poolSize,
	}
}

// Connect returns a client for the party cache once it answers PING.
func Connect(cfg config.RedisCache) (*redis.Client, error) {
	client := redis.NewClient(options(cfg))
	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	return client, nil
}

func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client, err := Connect(cfg)
	if err != nil {
		slog.Error("redis unavailable", slog.String("error", err.Error()))
		os.Exit(1)
	}

	return client
}
