//go:build integration

package integrationtest

import (
	"context"
	"sync"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/popcorn/core/internal/config"
	infra_pg_init "github.com/humanbelnik/popcorn/core/internal/infra/postgres/init"
	infra_pg_migrate "github.com/humanbelnik/popcorn/core/internal/infra/postgres/migrate"
	infra_redis_init "github.com/humanbelnik/popcorn/core/internal/infra/redis/init"
	"github.com/jmoiron/sqlx"
)

var (
	cfg     *config.Config
	cfgOnce sync.Once

	pgConn    *sqlx.DB
	redisConn *redis.Client
	connOnce  sync.Once
)

func getConfig() *config.Config {
	cfgOnce.Do(func() {
		cfg = config.FromEnv()
	})
	return cfg
}

// connections opens postgres and redis once per test binary and migrates the
// schema to the latest version.
func connections() (*sqlx.DB, *redis.Client) {
	connOnce.Do(func() {
		c := getConfig()
		pgConn = infra_pg_init.MustEstablishConn(c.Postgres)
		redisConn = infra_redis_init.MustEstablishConn(c.Redis)
		if err := infra_pg_migrate.Up(context.Background(), pgConn.DB); err != nil {
			panic(err)
		}
	})
	return pgConn, redisConn
}
