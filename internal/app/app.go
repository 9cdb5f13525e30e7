package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/humanbelnik/popcorn/core/internal/config"
	http_init "github.com/humanbelnik/popcorn/core/internal/delivery/http/init"
	http_metrics "github.com/humanbelnik/popcorn/core/internal/delivery/http/metrics"
	http_participant_middleware "github.com/humanbelnik/popcorn/core/internal/delivery/http/middleware/participant"
	http_movie "github.com/humanbelnik/popcorn/core/internal/delivery/http/movie"
	http_party "github.com/humanbelnik/popcorn/core/internal/delivery/http/party"
	http_preference "github.com/humanbelnik/popcorn/core/internal/delivery/http/preference"
	http_selection "github.com/humanbelnik/popcorn/core/internal/delivery/http/selection"
	http_vote "github.com/humanbelnik/popcorn/core/internal/delivery/http/vote"
	infra_pg_init "github.com/humanbelnik/popcorn/core/internal/infra/postgres/init"
	infra_postgres_movie "github.com/humanbelnik/popcorn/core/internal/infra/postgres/movie"
	infra_postgres_party "github.com/humanbelnik/popcorn/core/internal/infra/postgres/party"
	infra_postgres_preference "github.com/humanbelnik/popcorn/core/internal/infra/postgres/preference"
	infra_postgres_vote "github.com/humanbelnik/popcorn/core/internal/infra/postgres/vote"
	infra_recommender "github.com/humanbelnik/popcorn/core/internal/infra/recommender"
	infra_redis_counter "github.com/humanbelnik/popcorn/core/internal/infra/redis/counter"
	infra_redis_init "github.com/humanbelnik/popcorn/core/internal/infra/redis/init"
	infra_redis_party "github.com/humanbelnik/popcorn/core/internal/infra/redis/party"
	infra_redis_selection "github.com/humanbelnik/popcorn/core/internal/infra/redis/selection"
	infra_redis_summary "github.com/humanbelnik/popcorn/core/internal/infra/redis/summary"
	"github.com/humanbelnik/popcorn/core/internal/metrics"
	usecase_catalog "github.com/humanbelnik/popcorn/core/internal/usecase/catalog"
	usecase_party "github.com/humanbelnik/popcorn/core/internal/usecase/party"
	usecase_preference "github.com/humanbelnik/popcorn/core/internal/usecase/preference"
	usecase_selection "github.com/humanbelnik/popcorn/core/internal/usecase/selection"
	usecase_vote "github.com/humanbelnik/popcorn/core/internal/usecase/vote"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func Go(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	selectionMetrics := metrics.NewSelectionMetrics(registry)

	partyRepository := infra_postgres_party.New(pgConn)
	preferenceRepository := infra_postgres_preference.New(pgConn)
	movieRepository := infra_postgres_movie.New(pgConn)
	voteRepository := infra_postgres_vote.New(pgConn)

	partyCache := infra_redis_party.New(redisConn, cfg.Redis.TTL)
	summaryCache := infra_redis_summary.New(redisConn, cfg.Redis.TTL)
	counters := infra_redis_counter.New(redisConn, cfg.Redis.TTL)
	selectionCache := infra_redis_selection.New(redisConn, cfg.Redis.TTL)

	partyUC := usecase_party.New(partyRepository, partyCache,
		usecase_party.WithLogger(logger),
		usecase_party.WithLifetime(cfg.Redis.TTL),
	)
	preferenceUC := usecase_preference.New(preferenceRepository, summaryCache, counters,
		usecase_preference.WithLogger(logger),
		usecase_preference.WithLifetime(cfg.Redis.TTL),
	)
	voteUC := usecase_vote.New(voteRepository, partyRepository, counters, partyCache,
		usecase_vote.WithLogger(logger),
	)
	catalogUC := usecase_catalog.New(movieRepository)

	selectionOpts := []usecase_selection.Option{
		usecase_selection.WithLogger(logger),
		usecase_selection.WithPolicy(cfg.Selection),
		usecase_selection.WithMetrics(selectionMetrics),
	}
	if cfg.Recommender.Enabled() {
		gateway, err := infra_recommender.New(cfg.Recommender, infra_recommender.WithLogger(logger))
		if err != nil {
			log.Fatalf("failed to build recommender client: %v", err)
		}
		selectionOpts = append(selectionOpts, usecase_selection.WithGateway(gateway))
	} else {
		logger.Warn("recommender disabled, selections use the deterministic ranker")
	}
	selectionUC := usecase_selection.New(movieRepository, preferenceRepository, preferenceUC, partyRepository, selectionCache, selectionOpts...)

	guard := http_participant_middleware.New(partyUC, http_participant_middleware.WithLogger(logger)).Required()

	controllerPool := http_init.NewControllerPool(cfg.HTTP, logger)
	controllerPool.Add(http_party.New(partyUC, guard, http_party.WithLogger(logger)))
	controllerPool.Add(http_preference.New(preferenceUC, guard, http_preference.WithLogger(logger)))
	controllerPool.Add(http_selection.New(selectionUC, guard, http_selection.WithLogger(logger)))
	controllerPool.Add(http_vote.New(voteUC, guard, http_vote.WithLogger(logger)))
	controllerPool.Add(http_movie.New(catalogUC, http_movie.WithLogger(logger)))
	controllerPool.AddRoot(http_metrics.New(registry))
	controllerPool.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := controllerPool.Run(ctx, ":"+cfg.HTTP.Port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
	logger.Info("http server stopped")
}
