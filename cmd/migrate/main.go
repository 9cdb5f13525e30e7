package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/humanbelnik/popcorn/core/internal/config"
	infra_pg_init "github.com/humanbelnik/popcorn/core/internal/infra/postgres/init"
	infra_pg_migrate "github.com/humanbelnik/popcorn/core/internal/infra/postgres/migrate"
	infra_postgres_movie "github.com/humanbelnik/popcorn/core/internal/infra/postgres/movie"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cmd := flag.String("cmd", "up", "migration command: up|down|status|redo|validate|seed")
	file := flag.String("file", "", "JSON catalog file (for -cmd=seed)")

	cfg := config.Load()

	// Commands that do not need the database.
	if *cmd == "validate" {
		if err := infra_pg_migrate.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "migration validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migration validation passed")
		return
	}

	db := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer db.Close()

	logger.Info("migrate ready", slog.String("cmd", *cmd))

	switch *cmd {
	case "up", "down", "status", "redo":
		if err := infra_pg_migrate.Run(ctx, db.DB, *cmd); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

	case "seed":
		if *file == "" {
			fmt.Fprintln(os.Stderr, "missing -file for seed")
			os.Exit(1)
		}
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open catalog: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		n, err := seed(ctx, f, infra_postgres_movie.New(db))
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed failed after %d movies: %v\n", n, err)
			os.Exit(1)
		}
		logger.Info("catalog seeded", slog.Int("movies", n))

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}
