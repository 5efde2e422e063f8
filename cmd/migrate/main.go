// Command migrate applies the SQL files under migrations/ with the atlas CLI.
//
//	go run ./cmd/migrate            apply pending migrations
//	go run ./cmd/migrate -status    print applied and pending versions
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"grooming-salon/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	var (
		dir     = flag.String("dir", "file://migrations", "migration directory URL")
		bin     = flag.String("atlas", "atlas", "path to the atlas binary")
		status  = flag.Bool("status", false, "print migration status and exit")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *bin)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	url := cfg.DB.BuildDSN()
	if *status {
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url, DirURL: *dir})
		if err != nil {
			logger.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		logger.Info("migration status",
			"status", res.Status,
			"current", res.Current,
			"next", res.Next,
			"pending", len(res.Pending),
		)
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url, DirURL: *dir})
	if err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	for _, f := range res.Applied {
		logger.Info("migration applied", "version", f.Version, "name", f.Name)
	}
	logger.Info("database is up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
}
