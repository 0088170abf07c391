// Command migrate applies migrations/ to the configured database through the
// atlas CLI. The desired state is the SQL in the migrations directory; atlas
// diffs it against the live schema on a throwaway dev database.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"rental-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	var (
		dir     = flag.String("dir", "file://migrations", "desired schema source")
		devURL  = flag.String("dev-url", "docker://postgres/17/dev", "dev database used to normalize the schema")
		atlas   = flag.String("atlas", "atlas", "path to the atlas binary")
		dryRun  = flag.Bool("dry-run", false, "print the plan without applying it")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error("failed to load .env file", "error", err)
		os.Exit(1)
	}
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to process env config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *atlas)
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          *dir,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	logger.Info("schema apply finished",
		"dry_run", *dryRun,
		"pending", len(res.Changes.Pending),
		"applied", len(res.Changes.Applied),
	)
}
