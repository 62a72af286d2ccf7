// Applies db/schema.sql to the configured database through Atlas.
// Usage: go run ./cmd/migrate [-schema file://db/schema.sql] [-dry-run]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"relecloud-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	schema := flag.String("schema", "file://db/schema.sql", "desired schema state")
	devURL := flag.String("dev-url", "docker://postgres/17/dev", "dev database used by Atlas to plan changes")
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	flag.Parse()

	if err := run(*schema, *devURL, *dryRun); err != nil {
		slog.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(schema, devURL string, dryRun bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	ctx := context.Background()
	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:    cfg.DB.BuildDSN(),
		To:     schema,
		DevURL: devURL,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("schema apply: %w", err)
	}

	for _, stmt := range res.Changes.Applied {
		slog.Info("applied", "stmt", stmt)
	}
	if dryRun {
		slog.Info("dry run finished", "pending", len(res.Changes.Pending))
		return nil
	}
	slog.Info("schema up to date", "applied", len(res.Changes.Applied))
	return nil
}
