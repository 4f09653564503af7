// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/makebyjordan/mbj/internal/backfill"
	"github.com/makebyjordan/mbj/internal/content"
	"github.com/makebyjordan/mbj/internal/legacy"
	"github.com/makebyjordan/mbj/internal/media"
	"github.com/makebyjordan/mbj/internal/platform/config"
	pgstore "github.com/makebyjordan/mbj/internal/platform/postgres"
	"github.com/makebyjordan/mbj/internal/registry"
)

var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Copy the legacy document store into the content tables",
	GroupID: "data",
	Long: `Reads every legacy collection, transforms each document and upserts it
by its original id. Documents that fail are logged and skipped; rerun the
command after fixing them. The exit code is non-zero only when the command
cannot reach the legacy store or the database.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadMigrate()
		if err != nil {
			return err
		}
		return runMigrate(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context, cfg *config.MigrateConfig, out io.Writer) error {
	logger := newLogger(cfg.Debug)

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	routes, err := registry.Load()
	if err != nil {
		return err
	}

	repositories, err := content.Resolve(ctx, pgstore.OpenDB(pool), routes.All())
	if err != nil {
		return err
	}

	source, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer source.Close()

	uploads, err := media.NewFromConfig(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}

	report := backfill.NewPipeline(backfill.Dependencies{
		Source:       source,
		Routes:       routes,
		Repositories: repositories,
		Images:       uploads.Ingestor,
		Logger:       logger,
	}).Run(ctx)

	return printReport(out, report)
}

func openSource(ctx context.Context, cfg *config.MigrateConfig) (legacy.Source, error) {
	if cfg.LegacySource == config.LegacySourceExport {
		return legacy.NewExportSource(cfg.LegacyExportDir)
	}
	return legacy.NewFirestoreSource(ctx, cfg.FirebaseProjectID, cfg.GoogleCredentialsFile)
}

func printReport(out io.Writer, report backfill.Report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLLECTION\tMODEL\tREAD\tMIGRATED\tFAILED\tNOTE")

	for _, collection := range report.Collections {
		note := strings.Join(collection.FailedIDs, ",")
		if collection.Err != nil {
			note = collection.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			collection.Collection, collection.Model,
			collection.Read, collection.Migrated, collection.Failed, note)
	}

	read, migrated, failed := report.Totals()
	fmt.Fprintf(w, "TOTAL\t\t%d\t%d\t%d\t\n", read, migrated, failed)
	return w.Flush()
}
