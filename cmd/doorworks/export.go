// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"doorworks/internal/config"
	"doorworks/internal/models"
	"doorworks/internal/pages"
	"doorworks/internal/slug"
	"doorworks/internal/storage"
	"doorworks/web"
)

// exportConcurrency bounds concurrent page builds against the content store.
const exportConcurrency = 4

func exportCommand(getConfig func() *config.Config) *cobra.Command {
	var (
		out     string
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Resolve every page and write it to JSON files",
		Long: "Resolve every page and write <page>.json plus products/<id>.json to the output directory.\n" +
			"With --publish the same files are uploaded to the configured S3 bucket.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if out == "" {
				out = cfg.ExportDir
			}

			sink, err := newExportSink(cfg, out, publish)
			if err != nil {
				return err
			}

			site, err := newSiteService(cfg, nil)
			if err != nil {
				return err
			}
			return export(cmd.Context(), pages.NewBuilder(site, web.LegalFS, nil), sink)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output directory (default $EXPORT_DIR)")
	cmd.Flags().BoolVar(&publish, "publish", false, "also upload to the S3 bucket from S3_* settings")
	return cmd
}

func newExportSink(cfg *config.Config, out string, publish bool) (storage.Sink, error) {
	dir := storage.NewDir(out)
	if !publish {
		return dir, nil
	}
	if !cfg.UseS3() {
		return nil, fmt.Errorf("--publish requires S3_ENDPOINT, S3_ACCESS_KEY and S3_BUCKET")
	}

	bucket, err := storage.NewBucket(storage.BucketOptions{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		Prefix:    cfg.S3Prefix,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("publishing export", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	return storage.Multi{dir, bucket}, nil
}

// export writes <page>.json for every page and products/<id>.json for every
// product in the resolved catalog.
func export(ctx context.Context, b *pages.Builder, sink storage.Sink) error {
	var catalog []models.Product

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)
	for _, name := range pages.Names() {
		g.Go(func() error {
			doc, err := b.Build(gctx, name)
			if err != nil {
				return fmt.Errorf("build %s: %w", name, err)
			}
			if name == pages.PageProducts {
				// Only this goroutine writes catalog; Wait orders the read.
				catalog, _ = doc.Data.([]models.Product)
			}
			return putJSON(gctx, sink, name+".json", doc)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var exported atomic.Int64
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)
	for _, p := range catalog {
		// Ids come from the store and become file names.
		if !slug.Valid(p.ID) {
			slog.Warn("skipping product with invalid id", "id", p.ID, "name", p.Name)
			continue
		}
		g.Go(func() error {
			doc, err := b.Product(gctx, p.ID)
			if errors.Is(err, pages.ErrProductNotFound) {
				slog.Warn("skipping product without a detail page", "id", p.ID)
				return nil
			}
			if err != nil {
				return fmt.Errorf("build product %s: %w", p.ID, err)
			}
			if err := putJSON(gctx, sink, pages.PageProducts+"/"+p.ID+".json", doc); err != nil {
				return err
			}
			exported.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("export complete",
		"location", sink.Location(""),
		"pages", len(pages.Names()),
		"products", exported.Load(),
		"skipped", int64(len(catalog))-exported.Load(),
	)
	return nil
}

func putJSON(ctx context.Context, sink storage.Sink, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return sink.Put(ctx, key, "application/json", append(data, '\n'))
}
