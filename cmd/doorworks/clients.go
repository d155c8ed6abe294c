// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"log/slog"

	"doorworks/internal/cache"
	"doorworks/internal/config"
	"doorworks/internal/content"
	"doorworks/internal/metrics"
	"doorworks/internal/sanity"
)

// newSiteService builds the site content client: strict identity, always
// fresh. A missing project id or dataset is fatal.
func newSiteService(cfg *config.Config, m *metrics.Metrics) (*content.Service, error) {
	id, err := cfg.StrictIdentity()
	if err != nil {
		return nil, fmt.Errorf("site content client: %w", err)
	}

	client, err := sanity.New(sanity.Options{
		ProjectID:  id.ProjectID,
		Dataset:    id.Dataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
		UseCDN:     false,
		BaseURL:    cfg.SanityAPIHost,
	})
	if err != nil {
		return nil, fmt.Errorf("site content client: %w", err)
	}

	slog.Info("site content client ready",
		"project", id.ProjectID,
		"dataset", id.Dataset,
	)
	return content.NewService(client, client.Identity(), m), nil
}

// newAPIService builds the API content client: lenient identity, CDN reads
// in production, and an optional response cache in front.
func newAPIService(cfg *config.Config, m *metrics.Metrics, responses cache.Store) (*content.Service, error) {
	id := cfg.LenientIdentity()

	client, err := sanity.New(sanity.Options{
		ProjectID:  id.ProjectID,
		Dataset:    id.Dataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
		UseCDN:     cfg.IsProduction(),
		BaseURL:    cfg.SanityAPIHost,
	})
	if err != nil {
		return nil, fmt.Errorf("api content client: %w", err)
	}

	var fetcher sanity.Fetcher = client
	if responses != nil {
		fetcher = sanity.NewCachedFetcher(client, responses, m.RecordCacheLookup)
	}

	slog.Info("api content client ready",
		"project", id.ProjectID,
		"dataset", id.Dataset,
		"cdn", client.UsesCDN(),
		"cached", responses != nil,
	)
	return content.NewService(fetcher, client.Identity(), m), nil
}

// newResponseCache returns the API client's response cache, or nil when
// CONTENT_CACHE_TTL is zero. Valkey is used when configured. The returned
// close function is never nil.
func newResponseCache(cfg *config.Config) (cache.Store, func(), error) {
	noop := func() {}
	if cfg.ContentCacheTTL <= 0 {
		return nil, noop, nil
	}

	if cfg.UseValkey() {
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return nil, noop, err
		}
		return cache.NewRedisCache(client, cfg.ContentCacheTTL), func() { client.Close() }, nil
	}

	return cache.NewMemoryCache(cfg.ContentCacheTTL), noop, nil
}
