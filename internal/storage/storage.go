// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage writes exported page documents. Dir writes to the local
// filesystem; Bucket publishes to S3-compatible object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidKey is returned by Put for keys that would leave the export root.
var ErrInvalidKey = errors.New("invalid export key")

// checkKey rejects empty, absolute and ".."-escaping keys.
func checkKey(key string) error {
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Sink receives exported files. Keys are slash-separated paths relative to
// the export root, e.g. "products/bay-window.json".
type Sink interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Location(key string) string
}

// Dir is a Sink rooted at a local directory.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at root. The directory is created on first Put.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Put writes data to root/key, creating parent directories as needed.
func (d *Dir) Put(_ context.Context, key, _ string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	path := d.Location(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Location returns the filesystem path for key.
func (d *Dir) Location(key string) string {
	return filepath.Join(d.root, filepath.FromSlash(key))
}

// Multi writes every file to each of its sinks in order.
type Multi []Sink

// Put stops at the first sink that fails.
func (m Multi) Put(ctx context.Context, key, contentType string, data []byte) error {
	for _, s := range m {
		if err := s.Put(ctx, key, contentType, data); err != nil {
			return err
		}
	}
	return nil
}

// Location reports the first sink's location.
func (m Multi) Location(key string) string {
	if len(m) == 0 {
		return key
	}
	return m[0].Location(key)
}
