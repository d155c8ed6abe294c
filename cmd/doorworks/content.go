// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"doorworks/internal/config"
	"doorworks/internal/pages"
	"doorworks/web"
)

func contentCommand(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "content <page>",
		Short: "Resolve one page and print it as JSON",
		Long: "Resolve one page with the site content client and print it as JSON.\n\n" +
			"Pages: " + strings.Join(pages.Names(), ", ") + ", or products/<id>.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := newSiteService(getConfig(), nil)
			if err != nil {
				return err
			}
			b := pages.NewBuilder(site, web.LegalFS, nil)

			var doc pages.Document
			if id, ok := strings.CutPrefix(args[0], pages.PageProducts+"/"); ok {
				doc, err = b.Product(cmd.Context(), id)
			} else {
				doc, err = b.Build(cmd.Context(), args[0])
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
}
