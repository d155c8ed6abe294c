// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides the embedded legal documents served by the privacy
// and terms pages.
package web

import "embed"

// LegalFS embeds web/legal/*.md. Each file is named after its page.
//
//go:embed legal/*.md
var LegalFS embed.FS
