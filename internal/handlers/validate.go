// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"doorworks/internal/slug"
)

// Validation limits for path parameters.
const (
	maxProductIDLen = 200
	maxPageNameLen  = 50
)

// validateProductID checks a product id path parameter and returns the
// first error found. Ids are slugs.
func validateProductID(id string) string {
	if strings.TrimSpace(id) == "" {
		return "Product id is required."
	}
	if utf8.RuneCountInString(id) > maxProductIDLen {
		return "Product id is too long (max 200 characters)."
	}
	if !slug.Valid(id) {
		return "Product id must be a lowercase slug."
	}
	return ""
}

// validatePageName checks a page name path parameter.
func validatePageName(name string) string {
	if name == "" {
		return "Page name is required."
	}
	if utf8.RuneCountInString(name) > maxPageNameLen {
		return "Page name is too long (max 50 characters)."
	}
	return ""
}
