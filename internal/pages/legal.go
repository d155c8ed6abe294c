// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import (
	"fmt"
	"io/fs"

	"doorworks/internal/markdown"
)

// LegalPage is a rendered legal document.
type LegalPage struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

var legalTitles = map[string]string{
	PagePrivacy: "Privacy Policy",
	PageTerms:   "Terms of Service",
}

// renderLegal reads legal/<name>.md from fsys and renders it.
func renderLegal(fsys fs.FS, name string) (LegalPage, error) {
	src, err := fs.ReadFile(fsys, "legal/"+name+".md")
	if err != nil {
		return LegalPage{}, fmt.Errorf("read legal document %s: %w", name, err)
	}
	html, err := markdown.ToHTML(string(src))
	if err != nil {
		return LegalPage{}, fmt.Errorf("render legal document %s: %w", name, err)
	}
	return LegalPage{Title: legalTitles[name], HTML: html}, nil
}
