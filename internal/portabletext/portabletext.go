// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package portabletext turns the content store's rich-text block arrays into
// sanitized HTML and plain text. Only the block features the site's editors
// use are supported: paragraph and heading styles, blockquotes, bullet and
// numbered lists, the standard decorators, and link annotations. Unknown
// block types are skipped.
package portabletext

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizer strips anything the renderer did not intend to emit, including
// javascript: links smuggled in through link annotations.
var sanitizer = bluemonday.UGCPolicy()

// Block is one entry of a rich-text array.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

// Span is a run of text with decorator names or mark definition keys.
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced from Span.Marks by key.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

var decorators = map[string]string{
	"strong":         "strong",
	"em":             "em",
	"code":           "code",
	"underline":      "u",
	"strike-through": "s",
}

var blockTags = map[string]string{
	"":           "p",
	"normal":     "p",
	"h1":         "h1",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"h5":         "h5",
	"h6":         "h6",
	"blockquote": "blockquote",
}

// ToHTML renders blocks as sanitized HTML. Consecutive list items with the
// same list type are grouped into one <ul> or <ol>.
func ToHTML(blocks []Block) string {
	var sb strings.Builder
	openList := ""

	closeList := func() {
		if openList != "" {
			sb.WriteString("</" + openList + ">")
			openList = ""
		}
	}

	for _, b := range blocks {
		if b.Type != "block" {
			continue
		}

		if b.ListItem != "" {
			tag := "ul"
			if b.ListItem == "number" {
				tag = "ol"
			}
			if openList != tag {
				closeList()
				sb.WriteString("<" + tag + ">")
				openList = tag
			}
			sb.WriteString("<li>")
			writeSpans(&sb, b)
			sb.WriteString("</li>")
			continue
		}

		closeList()
		tag, ok := blockTags[b.Style]
		if !ok {
			tag = "p"
		}
		sb.WriteString("<" + tag + ">")
		writeSpans(&sb, b)
		sb.WriteString("</" + tag + ">")
	}
	closeList()

	return sanitizer.Sanitize(sb.String())
}

// ToText returns the text of every block, one block per paragraph.
func ToText(blocks []Block) string {
	var paragraphs []string
	for _, b := range blocks {
		if b.Type != "block" {
			continue
		}
		var sb strings.Builder
		for _, s := range b.Children {
			sb.WriteString(s.Text)
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func writeSpans(sb *strings.Builder, b Block) {
	defs := make(map[string]MarkDef, len(b.MarkDefs))
	for _, d := range b.MarkDefs {
		defs[d.Key] = d
	}

	for _, s := range b.Children {
		var open, close []string
		for _, m := range s.Marks {
			if tag, ok := decorators[m]; ok {
				open = append(open, "<"+tag+">")
				close = append([]string{"</" + tag + ">"}, close...)
				continue
			}
			if d, ok := defs[m]; ok && d.Type == "link" && d.Href != "" {
				open = append(open, `<a href="`+html.EscapeString(d.Href)+`">`)
				close = append([]string{"</a>"}, close...)
			}
		}
		sb.WriteString(strings.Join(open, ""))
		sb.WriteString(html.EscapeString(s.Text))
		sb.WriteString(strings.Join(close, ""))
	}
}
