// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import (
	"slices"

	"doorworks/internal/models"
)

// Source says where a page's data came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
	// SourceStatic marks content embedded in the binary, such as the legal pages.
	SourceStatic Source = "static"
)

// Resolve returns remote unless isEmpty reports it empty, in which case it
// returns a fresh fallback value.
func Resolve[T any](remote T, fallback func() T, isEmpty func(T) bool) (T, Source) {
	if isEmpty(remote) {
		return fallback(), SourceFallback
	}
	return remote, SourceRemote
}

// ResolveSlice treats nil and zero-length slices as empty.
func ResolveSlice[T any](remote []T, fallback func() []T) ([]T, Source) {
	return Resolve(remote, fallback, func(s []T) bool { return len(s) == 0 })
}

// ResolvePtr treats nil as empty.
func ResolvePtr[T any](remote *T, fallback func() *T) (*T, Source) {
	return Resolve(remote, fallback, func(p *T) bool { return p == nil })
}

// MergeAbout overlays the non-empty fields of remote onto defaults, field by
// field. The result shares no slices with either argument.
func MergeAbout(remote, defaults models.AboutPage) models.AboutPage {
	out := defaults

	out.Hero.Title = firstNonEmpty(remote.Hero.Title, defaults.Hero.Title)
	out.Hero.Subtitle = firstNonEmpty(remote.Hero.Subtitle, defaults.Hero.Subtitle)
	out.Hero.Image = firstNonEmpty(remote.Hero.Image, defaults.Hero.Image)

	out.Story.Title = firstNonEmpty(remote.Story.Title, defaults.Story.Title)
	if remote.Story.HTML != "" {
		out.Story.HTML = remote.Story.HTML
		out.Story.Text = remote.Story.Text
	}

	out.Values = slices.Clone(firstNonEmptySlice(remote.Values, defaults.Values))
	out.ServiceAreas = slices.Clone(firstNonEmptySlice(remote.ServiceAreas, defaults.ServiceAreas))

	out.Expertise.Title = firstNonEmpty(remote.Expertise.Title, defaults.Expertise.Title)
	out.Expertise.Description = firstNonEmpty(remote.Expertise.Description, defaults.Expertise.Description)
	out.Expertise.Specializations = slices.Clone(firstNonEmptySlice(remote.Expertise.Specializations, defaults.Expertise.Specializations))

	return out
}

// isZeroAbout reports whether the store returned nothing usable.
func isZeroAbout(a models.AboutPage) bool {
	return a.Hero == (models.AboutHero{}) &&
		a.Story == (models.Story{}) &&
		len(a.Values) == 0 &&
		len(a.ServiceAreas) == 0 &&
		a.Expertise.Title == "" &&
		a.Expertise.Description == "" &&
		len(a.Expertise.Specializations) == 0
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstNonEmptySlice[T any](a, b []T) []T {
	if len(a) > 0 {
		return a
	}
	return b
}
