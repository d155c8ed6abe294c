// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content implements the query functions for every content type.
// Each function runs one projection query through an injected
// sanity.Fetcher, normalizes the result into models types, and on failure
// logs a warning and returns the type's empty value instead of an error.
package content

import (
	"context"
	"log/slog"
	"time"

	"doorworks/internal/metrics"
	"doorworks/internal/models"
	"doorworks/internal/sanity"
)

// Content type names used in logs and metric labels.
const (
	TypeHomePage    = "home_page"
	TypeProduct     = "product"
	TypeGallery     = "gallery_item"
	TypeTestimonial = "testimonial"
	TypeFAQ         = "faq"
	TypeContactInfo = "contact_info"
	TypeAboutPage   = "about_page"
	TypeServiceArea = "service_area"
)

// Service runs content queries. It holds no mutable state, so one value
// may be shared by concurrent requests.
type Service struct {
	fetcher  sanity.Fetcher
	identity sanity.Identity
	metrics  *metrics.Metrics
}

// NewService creates a Service. identity is used to build CDN URLs from
// asset references; m may be nil.
func NewService(fetcher sanity.Fetcher, identity sanity.Identity, m *metrics.Metrics) *Service {
	return &Service{fetcher: fetcher, identity: identity, metrics: m}
}

// Metrics returns the metrics the service records to, possibly nil.
func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}

// fetch runs one query and records its outcome. empty reports whether the
// decoded result is empty; it is only called on success.
func (s *Service) fetch(ctx context.Context, contentType, query string, params map[string]any, dest any, empty func() bool) error {
	start := time.Now()
	err := s.fetcher.Fetch(ctx, query, params, dest)

	outcome := metrics.OutcomeSuccess
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
		slog.Warn("content query failed", "type", contentType, "error", err, "query", query)
	case empty():
		outcome = metrics.OutcomeEmpty
	}
	s.metrics.ObserveQuery(contentType, outcome, time.Since(start))
	return err
}

// HomePage returns the home page document, or nil.
func (s *Service) HomePage(ctx context.Context) *models.HomePage {
	var doc *homeDoc
	if err := s.fetch(ctx, TypeHomePage, homePageQuery, nil, &doc, func() bool { return doc == nil }); err != nil || doc == nil {
		return nil
	}
	return doc.normalize(s.identity)
}

// Products returns every product ordered by name.
func (s *Service) Products(ctx context.Context) []models.Product {
	return s.products(ctx, productsQuery, nil)
}

// ProductsByCategory returns the products in one category.
func (s *Service) ProductsByCategory(ctx context.Context, category models.ProductCategory) []models.Product {
	return s.products(ctx, productsByCategoryQuery, map[string]any{"category": string(category)})
}

func (s *Service) products(ctx context.Context, query string, params map[string]any) []models.Product {
	var docs []productDoc
	if err := s.fetch(ctx, TypeProduct, query, params, &docs, func() bool { return len(docs) == 0 }); err != nil {
		return []models.Product{}
	}
	out := make([]models.Product, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].normalize(s.identity))
	}
	return out
}

// Product returns the product with the given slug, or nil.
func (s *Service) Product(ctx context.Context, slug string) *models.Product {
	var doc *productDoc
	err := s.fetch(ctx, TypeProduct, productBySlugQuery, map[string]any{"slug": slug}, &doc, func() bool { return doc == nil })
	if err != nil || doc == nil {
		return nil
	}
	p := doc.normalize(s.identity)
	return &p
}

// GalleryItems returns the gallery, newest first.
func (s *Service) GalleryItems(ctx context.Context) []models.GalleryItem {
	var docs []galleryDoc
	if err := s.fetch(ctx, TypeGallery, galleryQuery, nil, &docs, func() bool { return len(docs) == 0 }); err != nil {
		return []models.GalleryItem{}
	}
	out := make([]models.GalleryItem, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].normalize(s.identity))
	}
	return out
}

// FetchTestimonials returns all testimonials, ranked ones first. When the
// ranked query returns nothing, the store is asked again ordered by
// creation time only. Unlike the other query functions, errors are
// returned. A nil error always comes with a non-nil slice.
func (s *Service) FetchTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var docs []testimonialDoc
	if err := s.fetch(ctx, TypeTestimonial, testimonialsQuery, nil, &docs, func() bool { return len(docs) == 0 }); err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		if err := s.fetch(ctx, TypeTestimonial, testimonialsByDateQuery, nil, &docs, func() bool { return len(docs) == 0 }); err != nil {
			return nil, err
		}
	}

	out := make([]models.Testimonial, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].normalize(s.identity))
	}
	models.SortTestimonials(out)
	return out, nil
}

// Testimonials is FetchTestimonials with the error swallowed. A nil result
// means the testimonials are not available; an empty one means there are
// none.
func (s *Service) Testimonials(ctx context.Context) []models.Testimonial {
	items, err := s.FetchTestimonials(ctx)
	if err != nil {
		return nil
	}
	return items
}

// FAQs returns the FAQ ordered by rank, unranked entries last.
func (s *Service) FAQs(ctx context.Context) []models.FAQItem {
	var docs []faqDoc
	if err := s.fetch(ctx, TypeFAQ, faqQuery, nil, &docs, func() bool { return len(docs) == 0 }); err != nil {
		return []models.FAQItem{}
	}
	out := make([]models.FAQItem, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].normalize())
	}
	models.SortFAQs(out)
	return out
}

// ContactInfo returns the contact details, or nil.
func (s *Service) ContactInfo(ctx context.Context) *models.ContactInfo {
	var doc *contactDoc
	if err := s.fetch(ctx, TypeContactInfo, contactInfoQuery, nil, &doc, func() bool { return doc == nil }); err != nil || doc == nil {
		return nil
	}
	return doc.normalize()
}

// AboutPage returns the about page. Sections missing from the store are
// left zero-valued; on failure the whole value is zero.
func (s *Service) AboutPage(ctx context.Context) models.AboutPage {
	var doc *aboutDoc
	if err := s.fetch(ctx, TypeAboutPage, aboutPageQuery, nil, &doc, func() bool { return doc == nil }); err != nil || doc == nil {
		return models.AboutPage{}
	}
	return doc.normalize(s.identity)
}

// ServiceAreas returns the service areas ordered by name.
func (s *Service) ServiceAreas(ctx context.Context) []models.ServiceArea {
	var docs []serviceAreaDoc
	if err := s.fetch(ctx, TypeServiceArea, serviceAreasQuery, nil, &docs, func() bool { return len(docs) == 0 }); err != nil {
		return []models.ServiceArea{}
	}
	out := make([]models.ServiceArea, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].normalize())
	}
	return out
}
