// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pages assembles page documents from the content query functions,
// substituting static fallback data whenever the store returns nothing.
// Testimonials are the exception: they are never substituted, and the page
// reports whether they are pending, empty or ready.
package pages

import (
	"context"
	"errors"
	"io/fs"

	"doorworks/internal/content"
	"doorworks/internal/fallback"
	"doorworks/internal/metrics"
	"doorworks/internal/models"
)

// Page names.
const (
	PageHome         = "home"
	PageAbout        = "about"
	PageContact      = "contact"
	PageProducts     = "products"
	PageDoors        = "doors"
	PageWindows      = "windows"
	PageGallery      = "gallery"
	PageFAQ          = "faq"
	PageTestimonials = "testimonials"
	PagePrivacy      = "privacy"
	PageTerms        = "terms"
)

var (
	// ErrUnknownPage is returned by Build for a name not in Names.
	ErrUnknownPage = errors.New("unknown page")
	// ErrProductNotFound is returned by Product when neither the store nor
	// the fallback catalog has the product.
	ErrProductNotFound = errors.New("product not found")
)

// Testimonial page states.
const (
	StatePending = "pending"
	StateEmpty   = "empty"
	StateReady   = "ready"
)

// Content is the set of query functions pages are built from.
// *content.Service implements it.
type Content interface {
	HomePage(ctx context.Context) *models.HomePage
	Products(ctx context.Context) []models.Product
	ProductsByCategory(ctx context.Context, category models.ProductCategory) []models.Product
	Product(ctx context.Context, slug string) *models.Product
	GalleryItems(ctx context.Context) []models.GalleryItem
	Testimonials(ctx context.Context) []models.Testimonial
	FAQs(ctx context.Context) []models.FAQItem
	ContactInfo(ctx context.Context) *models.ContactInfo
	AboutPage(ctx context.Context) models.AboutPage
	ServiceAreas(ctx context.Context) []models.ServiceArea
}

// Document is one resolved page.
type Document struct {
	Page   string `json:"page"`
	Source Source `json:"source"`
	Data   any    `json:"data"`
}

// TestimonialsPage distinguishes "not available yet" (pending, null list)
// from "none exist" (empty, empty list).
type TestimonialsPage struct {
	State        string               `json:"state"`
	Testimonials []models.Testimonial `json:"testimonials"`
}

// ContactPage is the contact page data.
type ContactPage struct {
	Contact      *models.ContactInfo  `json:"contact"`
	ServiceAreas []models.ServiceArea `json:"serviceAreas"`
}

// Builder builds page documents.
type Builder struct {
	content Content
	legal   fs.FS
	metrics *metrics.Metrics
	pages   map[string]func(context.Context) (Document, error)
}

// NewBuilder creates a Builder. legal must contain legal/privacy.md and
// legal/terms.md; m may be nil.
func NewBuilder(c Content, legal fs.FS, m *metrics.Metrics) *Builder {
	b := &Builder{content: c, legal: legal, metrics: m}
	b.pages = map[string]func(context.Context) (Document, error){
		PageHome:         b.home,
		PageAbout:        b.about,
		PageContact:      b.contact,
		PageProducts:     b.products,
		PageDoors:        b.category(PageDoors, models.CategoryDoor),
		PageWindows:      b.category(PageWindows, models.CategoryWindow),
		PageGallery:      b.gallery,
		PageFAQ:          b.faq,
		PageTestimonials: b.testimonials,
		PagePrivacy:      b.legalPage(PagePrivacy),
		PageTerms:        b.legalPage(PageTerms),
	}
	return b
}

// Names returns every page name in navigation order.
func Names() []string {
	return []string{
		PageHome, PageAbout, PageContact, PageProducts, PageDoors, PageWindows,
		PageGallery, PageFAQ, PageTestimonials, PagePrivacy, PageTerms,
	}
}

// Build resolves the named page.
func (b *Builder) Build(ctx context.Context, name string) (Document, error) {
	fn, ok := b.pages[name]
	if !ok {
		return Document{}, ErrUnknownPage
	}
	return fn(ctx)
}

// Product resolves a product detail page. The store is asked by slug first.
// Products without a slug carry an id derived from their name, which only
// the remote catalog knows, so that is searched next, then the fallback
// catalog.
func (b *Builder) Product(ctx context.Context, id string) (Document, error) {
	if p := b.content.Product(ctx, id); p != nil {
		return Document{Page: PageProducts + "/" + id, Source: SourceRemote, Data: p}, nil
	}
	if p, ok := models.FindProduct(b.content.Products(ctx), id); ok {
		return Document{Page: PageProducts + "/" + id, Source: SourceRemote, Data: &p}, nil
	}
	if p, ok := models.FindProduct(fallback.Products(), id); ok {
		b.metrics.RecordFallback(content.TypeProduct)
		return Document{Page: PageProducts + "/" + id, Source: SourceFallback, Data: p}, nil
	}
	return Document{}, ErrProductNotFound
}

// ContactInfo returns the resolved contact details.
func (b *Builder) ContactInfo(ctx context.Context) (*models.ContactInfo, Source) {
	info, src := ResolvePtr(b.content.ContactInfo(ctx), fallback.ContactInfo)
	b.record(content.TypeContactInfo, src)
	return info, src
}

// FAQs returns the resolved FAQ list.
func (b *Builder) FAQs(ctx context.Context) ([]models.FAQItem, Source) {
	items, src := ResolveSlice(b.content.FAQs(ctx), fallback.FAQs)
	b.record(content.TypeFAQ, src)
	return items, src
}

// ServiceAreas returns the resolved service areas.
func (b *Builder) ServiceAreas(ctx context.Context) ([]models.ServiceArea, Source) {
	areas, src := ResolveSlice(b.content.ServiceAreas(ctx), fallback.ServiceAreas)
	b.record(content.TypeServiceArea, src)
	return areas, src
}

func (b *Builder) record(contentType string, src Source) {
	if src == SourceFallback {
		b.metrics.RecordFallback(contentType)
	}
}

func (b *Builder) home(ctx context.Context) (Document, error) {
	home, src := ResolvePtr(b.content.HomePage(ctx), fallback.HomePage)
	b.record(content.TypeHomePage, src)
	return Document{Page: PageHome, Source: src, Data: home}, nil
}

func (b *Builder) about(ctx context.Context) (Document, error) {
	remote := b.content.AboutPage(ctx)
	src := SourceRemote
	if isZeroAbout(remote) {
		src = SourceFallback
	}
	b.record(content.TypeAboutPage, src)
	return Document{Page: PageAbout, Source: src, Data: MergeAbout(remote, fallback.AboutPage())}, nil
}

func (b *Builder) contact(ctx context.Context) (Document, error) {
	info, src := b.ContactInfo(ctx)
	areas, _ := b.ServiceAreas(ctx)
	return Document{Page: PageContact, Source: src, Data: ContactPage{Contact: info, ServiceAreas: areas}}, nil
}

func (b *Builder) products(ctx context.Context) (Document, error) {
	items, src := ResolveSlice(b.content.Products(ctx), fallback.Products)
	b.record(content.TypeProduct, src)
	return Document{Page: PageProducts, Source: src, Data: items}, nil
}

func (b *Builder) category(page string, category models.ProductCategory) func(context.Context) (Document, error) {
	return func(ctx context.Context) (Document, error) {
		items, src := ResolveSlice(b.content.ProductsByCategory(ctx, category), func() []models.Product {
			return models.FilterProducts(fallback.Products(), category)
		})
		b.record(content.TypeProduct, src)
		return Document{Page: page, Source: src, Data: items}, nil
	}
}

func (b *Builder) gallery(ctx context.Context) (Document, error) {
	items, src := ResolveSlice(b.content.GalleryItems(ctx), fallback.GalleryItems)
	b.record(content.TypeGallery, src)
	return Document{Page: PageGallery, Source: src, Data: items}, nil
}

func (b *Builder) faq(ctx context.Context) (Document, error) {
	items, src := b.FAQs(ctx)
	return Document{Page: PageFAQ, Source: src, Data: items}, nil
}

func (b *Builder) testimonials(ctx context.Context) (Document, error) {
	items := b.content.Testimonials(ctx)
	page := TestimonialsPage{State: StateReady, Testimonials: items}
	switch {
	case items == nil:
		page.State = StatePending
	case len(items) == 0:
		page.State = StateEmpty
	}
	return Document{Page: PageTestimonials, Source: SourceRemote, Data: page}, nil
}

func (b *Builder) legalPage(name string) func(context.Context) (Document, error) {
	return func(context.Context) (Document, error) {
		page, err := renderLegal(b.legal, name)
		if err != nil {
			return Document{}, err
		}
		return Document{Page: name, Source: SourceStatic, Data: page}, nil
	}
}
