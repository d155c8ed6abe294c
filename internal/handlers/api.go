// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"doorworks/internal/models"
	"doorworks/internal/pages"
)

// TestimonialSource fetches testimonials with errors reported.
// *content.Service implements it.
type TestimonialSource interface {
	FetchTestimonials(ctx context.Context) ([]models.Testimonial, error)
}

// PageSource resolves page documents. *pages.Builder implements it.
type PageSource interface {
	Build(ctx context.Context, name string) (pages.Document, error)
	Product(ctx context.Context, id string) (pages.Document, error)
	ContactInfo(ctx context.Context) (*models.ContactInfo, pages.Source)
	FAQs(ctx context.Context) ([]models.FAQItem, pages.Source)
	ServiceAreas(ctx context.Context) ([]models.ServiceArea, pages.Source)
}

// API groups the JSON endpoints under /api.
type API struct {
	testimonials TestimonialSource
	pages        PageSource
}

// NewAPI creates the API handler group.
func NewAPI(testimonials TestimonialSource, pages PageSource) *API {
	return &API{testimonials: testimonials, pages: pages}
}

// TestimonialsResponse is the /api/testimonials body. Count and
// Testimonials are set on success, Error on failure.
type TestimonialsResponse struct {
	Success      bool                  `json:"success"`
	Count        *int                  `json:"count,omitempty"`
	Testimonials *[]models.Testimonial `json:"testimonials,omitempty"`
	Error        string                `json:"error,omitempty"`
}

// Resolved wraps data that may have come from the fallback set.
type Resolved struct {
	Source pages.Source `json:"source"`
	Data   any          `json:"data"`
}

// Testimonials handles GET /api/testimonials. An empty store is a success
// with a count of zero.
func (a *API) Testimonials(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.FetchTestimonials(r.Context())
	if err != nil {
		slog.Error("fetch testimonials failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, TestimonialsResponse{
			Success: false,
			Error:   "Failed to fetch testimonials",
		})
		return
	}

	if items == nil {
		items = []models.Testimonial{}
	}
	count := len(items)
	writeJSON(w, http.StatusOK, TestimonialsResponse{
		Success:      true,
		Count:        &count,
		Testimonials: &items,
	})
}

// Page handles GET /api/pages/{page}.
func (a *API) Page(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	if msg := validatePageName(name); msg != "" {
		writeBadRequest(w, msg)
		return
	}

	doc, err := a.pages.Build(r.Context(), name)
	if errors.Is(err, pages.ErrUnknownPage) {
		writeNotFound(w, "Page not found")
		return
	}
	if err != nil {
		slog.Error("build page failed", "error", err, "page", name)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Product handles GET /api/pages/products/{id}.
func (a *API) Product(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if msg := validateProductID(id); msg != "" {
		writeBadRequest(w, msg)
		return
	}

	doc, err := a.pages.Product(r.Context(), id)
	if errors.Is(err, pages.ErrProductNotFound) {
		writeNotFound(w, "Product not found")
		return
	}
	if err != nil {
		slog.Error("build product page failed", "error", err, "id", id)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ContactInfo handles GET /api/contact-info.
func (a *API) ContactInfo(w http.ResponseWriter, r *http.Request) {
	info, src := a.pages.ContactInfo(r.Context())
	writeJSON(w, http.StatusOK, Resolved{Source: src, Data: info})
}

// FAQ handles GET /api/faq.
func (a *API) FAQ(w http.ResponseWriter, r *http.Request) {
	items, src := a.pages.FAQs(r.Context())
	writeJSON(w, http.StatusOK, Resolved{Source: src, Data: items})
}

// ServiceAreas handles GET /api/service-areas.
func (a *API) ServiceAreas(w http.ResponseWriter, r *http.Request) {
	areas, src := a.pages.ServiceAreas(r.Context())
	writeJSON(w, http.StatusOK, Resolved{Source: src, Data: areas})
}
