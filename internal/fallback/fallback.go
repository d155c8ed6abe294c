// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fallback holds the static content served when the content store
// is unreachable or returns nothing. Every function returns a fresh value so
// callers may modify the result freely.
package fallback

import (
	"slices"

	"doorworks/internal/models"
)

func intPtr(n int) *int { return &n }

// HomePage returns the default home page.
func HomePage() *models.HomePage {
	return &models.HomePage{
		Hero: models.Hero{
			Headline:    "Quality Doors & Windows for Every Home",
			Subheadline: "Expert installation, lasting craftsmanship, and honest pricing since 1998.",
			CTAText:     "Get a Free Quote",
			CTALink:     "/contact",
			Slides: []models.HeroSlide{
				{Image: "/images/hero/entry-door.jpg", Alt: "Craftsman entry door", Caption: "Entry doors that make an impression"},
				{Image: "/images/hero/bay-window.jpg", Alt: "Bay window installation", Caption: "Energy efficient windows"},
				{Image: "/images/hero/patio-door.jpg", Alt: "Sliding patio door", Caption: "Bring the outdoors in"},
			},
		},
		WhyChooseUs: models.FeatureSection{
			Title:    "Why Choose Us",
			Subtitle: "Local experts you can trust",
			Features: []models.Feature{
				{Title: "Licensed & Insured", Description: "Fully licensed installers backed by comprehensive insurance.", Icon: "shield"},
				{Title: "Lifetime Warranty", Description: "Every installation is covered for as long as you own your home.", Icon: "award"},
				{Title: "Free Estimates", Description: "In-home consultations and written quotes at no cost.", Icon: "clipboard"},
				{Title: "Energy Savings", Description: "ENERGY STAR rated products that lower your utility bills.", Icon: "leaf"},
			},
		},
		Doors: models.ProductCard{
			Title:       "Doors",
			Description: "Entry, patio, and storm doors in wood, steel, and fiberglass.",
			Image:       "/images/products/doors.jpg",
			Link:        "/doors",
		},
		Windows: models.ProductCard{
			Title:       "Windows",
			Description: "Double-hung, casement, bay, and picture windows built to last.",
			Image:       "/images/products/windows.jpg",
			Link:        "/windows",
		},
		Gallery: models.GallerySection{
			Title:    "Recent Projects",
			Subtitle: "See our work in homes across the region",
			Images: []string{
				"/images/gallery/project-1.jpg",
				"/images/gallery/project-2.jpg",
				"/images/gallery/project-3.jpg",
				"/images/gallery/project-4.jpg",
			},
		},
		Testimonials: models.SectionHeading{
			Title:    "What Our Customers Say",
			Subtitle: "Real reviews from real homeowners",
		},
		ServiceAreas: models.ServiceAreaSection{
			Title:    "Areas We Serve",
			Subtitle: "Proudly serving the greater metro area",
			Areas:    serviceAreaNames(),
		},
	}
}

// Products returns the default catalog: four doors followed by four windows.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "classic-entry-door",
			Name:        "Classic Entry Door",
			Description: "A solid wood entry door with raised panels and a weather-sealed frame.",
			Price:       1299,
			Category:    models.CategoryDoor,
			Features:    []string{"Multi-point lock", "Weatherstripping", "Pre-hung frame"},
			Materials:   []string{"Mahogany", "Brass hardware"},
			Dimensions:  `36" x 80"`,
			InStock:     true,
			Images:      []string{"/images/products/classic-entry-door.jpg"},
		},
		{
			ID:          "modern-steel-door",
			Name:        "Modern Steel Door",
			Description: "Insulated steel door with a clean flush profile and glass lite.",
			Price:       899,
			Category:    models.CategoryDoor,
			Features:    []string{"Polyurethane foam core", "Tempered glass", "Rust resistant finish"},
			Materials:   []string{"Steel", "Tempered glass"},
			Dimensions:  `36" x 80"`,
			InStock:     true,
			Images:      []string{"/images/products/modern-steel-door.jpg"},
		},
		{
			ID:          "sliding-patio-door",
			Name:        "Sliding Patio Door",
			Description: "Two-panel sliding door with low-E glass and smooth tandem rollers.",
			Price:       1799,
			Category:    models.CategoryDoor,
			Features:    []string{"Low-E glass", "Tandem rollers", "Keyed lock"},
			Materials:   []string{"Vinyl", "Low-E glass"},
			Dimensions:  `72" x 80"`,
			InStock:     true,
			Images:      []string{"/images/products/sliding-patio-door.jpg"},
		},
		{
			ID:          "fiberglass-french-door",
			Name:        "Fiberglass French Door",
			Description: "Hinged double doors with woodgrain fiberglass skins and full glass.",
			Price:       2499,
			Category:    models.CategoryDoor,
			Features:    []string{"Woodgrain texture", "Full-view glass", "Adjustable sill"},
			Materials:   []string{"Fiberglass", "Insulated glass"},
			Dimensions:  `60" x 80"`,
			InStock:     false,
			Images:      []string{"/images/products/fiberglass-french-door.jpg"},
		},
		{
			ID:          "double-hung-window",
			Name:        "Double-Hung Window",
			Description: "Both sashes tilt in for easy cleaning from inside the home.",
			Price:       449,
			Category:    models.CategoryWindow,
			Features:    []string{"Tilt-in sashes", "Dual pane", "Argon filled"},
			Materials:   []string{"Vinyl", "Insulated glass"},
			Dimensions:  `36" x 60"`,
			InStock:     true,
			Images:      []string{"/images/products/double-hung-window.jpg"},
		},
		{
			ID:          "casement-window",
			Name:        "Casement Window",
			Description: "Crank-operated window that seals tight against the frame.",
			Price:       549,
			Category:    models.CategoryWindow,
			Features:    []string{"Folding crank handle", "Multi-point lock", "Full ventilation"},
			Materials:   []string{"Fiberglass", "Low-E glass"},
			Dimensions:  `30" x 48"`,
			InStock:     true,
			Images:      []string{"/images/products/casement-window.jpg"},
		},
		{
			ID:          "bay-window",
			Name:        "Bay Window",
			Description: "Three-panel projecting window that adds light and floor space.",
			Price:       2199,
			Category:    models.CategoryWindow,
			Features:    []string{"Angled side panels", "Insulated seat board", "Custom sizing"},
			Materials:   []string{"Wood interior", "Aluminum-clad exterior"},
			Dimensions:  `96" x 60"`,
			InStock:     true,
			Images:      []string{"/images/products/bay-window.jpg"},
		},
		{
			ID:          "picture-window",
			Name:        "Picture Window",
			Description: "Fixed window for unobstructed views and maximum light.",
			Price:       399,
			Category:    models.CategoryWindow,
			Features:    []string{"Fixed frame", "Triple pane option", "Slim sightlines"},
			Materials:   []string{"Vinyl", "Insulated glass"},
			Dimensions:  `48" x 48"`,
			InStock:     true,
			Images:      []string{"/images/products/picture-window.jpg"},
		},
	}
}

// GalleryItems returns the five default project photos.
func GalleryItems() []models.GalleryItem {
	return []models.GalleryItem{
		{
			ID:            "gallery-1",
			Title:         "Craftsman Entry Upgrade",
			Description:   "Replaced a drafty entry with a mahogany door and sidelights.",
			Image:         "/images/gallery/project-1.jpg",
			FullSizeImage: "/images/gallery/project-1-full.jpg",
			Category:      "Doors",
			ProjectDetails: []models.ProjectDetail{
				{Label: "Location", Value: "Springfield"},
				{Label: "Duration", Value: "1 day"},
			},
			RelatedProducts: []models.ProductRef{{ID: "classic-entry-door", Name: "Classic Entry Door", Slug: "classic-entry-door"}},
		},
		{
			ID:            "gallery-2",
			Title:         "Whole-Home Window Replacement",
			Description:   "Fourteen double-hung windows replaced in a 1960s ranch.",
			Image:         "/images/gallery/project-2.jpg",
			FullSizeImage: "/images/gallery/project-2-full.jpg",
			Category:      "Windows",
			ProjectDetails: []models.ProjectDetail{
				{Label: "Location", Value: "Riverside"},
				{Label: "Duration", Value: "3 days"},
			},
			RelatedProducts: []models.ProductRef{{ID: "double-hung-window", Name: "Double-Hung Window", Slug: "double-hung-window"}},
		},
		{
			ID:            "gallery-3",
			Title:         "Patio Door Installation",
			Description:   "Opened up a kitchen to the backyard with a sliding patio door.",
			Image:         "/images/gallery/project-3.jpg",
			FullSizeImage: "/images/gallery/project-3-full.jpg",
			Category:      "Doors",
			ProjectDetails: []models.ProjectDetail{
				{Label: "Location", Value: "Oak Grove"},
				{Label: "Duration", Value: "2 days"},
			},
			RelatedProducts: []models.ProductRef{{ID: "sliding-patio-door", Name: "Sliding Patio Door", Slug: "sliding-patio-door"}},
		},
		{
			ID:            "gallery-4",
			Title:         "Living Room Bay Window",
			Description:   "A new bay window with a built-in seat overlooking the garden.",
			Image:         "/images/gallery/project-4.jpg",
			FullSizeImage: "/images/gallery/project-4-full.jpg",
			Category:      "Windows",
			ProjectDetails: []models.ProjectDetail{
				{Label: "Location", Value: "Maple Heights"},
				{Label: "Duration", Value: "2 days"},
			},
			RelatedProducts: []models.ProductRef{{ID: "bay-window", Name: "Bay Window", Slug: "bay-window"}},
		},
		{
			ID:            "gallery-5",
			Title:         "French Doors to the Deck",
			Description:   "Fiberglass French doors replacing an old slider.",
			Image:         "/images/gallery/project-5.jpg",
			FullSizeImage: "/images/gallery/project-5-full.jpg",
			Category:      "Doors",
			ProjectDetails: []models.ProjectDetail{
				{Label: "Location", Value: "Lakewood"},
				{Label: "Duration", Value: "1 day"},
			},
			RelatedProducts: []models.ProductRef{{ID: "fiberglass-french-door", Name: "Fiberglass French Door", Slug: "fiberglass-french-door"}},
		},
	}
}

// FAQs returns the ten default questions ordered by rank.
func FAQs() []models.FAQItem {
	items := []models.FAQItem{
		{Question: "Do you offer free estimates?", Answer: "Yes. We provide free in-home consultations and written estimates with no obligation.", Category: "General", Order: intPtr(1)},
		{Question: "How long does a typical installation take?", Answer: "Most door installations take one day. Whole-home window projects usually take two to four days.", Category: "Installation", Order: intPtr(2)},
		{Question: "What warranty do you provide?", Answer: "Our products carry manufacturer warranties and our installation labor is covered for life.", Category: "Warranty", Order: intPtr(3)},
		{Question: "Are your windows energy efficient?", Answer: "All of our windows are ENERGY STAR rated with low-E glass and argon fill options.", Category: "Products", Order: intPtr(4)},
		{Question: "Do you handle permits?", Answer: "Yes. We pull all required permits and schedule inspections on your behalf.", Category: "Installation", Order: intPtr(5)},
		{Question: "Can I see samples before ordering?", Answer: "Visit our showroom or ask your consultant to bring samples to your home.", Category: "Products", Order: intPtr(6)},
		{Question: "Do you offer financing?", Answer: "We offer financing plans with approved credit, including same-as-cash options.", Category: "General", Order: intPtr(7)},
		{Question: "What happens to my old doors and windows?", Answer: "We remove and dispose of all old units and clean up the work area.", Category: "Installation", Order: intPtr(8)},
		{Question: "Are your installers employees or subcontractors?", Answer: "Our installers are trained, insured employees of the company.", Category: "General", Order: intPtr(9)},
		{Question: "Do you make custom sizes?", Answer: "Yes. Every unit is measured and built to fit your existing openings.", Category: "Products", Order: intPtr(10)},
	}
	models.SortFAQs(items)
	return items
}

// ContactInfo returns the default contact details with every field shown.
func ContactInfo() *models.ContactInfo {
	return &models.ContactInfo{
		Address:     "1250 Industrial Parkway, Springfield, IL 62701",
		Phone:       "(555) 123-4567",
		Email:       "info@doorworks.example",
		Hours:       "Mon-Fri 8am-6pm, Sat 9am-3pm",
		ShowAddress: true,
		ShowPhone:   true,
		ShowEmail:   true,
		ShowHours:   true,
	}
}

// AboutPage returns the about page defaults used to fill fields missing
// from the remote document.
func AboutPage() models.AboutPage {
	story := "We started as a two-person installation crew in 1998. Today our team " +
		"has completed more than ten thousand projects, and we still treat every " +
		"home like our own."
	return models.AboutPage{
		Hero: models.AboutHero{
			Title:    "About Us",
			Subtitle: "Family owned. Locally trusted.",
			Image:    "/images/about/team.jpg",
		},
		Story: models.Story{
			Title: "Our Story",
			HTML:  "<p>" + story + "</p>",
			Text:  story,
		},
		Values: []models.Value{
			{Title: "Craftsmanship", Description: "We measure twice and install once.", Icon: "hammer"},
			{Title: "Honesty", Description: "Clear quotes with no hidden fees.", Icon: "handshake"},
			{Title: "Service", Description: "We answer the phone and stand behind our work.", Icon: "heart"},
		},
		ServiceAreas: serviceAreaNames(),
		Expertise: models.Expertise{
			Title:       "Our Expertise",
			Description: "Specialists in residential door and window replacement.",
			Specializations: []string{
				"Entry door replacement",
				"Patio and French doors",
				"Whole-home window replacement",
				"Bay and bow windows",
				"Storm doors",
			},
		},
	}
}

var serviceAreas = []models.ServiceArea{
	{Name: "Springfield", Slug: "springfield", Description: "Our home base and showroom location."},
	{Name: "Riverside", Slug: "riverside", Description: "Serving Riverside and the surrounding townships."},
	{Name: "Oak Grove", Slug: "oak-grove", Description: "Full installation service in Oak Grove."},
	{Name: "Maple Heights", Slug: "maple-heights", Description: "Door and window replacement throughout Maple Heights."},
	{Name: "Lakewood", Slug: "lakewood", Description: "Serving lakefront and inland Lakewood homes."},
	{Name: "Cedar Falls", Slug: "cedar-falls", Description: "Free estimates across Cedar Falls."},
}

// ServiceAreas returns the six default service areas.
func ServiceAreas() []models.ServiceArea {
	return slices.Clone(serviceAreas)
}

func serviceAreaNames() []string {
	names := make([]string, len(serviceAreas))
	for i, a := range serviceAreas {
		names[i] = a.Name
	}
	return names
}
