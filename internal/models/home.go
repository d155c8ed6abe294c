// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models holds the flat, presentation-ready content types produced
// by the content normalizers and the static fallback data. Remote document
// shapes never leave the content package; everything here is plain data.
package models

// HomePage is the singleton home page document.
type HomePage struct {
	Hero         Hero               `json:"hero"`
	WhyChooseUs  FeatureSection     `json:"whyChooseUs"`
	Doors        ProductCard        `json:"doors"`
	Windows      ProductCard        `json:"windows"`
	Gallery      GallerySection     `json:"gallery"`
	Testimonials SectionHeading     `json:"testimonials"`
	ServiceAreas ServiceAreaSection `json:"serviceAreas"`
}

// Hero is the top banner with its rotating slides.
type Hero struct {
	Headline    string      `json:"headline"`
	Subheadline string      `json:"subheadline"`
	CTAText     string      `json:"ctaText"`
	CTALink     string      `json:"ctaLink"`
	Slides      []HeroSlide `json:"slides"`
}

// HeroSlide is one image in the hero carousel.
type HeroSlide struct {
	Image   string `json:"image"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// Feature is a titled selling point with an icon name.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FeatureSection is the "why choose us" block.
type FeatureSection struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Features []Feature `json:"features"`
}

// ProductCard links from the home page to a product line.
type ProductCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// GallerySection previews recent project photos.
type GallerySection struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Images   []string `json:"images"`
}

// SectionHeading is a title/subtitle pair for a section whose items are
// fetched separately.
type SectionHeading struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ServiceAreaSection lists the towns served.
type ServiceAreaSection struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Areas    []string `json:"areas"`
}
