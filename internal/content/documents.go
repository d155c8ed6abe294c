// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"math"
	"strings"
	"time"

	"doorworks/internal/models"
	"doorworks/internal/portabletext"
	"doorworks/internal/sanity"
	"doorworks/internal/slug"
)

// Remote document shapes as returned by the projections in queries.go.
// Optional fields are pointers so absence can be told apart from zero.

type homeDoc struct {
	Hero struct {
		Headline    string `json:"headline"`
		Subheadline string `json:"subheadline"`
		CTAText     string `json:"ctaText"`
		CTALink     string `json:"ctaLink"`
		Slides      []struct {
			Image   sanity.Image `json:"image"`
			Alt     string       `json:"alt"`
			Caption string       `json:"caption"`
		} `json:"slides"`
	} `json:"hero"`
	WhyChooseUs struct {
		Title    string           `json:"title"`
		Subtitle string           `json:"subtitle"`
		Features []models.Feature `json:"features"`
	} `json:"whyChooseUs"`
	DoorsSection        cardDoc `json:"doorsSection"`
	WindowsSection      cardDoc `json:"windowsSection"`
	GallerySection      struct {
		Title    string         `json:"title"`
		Subtitle string         `json:"subtitle"`
		Images   []sanity.Image `json:"images"`
	} `json:"gallerySection"`
	TestimonialsSection models.SectionHeading `json:"testimonialsSection"`
	ServiceAreasSection struct {
		Title    string   `json:"title"`
		Subtitle string   `json:"subtitle"`
		Areas    []string `json:"areas"`
	} `json:"serviceAreasSection"`
}

type cardDoc struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       sanity.Image `json:"image"`
	Link        string       `json:"link"`
}

type productDoc struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Features    []string       `json:"features"`
	Materials   []string       `json:"materials"`
	Dimensions  string         `json:"dimensions"`
	InStock     *bool          `json:"inStock"`
	Images      []sanity.Image `json:"images"`
}

type galleryDoc struct {
	ID              string                 `json:"_id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Image           sanity.Image           `json:"image"`
	FullSizeImage   sanity.Image           `json:"fullSizeImage"`
	Category        *string                `json:"category"`
	ProjectDetails  []models.ProjectDetail `json:"projectDetails"`
	RelatedProducts []struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"relatedProducts"`
}

type testimonialDoc struct {
	ID          string       `json:"_id"`
	CreatedAt   string       `json:"_createdAt"`
	Author      string       `json:"author"`
	Name        string       `json:"name"`
	Quote       string       `json:"quote"`
	Location    string       `json:"location"`
	Rating      *float64     `json:"rating"`
	Image       sanity.Image `json:"image"`
	ProjectType string       `json:"projectType"`
	Date        string       `json:"date"`
	Featured    bool         `json:"featured"`
	Order       *float64     `json:"order"`
}

type contactDoc struct {
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Hours       string `json:"hours"`
	ShowAddress *bool  `json:"showAddress"`
	ShowPhone   *bool  `json:"showPhone"`
	ShowEmail   *bool  `json:"showEmail"`
	ShowHours   *bool  `json:"showHours"`
}

type aboutDoc struct {
	Hero *struct {
		Title    string       `json:"title"`
		Subtitle string       `json:"subtitle"`
		Image    sanity.Image `json:"image"`
	} `json:"hero"`
	Story *struct {
		Title   string               `json:"title"`
		Content []portabletext.Block `json:"content"`
	} `json:"story"`
	Values       []models.Value    `json:"values"`
	ServiceAreas []string          `json:"serviceAreas"`
	Expertise    *models.Expertise `json:"expertise"`
}

type faqDoc struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Order    *float64 `json:"order"`
}

type serviceAreaDoc struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (d *homeDoc) normalize(id sanity.Identity) *models.HomePage {
	h := &models.HomePage{
		Hero: models.Hero{
			Headline:    d.Hero.Headline,
			Subheadline: d.Hero.Subheadline,
			CTAText:     d.Hero.CTAText,
			CTALink:     d.Hero.CTALink,
			Slides:      make([]models.HeroSlide, 0, len(d.Hero.Slides)),
		},
		WhyChooseUs: models.FeatureSection{
			Title:    d.WhyChooseUs.Title,
			Subtitle: d.WhyChooseUs.Subtitle,
			Features: nonNil(d.WhyChooseUs.Features),
		},
		Doors:   d.DoorsSection.normalize(id),
		Windows: d.WindowsSection.normalize(id),
		Gallery: models.GallerySection{
			Title:    d.GallerySection.Title,
			Subtitle: d.GallerySection.Subtitle,
			Images:   resolveAll(d.GallerySection.Images, id),
		},
		Testimonials: d.TestimonialsSection,
		ServiceAreas: models.ServiceAreaSection{
			Title:    d.ServiceAreasSection.Title,
			Subtitle: d.ServiceAreasSection.Subtitle,
			Areas:    nonNil(d.ServiceAreasSection.Areas),
		},
	}
	for _, s := range d.Hero.Slides {
		u, ok := s.Image.Resolve(id)
		if !ok {
			continue
		}
		h.Hero.Slides = append(h.Hero.Slides, models.HeroSlide{Image: u, Alt: s.Alt, Caption: s.Caption})
	}
	return h
}

func (d cardDoc) normalize(id sanity.Identity) models.ProductCard {
	u, _ := d.Image.Resolve(id)
	return models.ProductCard{Title: d.Title, Description: d.Description, Image: u, Link: d.Link}
}

func (d *productDoc) normalize(id sanity.Identity) models.Product {
	pid := d.Slug
	if pid == "" {
		pid = slug.Generate(d.Name)
	}

	category, ok := models.ParseProductCategory(d.Category)
	if !ok {
		category = models.ProductCategory(strings.ToLower(strings.TrimSpace(d.Category)))
	}

	inStock := true
	if d.InStock != nil {
		inStock = *d.InStock
	}

	return models.Product{
		ID:          pid,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    category,
		Features:    nonNil(d.Features),
		Materials:   nonNil(d.Materials),
		Dimensions:  d.Dimensions,
		InStock:     inStock,
		Images:      resolveAll(d.Images, id),
	}
}

// normalize flattens the category reference, the full-size image and the
// related product references.
func (d *galleryDoc) normalize(id sanity.Identity) models.GalleryItem {
	image, _ := d.Image.Resolve(id)
	fullSize, ok := d.FullSizeImage.Resolve(id)
	if !ok {
		fullSize = image
	}

	category := "Uncategorized"
	if d.Category != nil && strings.TrimSpace(*d.Category) != "" {
		category = *d.Category
	}

	related := make([]models.ProductRef, 0, len(d.RelatedProducts))
	for _, r := range d.RelatedProducts {
		if r.ID == "" && r.Slug == "" {
			// dangling reference
			continue
		}
		related = append(related, models.ProductRef{ID: r.ID, Name: r.Name, Slug: r.Slug})
	}

	return models.GalleryItem{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		Image:           image,
		FullSizeImage:   fullSize,
		Category:        category,
		ProjectDetails:  nonNil(d.ProjectDetails),
		RelatedProducts: related,
	}
}

func (d *testimonialDoc) normalize(id sanity.Identity) models.Testimonial {
	author := strings.TrimSpace(d.Author)
	if author == "" {
		author = strings.TrimSpace(d.Name)
	}

	t := models.Testimonial{
		ID:            d.ID,
		Author:        author,
		Quote:         d.Quote,
		Location:      d.Location,
		Rating:        clampRating(d.Rating),
		Image:         d.Image.ResolvePtr(id),
		AvatarInitial: models.Initial(author),
		ProjectType:   d.ProjectType,
		Date:          d.Date,
		Featured:      d.Featured,
		Order:         roundPtr(d.Order),
	}
	if ts, err := time.Parse(time.RFC3339Nano, d.CreatedAt); err == nil {
		t.CreatedAt = ts
	}
	return t
}

// normalize applies the show-flag defaults: a flag absent from the document
// means the field is shown.
func (d *contactDoc) normalize() *models.ContactInfo {
	return &models.ContactInfo{
		Address:     d.Address,
		Phone:       d.Phone,
		Email:       d.Email,
		Hours:       d.Hours,
		ShowAddress: flagOrTrue(d.ShowAddress),
		ShowPhone:   flagOrTrue(d.ShowPhone),
		ShowEmail:   flagOrTrue(d.ShowEmail),
		ShowHours:   flagOrTrue(d.ShowHours),
	}
}

// normalize keeps absent sections zero-valued so the page resolver can fill
// them from defaults.
func (d *aboutDoc) normalize(id sanity.Identity) models.AboutPage {
	var a models.AboutPage
	if d.Hero != nil {
		img, _ := d.Hero.Image.Resolve(id)
		a.Hero = models.AboutHero{Title: d.Hero.Title, Subtitle: d.Hero.Subtitle, Image: img}
	}
	if d.Story != nil {
		a.Story = models.Story{
			Title: d.Story.Title,
			HTML:  portabletext.ToHTML(d.Story.Content),
			Text:  portabletext.ToText(d.Story.Content),
		}
	}
	a.Values = d.Values
	a.ServiceAreas = d.ServiceAreas
	if d.Expertise != nil {
		a.Expertise = *d.Expertise
	}
	return a
}

func (d *faqDoc) normalize() models.FAQItem {
	return models.FAQItem{
		Question: d.Question,
		Answer:   d.Answer,
		Category: d.Category,
		Order:    roundPtr(d.Order),
	}
}

func (d *serviceAreaDoc) normalize() models.ServiceArea {
	s := d.Slug
	if s == "" {
		s = slug.Generate(d.Name)
	}
	return models.ServiceArea{Name: d.Name, Slug: s, Description: d.Description}
}

// clampRating rounds to the nearest star and keeps the result in 1..5.
// A missing rating counts as five stars.
func clampRating(r *float64) int {
	if r == nil || math.IsNaN(*r) {
		return 5
	}
	n := int(math.Round(*r))
	return min(max(n, 1), 5)
}

func roundPtr(f *float64) *int {
	if f == nil {
		return nil
	}
	n := int(math.Round(*f))
	return &n
}

func flagOrTrue(b *bool) bool {
	return b == nil || *b
}

func resolveAll(images []sanity.Image, id sanity.Identity) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if u, ok := img.Resolve(id); ok {
			out = append(out, u)
		}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
