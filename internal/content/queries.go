// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

// GROQ projections, one per content type. Field names in the projections
// match the document structs in documents.go.

const productProjection = `{
  _id,
  name,
  "slug": slug.current,
  description,
  price,
  category,
  features,
  materials,
  dimensions,
  inStock,
  "images": images[]{"asset": asset->{url}}
}`

const testimonialProjection = `{
  _id,
  _createdAt,
  author,
  name,
  quote,
  location,
  rating,
  image,
  projectType,
  date,
  featured,
  order
}`

const (
	homePageQuery = `*[_type == "homePage"][0]{
  hero{headline, subheadline, ctaText, ctaLink, slides[]{image, alt, caption}},
  whyChooseUs{title, subtitle, features[]{title, description, icon}},
  doorsSection{title, description, image, link},
  windowsSection{title, description, image, link},
  gallerySection{title, subtitle, images},
  testimonialsSection{title, subtitle},
  serviceAreasSection{title, subtitle, areas}
}`

	productsQuery = `*[_type == "product"] | order(name asc)` + productProjection

	productsByCategoryQuery = `*[_type == "product" && category == $category] | order(name asc)` + productProjection

	productBySlugQuery = `*[_type == "product" && slug.current == $slug][0]` + productProjection

	galleryQuery = `*[_type == "galleryItem"] | order(_createdAt desc){
  _id,
  title,
  description,
  image,
  fullSizeImage,
  "category": category->name,
  projectDetails[]{label, value},
  "relatedProducts": relatedProducts[]->{_id, name, "slug": slug.current}
}`

	// Unranked testimonials sort after every ranked one.
	testimonialsQuery = `*[_type == "testimonial"] | order(coalesce(order, 9999) asc, _createdAt desc)` + testimonialProjection

	testimonialsByDateQuery = `*[_type == "testimonial"] | order(_createdAt desc)` + testimonialProjection

	faqQuery = `*[_type == "faq"] | order(order asc){question, answer, category, order}`

	contactInfoQuery = `*[_type == "contactInfo"][0]{
  address, phone, email, hours,
  showAddress, showPhone, showEmail, showHours
}`

	aboutPageQuery = `*[_type == "aboutPage"][0]{
  hero{title, subtitle, image},
  story{title, content},
  values[]{title, description, icon},
  serviceAreas,
  expertise{title, description, specializations}
}`

	serviceAreasQuery = `*[_type == "serviceArea"] | order(name asc){name, "slug": slug.current, description}`
)
