package models

// GalleryItem is one completed project in the gallery.
type GalleryItem struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	FullSizeImage   string          `json:"fullSizeImage"`
	Category        string          `json:"category"`
	ProjectDetails  []ProjectDetail `json:"projectDetails"`
	RelatedProducts []ProductRef    `json:"relatedProducts"`
}

// ProjectDetail is a label/value pair such as "Location" / "Springfield".
type ProjectDetail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductRef is a flattened reference to a product.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
