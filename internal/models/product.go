package models

import "strings"

// ProductCategory separates the two product lines.
type ProductCategory string

const (
	CategoryDoor   ProductCategory = "door"
	CategoryWindow ProductCategory = "window"
)

// ParseProductCategory accepts singular or plural, any case.
func ParseProductCategory(s string) (ProductCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "door", "doors":
		return CategoryDoor, true
	case "window", "windows":
		return CategoryWindow, true
	default:
		return "", false
	}
}

// Product is a catalog entry. ID is the product's slug.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    ProductCategory `json:"category"`
	Features    []string        `json:"features"`
	Materials   []string        `json:"materials"`
	Dimensions  string          `json:"dimensions"`
	InStock     bool            `json:"inStock"`
	Images      []string        `json:"images"`
}

// FilterProducts returns the products in category, preserving order.
func FilterProducts(products []Product, category ProductCategory) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FindProduct returns the product with the given id.
func FindProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
