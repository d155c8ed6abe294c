package models

import (
	"sort"
	"time"
	"unicode"
)

// Testimonial is a customer review. Image is nil when the review has no
// photo; presentation then shows an avatar built from AvatarInitial.
type Testimonial struct {
	ID            string    `json:"id"`
	Author        string    `json:"author"`
	Quote         string    `json:"quote"`
	Location      string    `json:"location"`
	Rating        int       `json:"rating"`
	Image         *string   `json:"image"`
	AvatarInitial string    `json:"avatarInitial"`
	ProjectType   string    `json:"projectType"`
	Date          string    `json:"date"`
	Featured      bool      `json:"featured"`
	Order         *int      `json:"order,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Initial returns the upper-cased first letter or digit of name, or "?".
func Initial(name string) string {
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}

// SortTestimonials orders items by rank ascending with unranked items last,
// then by creation time, newest first.
func SortTestimonials(items []Testimonial) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.Order != nil && b.Order == nil:
			return true
		case a.Order == nil && b.Order != nil:
			return false
		case a.Order != nil && *a.Order != *b.Order:
			return *a.Order < *b.Order
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
