package models

import "sort"

// FAQItem is one question and answer. Order is the optional manual rank.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    *int   `json:"order,omitempty"`
}

// SortFAQs orders items by rank ascending. Unranked items go last and keep
// their relative order.
func SortFAQs(items []FAQItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Order, items[j].Order
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
