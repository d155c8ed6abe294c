package models

// ServiceArea is a town or region the business serves.
type ServiceArea struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
