package models

// ContactInfo is the business's contact details. The Show flags let editors
// hide individual fields without deleting them.
type ContactInfo struct {
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Hours       string `json:"hours"`
	ShowAddress bool   `json:"showAddress"`
	ShowPhone   bool   `json:"showPhone"`
	ShowEmail   bool   `json:"showEmail"`
	ShowHours   bool   `json:"showHours"`
}
