package models

// AboutPage is the about page document. Any field may be empty when the
// remote document is partial; the page resolver fills gaps from defaults.
type AboutPage struct {
	Hero         AboutHero `json:"hero"`
	Story        Story     `json:"story"`
	Values       []Value   `json:"values"`
	ServiceAreas []string  `json:"serviceAreas"`
	Expertise    Expertise `json:"expertise"`
}

// AboutHero is the about page banner.
type AboutHero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

// Story is the company story. HTML is sanitized markup rendered from the
// rich text; Text is the same content without markup.
type Story struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
	Text  string `json:"text"`
}

// Value is one company value.
type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Expertise lists the specializations shown on the about page.
type Expertise struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Specializations []string `json:"specializations"`
}
