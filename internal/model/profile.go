package model

// Link is an outbound profile link (GitHub, LinkedIn, ...).
// Icon names one of the inline SVG icons known to the renderers.
type Link struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url"   validate:"required,http_url"`
	Icon  string `json:"icon"  validate:"required,oneof=github linkedin mail external"`
}

// Profile is the person the page is about.
type Profile struct {
	Name        string `json:"name"        validate:"required"`
	Headline    string `json:"headline"    validate:"required"`
	Bio         string `json:"bio"         validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Image       string `json:"image"       validate:"required,asset"`
	Resume      string `json:"resume"      validate:"required,asset"`
	FooterBlurb string `json:"footerBlurb" validate:"required"`
	Links       []Link `json:"links"       validate:"dive"`
}
