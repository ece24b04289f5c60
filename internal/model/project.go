package model

// Project is one entry of the projects gallery. ID is a scroll-reveal key in
// 0..MaxElementID.
type Project struct {
	ID           int      `json:"id"           validate:"gte=0,lte=4095"`
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	Technologies []string `json:"technologies" validate:"dive,required"`
	Image        string   `json:"image"        validate:"required,asset"`
	GitHubURL    string   `json:"githubUrl"    validate:"required,http_url"`
	LiveURL      string   `json:"liveUrl"      validate:"required,http_url"`
	Featured     bool     `json:"featured"`
}
