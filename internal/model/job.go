// Package model defines the data structures used throughout the application.
//
// Portfolio records (Job, Technology, Project, Profile) are authored in Go in
// the content package and never change at runtime. Visit is the only record
// that is written, and only when analytics are enabled.
package model

// MaxElementID is the largest job or project ID. IDs index a bitset, so they
// stay small. The validate tags repeat the value.
const MaxElementID = 4095

// DefaultLogoStyle is applied to a job logo when the job has no override.
const DefaultLogoStyle = "width: 100%; height: 100%; object-fit: contain"

// Job is one entry of the work history.
//
// ID must be unique within the job list and at most MaxElementID. It is only
// used as the key for scroll-reveal tracking, never shown.
type Job struct {
	ID           int      `json:"id"           validate:"gte=0,lte=4095"`
	Company      string   `json:"company"      validate:"required"`
	Position     string   `json:"position"     validate:"required"`
	Duration     string   `json:"duration"     validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	Logo         string   `json:"logo"         validate:"required,asset"`
	Technologies []string `json:"technologies" validate:"dive,required"`
	Link         string   `json:"link,omitempty"      validate:"omitempty,http_url"`
	LogoStyle    string   `json:"logoStyle,omitempty"` // inline CSS, replaces DefaultLogoStyle
}

// LogoCSS returns the inline style for the job's logo image.
func (j Job) LogoCSS() string {
	if j.LogoStyle != "" {
		return j.LogoStyle
	}
	return DefaultLogoStyle
}
