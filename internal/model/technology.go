package model

// Technology is one icon of the technology grid.
type Technology struct {
	Name  string  `json:"name"  validate:"required"`
	Years float64 `json:"years" validate:"gte=0"`
	Logo  string  `json:"logo"  validate:"required,asset"`
	Color string  `json:"color" validate:"required,hexcolor"` // accent, rendered verbatim
}
