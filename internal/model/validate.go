package model

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the process-wide validator for the tags on these types
// and on the site configuration. It panics if a custom rule fails to
// register, which only a broken build can cause.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v, err := newValidator()
		if err != nil {
			panic(err)
		}
		validateInst = v
	})
	return validateInst
}

// newValidator builds a validator with the "asset" rule registered.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("asset", func(fl validator.FieldLevel) bool {
		return IsAsset(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("model: registering asset validation: %w", err)
	}
	return v, nil
}

// IsAsset reports whether s is a site-absolute path ("/assets/logo.png") or
// an absolute http(s) URL.
func IsAsset(s string) bool {
	if strings.HasPrefix(s, "/") {
		return !strings.HasPrefix(s, "//") && !strings.Contains(s, "/../")
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
