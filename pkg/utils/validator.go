package utils

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations for the contact form's option values
	v.RegisterValidation("inquiry_budget", validateBudgetRange)
	v.RegisterValidation("inquiry_timeline", validateTimeline)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// IsEmail reports whether s is a syntactically valid email address.
func (v *Validator) IsEmail(s string) bool {
	return v.validate.Var(s, "email") == nil
}

// Budget ranges offered by the site's contact form
func validateBudgetRange(fl validator.FieldLevel) bool {
	ranges := map[string]bool{
		"under-2000": true,
		"2000-5000":  true,
		"5000-10000": true,
		"10000-plus": true,
	}
	return ranges[fl.Field().String()]
}

func validateTimeline(fl validator.FieldLevel) bool {
	timelines := map[string]bool{
		"asap":          true,
		"1-2-months":    true,
		"3-plus-months": true,
	}
	return timelines[fl.Field().String()]
}
