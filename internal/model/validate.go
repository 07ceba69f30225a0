package model

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MinReleaseYear is the earliest accepted release year; no movie predates it.
const MinReleaseYear = 1888

// MaxReleaseYear returns the latest accepted release year. Announced titles
// may be dated a few years ahead.
func MaxReleaseYear() int {
	return time.Now().Year() + 5
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Error keys should be the JSON field names clients submitted, not the
	// Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("release_year_max", func(fl validator.FieldLevel) bool {
		return int(fl.Field().Int()) <= MaxReleaseYear()
	})
	return v
}

// ValidateMovieInput checks a MovieInput against the catalog rules and
// returns a field→message map, or nil when the input is valid. It is pure:
// no store access, no side effects, safe to call from any layer.
func ValidateMovieInput(in MovieInput) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	fieldErrs := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrs["input"] = "Validation failed. Please check the fields."
		return fieldErrs
	}
	for _, fe := range verrs {
		fieldErrs[fe.Field()] = messageFor(fe)
	}
	return fieldErrs
}

// messageFor maps a failed rule to its user-facing message.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		return "Title is required."
	case "description":
		return "Description is required."
	case "genre":
		return "Genre is required."
	case "posterId":
		return "Please select a poster."
	case "releaseYear":
		if fe.Tag() == "release_year_max" {
			return "Year is too far in the future."
		}
		return "Movies didn't exist back then!"
	}
	return "Invalid value."
}
