package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"allaboutxrp/domain"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the catalog rules
type Validator struct {
	validator *validator.Validate
}

// New creates a validator that reports fields by their yaml names.
func New() *Validator {
	validate := validator.New()
	registerCustomValidators(validate)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validator: validate}
}

// Validate validates a struct and returns a *ValidationError on failure
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return err
		}
		return NewValidationError(errs)
	}
	return nil
}

// ValidationError maps namespaced field paths to messages.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, e.Errors[field]))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	messages := make(map[string]string, len(errs))

	for _, err := range errs {
		field := err.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		switch err.Tag() {
		case "required":
			messages[field] = "is required"
		case "min":
			messages[field] = fmt.Sprintf("must have at least %s entries", err.Param())
		case "url":
			messages[field] = "must be an absolute URL"
		case TagSlug:
			messages[field] = "must contain only lowercase letters, numbers and single hyphens"
		case TagSitePath:
			messages[field] = "must start with /"
		default:
			messages[field] = "is invalid"
		}
	}

	return &ValidationError{Errors: messages}
}

const (
	TagSlug     = "slug"
	TagSitePath = "site_path"
)

func registerCustomValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation(TagSlug, func(fl validator.FieldLevel) bool {
		return domain.IsValidSlug(fl.Field().String())
	})

	_ = validate.RegisterValidation(TagSitePath, func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(fl.Field().String(), "/")
	})
}
