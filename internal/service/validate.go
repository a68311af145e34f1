package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var businessIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("businessid", func(fl validator.FieldLevel) bool {
		return businessIDPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidBusinessID reports whether s is an acceptable word business identifier.
func ValidBusinessID(s string) bool {
	return businessIDPattern.MatchString(s)
}

// validateStruct runs the struct's validate tags and reports the first violation.
func validateStruct(s any) error {
	return translateValidation(validate.Struct(s))
}

// validateField checks a single value against a tag list, reporting it under field.
func validateField(field string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return newValidation(CodeValidation, field, describe(field, verrs[0]))
		}
		return Internal(err)
	}
	return nil
}

func translateValidation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Internal(err)
	}
	fe := verrs[0]
	return newValidation(CodeValidation, fe.Field(), describe(fe.Field(), fe))
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "hexcolor":
		return field + " must be a hex color like #4A90E2"
	case "businessid":
		return field + " may only contain letters, digits, '_' and '-' (1-50 characters)"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
