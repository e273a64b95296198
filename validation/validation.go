package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/enthugo/portfolio-site-backend/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the json field name so error maps line up with
	// what the form submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// collect maps validator violations into the shared field-keyed error value.
func collect(dest *errs.ValidationError, err error) {
	if err == nil {
		return
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		dest.AddField("input", err.Error())
		return
	}

	for _, violation := range violations {
		dest.AddField(violation.Field(), message(violation))
	}
}

func message(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", v.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", v.Field(), v.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", v.Field(), v.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", v.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", v.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", v.Field(), v.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", v.Field(), v.Param())
	default:
		return fmt.Sprintf("%s is invalid", v.Field())
	}
}
