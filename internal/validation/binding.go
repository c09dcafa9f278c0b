package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterTagNames makes gin's validator report fields by their form or
// json tag names instead of the Go field names.
func RegisterTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"form", "json", "uri"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

// FromBinding converts an error from gin's query or URI binding into an
// *Error.
func FromBinding(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, FieldError{Field: e.Field(), Reason: reason(e)})
		}
		return newError(fields)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return newError([]FieldError{{Field: "query", Reason: fmt.Sprintf("%q is not a valid number", numErr.Num)}})
	}

	return newError([]FieldError{{Field: "query", Reason: err.Error()}})
}

func reason(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(e.Param()), ", "))
	case "required_with":
		return fmt.Sprintf("is required when %s is set", e.Param())
	}
	return "is not valid"
}

// Single returns an *Error for one field.
func Single(field, reason string) error {
	return newError([]FieldError{{Field: field, Reason: reason}})
}
