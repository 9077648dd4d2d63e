// Package validator adapts go-playground/validator to echo and reports failures
// as field-level validation errors.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	domainerrors "academia/internal/domain/errors"
	"academia/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator satisfies echo.Validator.
type EchoValidator struct {
	v *validator.Validate
}

// New returns a validator that names fields by their json tags.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			name, _, _ = strings.Cut(field.Tag.Get("query"), ",")
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("param"), ",")
		}

		return name
	})

	return &EchoValidator{v: v}
}

// Validate runs the struct rules of i. Rule failures become a VALIDATION_FAILED
// error whose details map each field path to a message.
func (ev *EchoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errors.WithStack(err)
	}

	fields := domainerrors.FieldErrors{}
	for _, fe := range ve {
		fields.Add(fieldPath(fe), fieldMessage(fe))
	}

	return fields.Err()
}

// fieldPath drops the root struct and embedded struct names from the namespace,
// "FullCourseRequest.modules[0].title" becomes "modules[0].title".
// Wire names are lowercase, Go type names are not.
func fieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")
	path := make([]string, 0, len(segments))
	for _, segment := range segments[1:] {
		if segment != "" && unicode.IsUpper(rune(segment[0])) {
			continue
		}
		path = append(path, segment)
	}
	if len(path) == 0 {
		return fe.Field()
	}

	return strings.Join(path, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url", "http_url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}

		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isLengthKind(fe.Kind()) {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}

		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hexcolor":
		return "must be a #RRGGBB color"
	case "datetime":
		return fmt.Sprintf("must be a date in the form %s", fe.Param())
	case "eqfield":
		return fmt.Sprintf("must match %s", strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}

func isLengthKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return true
	default:
		return false
	}
}
