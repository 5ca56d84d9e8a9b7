package validators

import (
	"errors"
	"reflect"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// MissingFields is reported whenever a required field is absent.
const MissingFields = "Missing required fields"

// CustomValidator adapts go-playground/validator to echo.Validator and turns
// failures into validation errors with client-facing messages.
type CustomValidator struct {
	validate *validator.Validate
}

var shared = NewValidator()

func NewValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates i with the package-level validator.
func Struct(i any) error {
	return shared.Validate(i)
}

// Validate checks i. A missing required field wins over any other failure;
// otherwise the first failing field's `errmsg` tag is used as the message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Validation("Invalid request payload")
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperrors.Validation(MissingFields)
		}
	}
	return apperrors.Validation(messageFor(i, fieldErrs[0]))
}

func messageFor(i any, fe validator.FieldError) string {
	t := reflect.TypeOf(i)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if msg := f.Tag.Get("errmsg"); msg != "" {
				return msg
			}
		}
	}
	return "Invalid " + fe.Field()
}
