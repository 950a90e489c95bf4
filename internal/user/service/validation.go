package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	commonerrors "github.com/idyllic-labs/idyllic-api/internal/common/errors"
)

// CreateUserInput is the request body of POST /users. Both fields are
// required and non-empty; email format is not validated.
type CreateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() *InputValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &InputValidator{validate: v}
}

// ValidateCreateUser returns a ValidationError listing every failing field,
// or nil when the input is acceptable.
func (iv *InputValidator) ValidateCreateUser(input CreateUserInput) error {
	err := iv.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return commonerrors.ErrInternalError.WithCause(err)
	}

	fields := make([]commonerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, commonerrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return commonerrors.NewValidationError(fields...)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required and must be non-empty"
	default:
		return "invalid value"
	}
}
