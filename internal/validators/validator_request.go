package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-playground/validator/v10"
)

const (
	LocationBody = "body"
	TypeField    = "field"
)

// messages maps "<Struct>.<Field>" to the client-facing message of its rule.
var messages = map[string]string{
	"RegisterRequest.Name":          "Name must be at least 3 characters",
	"RegisterRequest.Email":         "Invalid email",
	"RegisterRequest.Password":      "Password must be at least 5 characters",
	"LoginRequest.Email":            "Enter a valid email",
	"LoginRequest.Password":         "Password cannot be blank",
	"CreateNoteRequest.Title":       "Title is required",
	"CreateNoteRequest.Description": "Description is required",
}

// redacted fields never echo the submitted value back.
var redacted = map[string]bool{
	"password": true,
}

// RequestValidator validates the request models using their `validate`
// struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [Validator] for the request models. Field
// paths in the result use the JSON names.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj, which must be one of the request models or a pointer
// to one. When fields are given only those struct fields are checked.
// A failure is returned as [ValidationErrors].
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, models.LoginRequest, models.CreateNoteRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateStruct(ctx, *value, fields...)
	case *models.LoginRequest:
		return v.validateStruct(ctx, *value, fields...)
	case *models.CreateNoteRequest:
		return v.validateStruct(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		t := reflect.TypeOf(obj)
		for _, f := range fields {
			if _, ok := t.FieldByName(f); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		logger.FromContext(ctx).Err(err).Str("func", "*RequestValidator.validateStruct").Msg("validator failed")
		return err
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, toFieldError(fe))
	}
	return result
}

func toFieldError(fe validator.FieldError) models.FieldError {
	msg, ok := messages[fe.StructNamespace()]
	if !ok {
		msg = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}

	value := ""
	if !redacted[fe.Field()] {
		value = fmt.Sprint(fe.Value())
	}

	return models.FieldError{
		Type:     TypeField,
		Value:    value,
		Msg:      msg,
		Path:     fe.Field(),
		Location: LocationBody,
	}
}
