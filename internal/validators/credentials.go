package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-social-api/models"
)

// Field names accepted by CredentialsValidator.Validate.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72
	maxFieldLength   = 254
)

// CredentialsValidator validates models.RegisterRequest and
// models.LoginRequest, by value or pointer.
//
// Only presence and size are checked; email format is not. The password
// size limit applies to registration only: an over-long login password
// is a wrong password, not malformed input.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks the given fields of obj, or all of its fields when none
// are named.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validate(ctx, registerFields(value), defaultFields(fields, FieldUsername, FieldEmail, FieldPassword), true)
	case *models.RegisterRequest:
		return v.Validate(ctx, *value, fields...)
	case models.LoginRequest:
		return v.validate(ctx, loginFields(value), defaultFields(fields, FieldEmail, FieldPassword), false)
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validate(_ context.Context, values map[string]string, fields []string, limitPassword bool) error {
	var errs []error
	for _, field := range fields {
		value, ok := values[field]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
			continue
		}
		errs = append(errs, validateField(field, value, limitPassword))
	}
	return errors.Join(errs...)
}

func validateField(field, value string, limitPassword bool) error {
	if value == "" {
		switch field {
		case FieldUsername:
			return ErrEmptyUsername
		case FieldEmail:
			return ErrEmptyEmail
		default:
			return ErrEmptyPassword
		}
	}

	if field == FieldPassword {
		if limitPassword && len(value) > maxPasswordBytes {
			return ErrPasswordTooLong
		}
		return nil
	}

	if len(value) > maxFieldLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	if strings.ContainsFunc(value, unicode.IsControl) {
		return fmt.Errorf("%w: %s", ErrInvalidFieldText, field)
	}
	return nil
}

func registerFields(req models.RegisterRequest) map[string]string {
	return map[string]string{
		FieldUsername: req.Username,
		FieldEmail:    req.Email,
		FieldPassword: req.Password,
	}
}

func loginFields(req models.LoginRequest) map[string]string {
	return map[string]string{
		FieldEmail:    req.Email,
		FieldPassword: req.Password,
	}
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
