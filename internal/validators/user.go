package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/cpoint/models"
)

// Field names as they appear in request bodies and in error messages.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"

	// FieldNewPassword applies the registration password rules
	// (minimum length) instead of the login rule (non-empty only).
	FieldNewPassword = "newPassword"
)

const (
	MinPasswordLength = 6
	MaxNameLength     = 50
	maxEmailLength    = 254

	// MaxPasswordBytes is the input limit of bcrypt.
	MaxPasswordBytes = 72
)

// UserValidator implements [Validator] for the account request payloads:
// RegisterRequest, LoginRequest and ProfileUpdateRequest. Fields are checked
// in order and the first violation is returned as a [*FieldError].
type UserValidator struct {
}

// NewUserValidator constructs a UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.ProfileUpdateRequest:
		return v.validateProfileUpdateRequest(value, fields...)
	case *models.ProfileUpdateRequest:
		return v.validateProfileUpdateRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldNewPassword, FieldFirstName, FieldLastName}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(request.Email)
		case FieldNewPassword:
			err = validateNewPassword(request.Password)
		case FieldPassword:
			err = validatePassword(request.Password)
		case FieldFirstName:
			err = validateName(FieldFirstName, request.FirstName)
		case FieldLastName:
			err = validateName(FieldLastName, request.LastName)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(request.Email)
		case FieldPassword:
			err = validatePassword(request.Password)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateProfileUpdateRequest(request models.ProfileUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFirstName:
			err = validateName(FieldFirstName, request.FirstName)
		case FieldLastName:
			err = validateName(FieldLastName, request.LastName)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateEmail accepts a bare addr-spec ("local@domain.tld"). Display
// names, angle brackets and dot-less domains are rejected.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return required(FieldEmail)
	}
	if len(email) > maxEmailLength {
		return invalidEmail(FieldEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return invalidEmail(FieldEmail)
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return invalidEmail(FieldEmail)
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return required(FieldPassword)
	}
	return nil
}

func validateNewPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return tooShort(FieldPassword, MinPasswordLength)
	}
	if len(password) > MaxPasswordBytes {
		return &FieldError{
			Field:   FieldPassword,
			Message: fmt.Sprintf("%q must not exceed %d bytes", FieldPassword, MaxPasswordBytes),
		}
	}
	return nil
}

func validateName(field, name string) error {
	if name == "" {
		return required(field)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return tooLong(field, MaxNameLength)
	}
	return nil
}
