package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidField is matched by every [*FieldError].
	ErrInvalidField = errors.New("invalid field")
)

// FieldError describes the first rule a payload violated. Message is
// user-facing and already names the field, e.g. `"email" is required`.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Is makes every FieldError match [ErrInvalidField].
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

func required(field string) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf("%q is required", field)}
}

func invalidEmail(field string) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf("%q must be a valid email", field)}
}

func tooShort(field string, limit int) *FieldError {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf("%q length must be at least %d characters long", field, limit),
	}
}

func tooLong(field string, limit int) *FieldError {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf("%q length must be less than or equal to %d characters long", field, limit),
	}
}
