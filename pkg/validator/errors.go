package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is the panic cause when a keyed tree is merged with a sequential one.
	ErrShapeMismatch = errors.New("validator: cannot merge object errors with array or newtype errors")

	// ErrNoLocalizer is returned when a localized message is rendered without a localizer.
	ErrNoLocalizer = errors.New("validator: localized message rendered without a localizer")

	// ErrMessageNotFound is returned by localizers that have no entry for a message id.
	ErrMessageNotFound = errors.New("validator: message id not found")
)

// LocalizeError is returned when a localized message cannot be rendered. It
// names the message id and wraps ErrNoLocalizer or the localizer's error.
type LocalizeError struct {
	ID  string
	Err error
}

func (e *LocalizeError) Error() string {
	return fmt.Sprintf("validator: localize %q: %v", e.ID, e.Err)
}

func (e *LocalizeError) Unwrap() error { return e.Err }
