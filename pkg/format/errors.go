package format

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

var (
	ErrParse             = errors.New("document could not be parsed")
	ErrValidation        = errors.New("document failed validation")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Stage tells where decoding stopped.
type Stage string

const (
	StageParse      Stage = "parse"
	StageValidation Stage = "validation"
)

// Error is the single error type of this package. Tree is set only for
// StageValidation.
type Error struct {
	Stage  Stage
	Format Format
	Err    error
	Tree   validator.Errors
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Format, e.Stage, e.Err)
}

// Unwrap exposes both the stage sentinel and the cause.
func (e *Error) Unwrap() []error {
	sentinel := ErrParse
	if e.Stage == StageValidation {
		sentinel = ErrValidation
	}
	return []error{sentinel, e.Err}
}

func parseError(f Format, err error) *Error {
	return &Error{Stage: StageParse, Format: f, Err: err}
}

func validationError(f Format, err error) *Error {
	return &Error{Stage: StageValidation, Format: f, Err: err, Tree: validator.Tree(err)}
}
