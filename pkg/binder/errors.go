package binder

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/valtree/pkg/schema"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrInvalidTarget        = errors.New("binding target must be a struct")
)

// Stage names the extractor step that rejected a request.
type Stage string

const (
	StageParse      Stage = "parse"
	StageSchema     Stage = "schema"
	StageValidation Stage = "validation"
)

// Rejection is returned by extractors when a request does not yield a valid value.
type Rejection struct {
	Stage Stage
	// Err is the cause. For the validation stage it is the error tree itself.
	Err error
	// Tree is set for the validation stage.
	Tree validator.Errors
	// Violations is set for the schema stage.
	Violations []schema.Violation
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("request rejected at %s stage: %v", r.Stage, r.Err)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// Status maps the rejection onto an HTTP status code.
func (r *Rejection) Status() int {
	switch {
	case r.Stage == StageValidation:
		return http.StatusUnprocessableEntity
	case errors.Is(r.Err, ErrUnsupportedMediaType), errors.Is(r.Err, ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(r.Err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

func parseRejection(err error) *Rejection {
	return &Rejection{Stage: StageParse, Err: err}
}
