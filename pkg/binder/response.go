package binder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/valtree/pkg/environment"
	"github.com/dmitrymomot/valtree/pkg/logger"
	"github.com/dmitrymomot/valtree/pkg/schema"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

// ProblemBody is the response body of parse, schema and internal failures.
type ProblemBody struct {
	Stage      string             `json:"stage"`
	Message    string             `json:"message"`
	Detail     string             `json:"detail,omitempty"`
	Violations []schema.Violation `json:"violations,omitempty"`
}

// parseCauses are matched in order to name a parse failure.
var parseCauses = []error{
	ErrMissingContentType,
	ErrUnsupportedMediaType,
	ErrBodyTooLarge,
	ErrFailedToParseQuery,
	ErrFailedToParseJSON,
	ErrInvalidTarget,
}

// Response is a rendered rejection.
type Response struct {
	Status int
	Body   []byte

	// Localize is set when loc could not render a validation message. The
	// body then carries the default text. It wraps *validator.LocalizeError.
	Localize error
}

// Render builds the status and JSON body for err. Validation rejections
// render the error tree document localized with loc. verbose adds decoder
// details to parse failures. Errors that are not rejections render as 500.
// The returned error is an encoding failure only.
func Render(err error, loc validator.Localizer, verbose bool) (Response, error) {
	var rej *Rejection
	if !errors.As(err, &rej) {
		body, encErr := encode(ProblemBody{Stage: "internal", Message: http.StatusText(http.StatusInternalServerError)})
		return Response{Status: http.StatusInternalServerError, Body: body}, encErr
	}

	switch rej.Stage {
	case StageValidation:
		resp := Response{Status: rej.Status()}
		doc, docErr := validator.ToDocument(rej.Tree, loc)
		if docErr != nil {
			resp.Localize = docErr
			if doc, docErr = validator.ToDocument(rej.Tree, nil); docErr != nil {
				return Response{Status: http.StatusInternalServerError}, docErr
			}
		}
		body, encErr := encode(doc)
		resp.Body = body
		return resp, encErr
	case StageSchema:
		body, encErr := encode(ProblemBody{
			Stage:      string(StageSchema),
			Message:    schema.ErrSchemaViolation.Error(),
			Violations: rej.Violations,
		})
		return Response{Status: rej.Status(), Body: body}, encErr
	default:
		problem := ProblemBody{Stage: string(rej.Stage), Message: "bad request"}
		for _, cause := range parseCauses {
			if errors.Is(rej.Err, cause) {
				problem.Message = cause.Error()
				break
			}
		}
		if verbose && rej.Err != nil {
			problem.Detail = rej.Err.Error()
		}
		body, encErr := encode(problem)
		return Response{Status: rej.Status(), Body: body}, encErr
	}
}

// Render is the package Render with a localization miss logged at warn level.
func (b *Binder) Render(ctx context.Context, err error, loc validator.Localizer, verbose bool) (Response, error) {
	resp, encErr := Render(err, loc, verbose)
	if resp.Localize != nil {
		attrs := []any{logger.Component("binder"), logger.Error(resp.Localize)}
		var locErr *validator.LocalizeError
		if errors.As(resp.Localize, &locErr) {
			attrs = append(attrs, slog.String("message_id", locErr.ID))
		}
		b.logger.WarnContext(ctx, "rejection message not localized", attrs...)
	}
	return resp, encErr
}

// WriteRejection writes err as a JSON response. Decoder details are included
// only when the request context carries a verbose environment.
func (b *Binder) WriteRejection(w http.ResponseWriter, r *http.Request, err error, loc validator.Localizer) {
	verbose := environment.FromContext(r.Context()).Verbose()
	resp, encErr := b.Render(r.Context(), err, loc, verbose)
	if encErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
