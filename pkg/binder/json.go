package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/valtree/pkg/logger"
	"github.com/dmitrymomot/valtree/pkg/schema"
)

// JSON extracts a T from a JSON request body. Unknown fields and trailing
// data are parse failures.
func JSON[T any](b *Binder, r *http.Request) (T, error) {
	var out T
	ctx := r.Context()
	t := reflect.TypeFor[T]()

	body, err := b.readJSONBody(r)
	if err != nil {
		b.reject(ctx, t, StageParse, err)
		return out, parseRejection(err)
	}

	if b.schemas != nil {
		if err := b.schemas.Check(t, body); err != nil {
			var verr *schema.ViolationError
			if errors.As(err, &verr) {
				b.reject(ctx, t, StageSchema, err, logger.Violations(len(verr.Violations)))
				return out, &Rejection{Stage: StageSchema, Err: err, Violations: verr.Violations}
			}
			if !errors.Is(err, schema.ErrInvalidJSON) {
				// Types the schema layer cannot describe are still decoded and validated.
				b.logger.WarnContext(ctx, "schema stage skipped",
					logger.Component("binder"), logger.Type(t.String()), logger.Error(err))
			}
		}
	}

	if err := decodeJSON(body, &out); err != nil {
		b.reject(ctx, t, StageParse, err)
		return out, parseRejection(err)
	}

	if err := validate(ctx, b, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (b *Binder) readJSONBody(r *http.Request) ([]byte, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}
	if r.Body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, b.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > b.maxBody {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, b.maxBody)
	}
	return body, nil
}

func decodeJSON(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}
	return nil
}
