package binder_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/binder"
	"github.com/dmitrymomot/valtree/pkg/schema"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	return r
}

func rejection(t *testing.T, err error) *binder.Rejection {
	t.Helper()
	var rej *binder.Rejection
	require.ErrorAs(t, err, &rej)
	return rej
}

func TestJSON(t *testing.T) {
	t.Parallel()

	b := binder.New()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		got, err := binder.JSON[signup](b, jsonRequest(`{"email":"ann@example.com","age":30,"nick":"an"}`))
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", got.Email)
		require.NotNil(t, got.Nick)
		assert.Equal(t, "an", *got.Nick)
	})

	t.Run("validation failure keeps the tree", func(t *testing.T) {
		t.Parallel()
		_, err := binder.JSON[signup](b, jsonRequest(`{"email":"a","age":4,"tags":["ok","toolong"]}`))
		rej := rejection(t, err)
		assert.Equal(t, binder.StageValidation, rej.Stage)
		assert.Equal(t, http.StatusUnprocessableEntity, rej.Status())

		flat := validator.Flatten(rej.Tree)
		paths := make([]string, len(flat))
		for i, f := range flat {
			paths[i] = f.Path
		}
		assert.Equal(t, []string{"/properties/email", "/properties/age", "/properties/tags/items/1"}, paths)

		var tree validator.Errors
		assert.True(t, errors.As(err, &tree))
	})

	t.Run("types without Validate pass through", func(t *testing.T) {
		t.Parallel()
		got, err := binder.JSON[plain](b, jsonRequest(`{"name":""}`))
		require.NoError(t, err)
		assert.Equal(t, "", got.Name)
	})

	tests := []struct {
		name    string
		req     func() *http.Request
		wantErr error
		status  int
	}{
		{
			name: "missing content type",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
			},
			wantErr: binder.ErrMissingContentType,
			status:  http.StatusUnsupportedMediaType,
		},
		{
			name: "wrong content type",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
				r.Header.Set("Content-Type", "text/plain")
				return r
			},
			wantErr: binder.ErrUnsupportedMediaType,
			status:  http.StatusUnsupportedMediaType,
		},
		{
			name:    "malformed json",
			req:     func() *http.Request { return jsonRequest(`{"email":`) },
			wantErr: binder.ErrFailedToParseJSON,
			status:  http.StatusBadRequest,
		},
		{
			name:    "unknown field",
			req:     func() *http.Request { return jsonRequest(`{"email":"abc","age":20,"role":"admin"}`) },
			wantErr: binder.ErrFailedToParseJSON,
			status:  http.StatusBadRequest,
		},
		{
			name:    "trailing data",
			req:     func() *http.Request { return jsonRequest(`{"email":"abc","age":20} {}`) },
			wantErr: binder.ErrFailedToParseJSON,
			status:  http.StatusBadRequest,
		},
		{
			name:    "empty body",
			req:     func() *http.Request { return jsonRequest(`  `) },
			wantErr: binder.ErrFailedToParseJSON,
			status:  http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := binder.JSON[signup](b, tt.req())
			assert.ErrorIs(t, err, tt.wantErr)
			rej := rejection(t, err)
			assert.Equal(t, binder.StageParse, rej.Stage)
			assert.Equal(t, tt.status, rej.Status())
		})
	}
}

func TestJSONBodyLimit(t *testing.T) {
	t.Parallel()

	b := binder.New(binder.WithMaxBodyBytes(16))
	_, err := binder.JSON[signup](b, jsonRequest(`{"email":"ann@example.com","age":30}`))
	assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rejection(t, err).Status())
}

func TestJSONSchemaStage(t *testing.T) {
	t.Parallel()

	cache := schema.New()
	b := binder.New(binder.WithSchemaCache(cache))
	assert.Same(t, cache, b.SchemaCache())

	t.Run("wrong type is a schema rejection", func(t *testing.T) {
		t.Parallel()
		_, err := binder.JSON[signup](b, jsonRequest(`{"email":"ann@example.com","age":"thirty"}`))
		rej := rejection(t, err)
		assert.Equal(t, binder.StageSchema, rej.Stage)
		assert.Equal(t, http.StatusBadRequest, rej.Status())
		assert.NotEmpty(t, rej.Violations)
		assert.ErrorIs(t, err, schema.ErrSchemaViolation)
	})

	t.Run("malformed json stays a parse rejection", func(t *testing.T) {
		t.Parallel()
		_, err := binder.JSON[signup](b, jsonRequest(`{"email"`))
		assert.Equal(t, binder.StageParse, rejection(t, err).Stage)
	})

	t.Run("schema-valid body still runs validation", func(t *testing.T) {
		t.Parallel()
		_, err := binder.JSON[signup](b, jsonRequest(`{"email":"ann@example.com","age":3}`))
		assert.Equal(t, binder.StageValidation, rejection(t, err).Stage)
	})
}
