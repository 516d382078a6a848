package ginbinder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valtree/pkg/binder"
	"github.com/dmitrymomot/valtree/pkg/ginbinder"
	"github.com/dmitrymomot/valtree/pkg/i18n"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type signup struct {
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func (s signup) Validate() error {
	return validator.NewObject().
		Field("email", validator.Value(s.Email, validator.MinLength(3))).
		Field("age", validator.Value(s.Age, validator.Minimum(18).WithLocalized(""))).
		Err()
}

type listing struct {
	Page int `query:"page"`
}

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"minimum": "must be at least %{minimum}"}},
		"de": {"validation": map[string]any{"minimum": "muss mindestens %{minimum} sein"}},
	}}, i18n.WithNoLogging())
	require.NoError(t, err)
	return tr
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gb := ginbinder.New(binder.New(), ginbinder.WithTranslator(newTranslator(t)))

	r := gin.New()
	r.Use(ginbinder.Locale(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "de"))))
	r.POST("/signup", ginbinder.Handle(gb, binder.JSON[signup], func(c *gin.Context, s signup) {
		c.JSON(http.StatusCreated, gin.H{"email": s.Email})
	}))
	r.GET("/items", func(c *gin.Context) {
		q, ok := ginbinder.Query[listing](gb, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"page": q.Page})
	})
	r.PUT("/signup", func(c *gin.Context) {
		s, ok := ginbinder.JSON[signup](gb, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"age": s.Age})
	})
	return r
}

func post(r http.Handler, method, body, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle(t *testing.T) {
	t.Parallel()

	r := newRouter(t)

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		w := post(r, http.MethodPost, `{"email":"ann@example.com","age":30}`, "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"email":"ann@example.com"}`, w.Body.String())
	})

	t.Run("validation failure is localized", func(t *testing.T) {
		t.Parallel()
		w := post(r, http.MethodPost, `{"email":"ann@example.com","age":4}`, "de-DE,de;q=0.9")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"errors":[],"properties":{"age":{"errors":["muss mindestens 18 sein"]}}}`, w.Body.String())
	})

	t.Run("english by default", func(t *testing.T) {
		t.Parallel()
		w := post(r, http.MethodPut, `{"email":"ann@example.com","age":4}`, "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"errors":[],"properties":{"age":{"errors":["must be at least 18"]}}}`, w.Body.String())
	})

	t.Run("parse failure", func(t *testing.T) {
		t.Parallel()
		w := post(r, http.MethodPost, `{"email":`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var problem binder.ProblemBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
		assert.Equal(t, "parse", problem.Stage)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?page=3", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":3}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?page=x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAbortWithoutTranslator(t *testing.T) {
	t.Parallel()

	gb := ginbinder.New(nil)
	r := gin.New()
	r.POST("/signup", ginbinder.Handle(gb, binder.JSON[signup], func(c *gin.Context, s signup) {
		c.Status(http.StatusNoContent)
	}))

	w := post(r, http.MethodPost, `{"email":"ann@example.com","age":4}`, "de")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "must be `>= 18`")
}
