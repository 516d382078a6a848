package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/valtree/internal/demo"
	"github.com/dmitrymomot/valtree/pkg/i18n"
	"github.com/dmitrymomot/valtree/pkg/logger"
)

type typesResponse struct {
	Types []string `json:"types"`
}

type validResponse struct {
	Type  string `json:"type"`
	Valid bool   `json:"valid"`
	Value any    `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) listTypes(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, typesResponse{Types: demo.Names()})
}

func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	entry, ok := a.lookup(w, r)
	if !ok {
		return
	}
	v, err := entry.Bind(a.binder, r)
	if err != nil {
		a.binder.WriteRejection(w, r, err, a.translator.LocalizerFromContext(r.Context()))
		return
	}
	a.writeJSON(w, r, http.StatusOK, validResponse{Type: entry.Name, Valid: true, Value: v})
}

func (a *API) schema(w http.ResponseWriter, r *http.Request) {
	entry, ok := a.lookup(w, r)
	if !ok {
		return
	}
	data, err := a.schemas.Schema(entry.Type)
	if err != nil {
		a.logger.ErrorContext(r.Context(), "schema derivation failed",
			logger.Component("httpapi"),
			logger.Type(entry.Name),
			logger.Error(err),
		)
		a.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (a *API) translations(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	data, err := a.translator.ExportJSON(lang)
	if err != nil {
		var unsupported *i18n.ErrLanguageNotSupported
		if errors.As(err, &unsupported) {
			a.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		a.logger.ErrorContext(r.Context(), "translation export failed",
			logger.Component("httpapi"),
			logger.Locale(lang),
			logger.Error(err),
		)
		a.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(data))
}

func (a *API) lookup(w http.ResponseWriter, r *http.Request) (demo.Entry, bool) {
	name := chi.URLParam(r, "type")
	entry, ok := demo.Lookup(name)
	if !ok {
		a.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "unknown type " + name})
	}
	return entry, ok
}

func (a *API) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		a.logger.ErrorContext(r.Context(), "response encoding failed",
			logger.Component("httpapi"),
			logger.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
