package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/invopop/jsonschema"
	compiler "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dmitrymomot/valtree/pkg/logger"
)

// Cache maps Go types to compiled schemas. It is safe for concurrent use.
type Cache struct {
	reflector    *jsonschema.Reflector
	logger       *slog.Logger
	entries      sync.Map // reflect.Type -> *entry
	compilations atomic.Int64
}

type entry struct {
	once     sync.Once
	raw      []byte
	compiled *compiler.Schema
	err      error
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report compilations.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithReflector replaces the reflector used to derive schemas.
func WithReflector(r *jsonschema.Reflector) Option {
	return func(c *Cache) {
		if r != nil {
			c.reflector = r
		}
	}
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		reflector: &jsonschema.Reflector{
			Anonymous:      true,
			DoNotReference: true,
		},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Schema returns the raw schema document for t, compiling it on first use.
func (c *Cache) Schema(t reflect.Type) ([]byte, error) {
	e := c.load(t)
	return e.raw, e.err
}

// Check validates a JSON payload against the schema of t. It returns an
// error wrapping ErrInvalidJSON for malformed input and a *ViolationError
// when the payload does not match.
func (c *Cache) Check(t reflect.Type, payload []byte) error {
	e := c.load(t)
	if e.err != nil {
		return e.err
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after document", ErrInvalidJSON)
	}

	err := e.compiled.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *compiler.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	return &ViolationError{Type: t.String(), Violations: violations(verr)}
}

// Len reports how many types have an entry.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Compilations reports how many schemas were compiled so far.
func (c *Cache) Compilations() int64 {
	return c.compilations.Load()
}

func (c *Cache) load(t reflect.Type) *entry {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := c.entries.Load(t); ok {
		return cached.(*entry)
	}
	actual, _ := c.entries.LoadOrStore(t, &entry{})
	e := actual.(*entry)
	e.once.Do(func() {
		start := time.Now()
		e.raw, e.compiled, e.err = c.compile(t)
		c.compilations.Add(1)
		if e.err != nil {
			c.logger.Error("schema compilation failed",
				logger.Component("schema"), slog.String("type", typeName(t)), logger.Error(e.err))
			return
		}
		c.logger.Debug("schema compiled",
			logger.Component("schema"), slog.String("type", typeName(t)), logger.Duration(time.Since(start)))
	})
	return e
}

func (c *Cache) compile(t reflect.Type) ([]byte, *compiler.Schema, error) {
	if t == nil {
		return nil, nil, ErrUnsupportedType
	}
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}

	raw, err := json.MarshalIndent(c.reflector.ReflectFromType(t), "", "  ")
	if err != nil {
		return nil, nil, errors.Join(ErrCompile, err)
	}

	location := "mem:///" + url.PathEscape(typeName(t)) + ".json"
	comp := compiler.NewCompiler()
	comp.Draft = compiler.Draft2020
	if err := comp.AddResource(location, bytes.NewReader(raw)); err != nil {
		return nil, nil, errors.Join(ErrCompile, err)
	}
	compiled, err := comp.Compile(location)
	if err != nil {
		return nil, nil, errors.Join(ErrCompile, err)
	}
	return raw, compiled, nil
}

func violations(verr *compiler.ValidationError) []Violation {
	basic := verr.BasicOutput()
	out := make([]Violation, 0, len(basic.Errors))
	for _, be := range basic.Errors {
		// Container entries only point at their causes.
		if be.Error == "" || be.KeywordLocation == "" {
			continue
		}
		out = append(out, Violation{
			Path:    be.InstanceLocation,
			Keyword: be.KeywordLocation,
			Message: be.Error,
		})
	}
	if len(out) == 0 {
		out = append(out, Violation{Path: verr.InstanceLocation, Keyword: verr.KeywordLocation, Message: verr.Message})
	}
	return out
}

func typeName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
