package binder

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/valtree/pkg/logger"
	"github.com/dmitrymomot/valtree/pkg/schema"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

// DefaultMaxBodyBytes is the default limit for JSON request bodies (1MB).
const DefaultMaxBodyBytes = 1 << 20

// Binder holds the collaborators shared by every extractor call. It is safe
// for concurrent use.
type Binder struct {
	schemas *schema.Cache
	maxBody int64
	logger  *slog.Logger
}

// Option configures a Binder.
type Option func(*Binder)

// WithSchemaCache enables the schema stage for JSON bodies.
func WithSchemaCache(c *schema.Cache) Option {
	return func(b *Binder) { b.schemas = c }
}

// WithMaxBodyBytes limits the size of JSON bodies. Non-positive values keep the default.
func WithMaxBodyBytes(n int64) Option {
	return func(b *Binder) {
		if n > 0 {
			b.maxBody = n
		}
	}
}

// WithLogger sets the logger used to report rejections.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns a Binder. Without WithSchemaCache the schema stage is skipped.
func New(opts ...Option) *Binder {
	b := &Binder{
		maxBody: DefaultMaxBodyBytes,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SchemaCache returns the cache used for the schema stage, or nil.
func (b *Binder) SchemaCache() *schema.Cache {
	return b.schemas
}

// validate runs the value's own validation when it has one.
func validate[T any](ctx context.Context, b *Binder, v *T) error {
	target, ok := any(v).(validator.Validatable)
	if !ok {
		return nil
	}
	err := target.Validate()
	if err == nil {
		return nil
	}
	tree := validator.Tree(err)
	b.reject(ctx, reflect.TypeFor[T](), StageValidation, err, logger.Violations(tree.Count()))
	return &Rejection{Stage: StageValidation, Err: tree, Tree: tree}
}

func (b *Binder) reject(ctx context.Context, t reflect.Type, stage Stage, err error, attrs ...slog.Attr) {
	args := []any{
		logger.Component("binder"),
		logger.Type(t.String()),
		logger.Stage(string(stage)),
		logger.Error(err),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	b.logger.DebugContext(ctx, "request rejected", args...)
}
